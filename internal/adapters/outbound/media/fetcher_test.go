package media

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYtDlpFetcher_Fetch(t *testing.T) {
	window := domain.SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 10, EndSeconds: 25}
	req := domain.FetchRequest{Window: window, OutputDir: "scratch", BaseName: "dQw4w9WgXcQ_1"}
	infoJSON := []byte(`{"id":"dQw4w9WgXcQ","title":"Never Gonna Give You Up","uploader":"RickAstleyVEVO","thumbnail":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg","duration":213}` + "\n")

	writeFile := func(fs afero.Fs, name string, modTime time.Time) func([]string) {
		return func([]string) {
			path := filepath.Join("scratch", name)
			_ = afero.WriteFile(fs, path, []byte("audio"), 0o644)
			_ = fs.Chtimes(path, modTime, modTime)
		}
	}
	now := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		result        func(fs afero.Fs) runResult
		expectedClip  domain.FetchedClip
		expectedErr   error
		expectedFiles []string
	}{
		"mp3-output": {
			result: func(fs afero.Fs) runResult {
				return runResult{stdout: infoJSON, sideEffect: writeFile(fs, "dQw4w9WgXcQ_1.mp3", now)}
			},
			expectedClip: domain.FetchedClip{
				Path:         filepath.Join("scratch", "dQw4w9WgXcQ_1.mp3"),
				Title:        "Never Gonna Give You Up",
				Artist:       "RickAstleyVEVO",
				ThumbnailURL: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
				SourceURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			},
			expectedFiles: []string{filepath.Join("scratch", "dQw4w9WgXcQ_1.mp3")},
		},
		"fallback-to-newest-output": {
			result: func(fs afero.Fs) runResult {
				return runResult{
					stdout: []byte(`{"title":"Song","artist":"Band"}`),
					sideEffect: func(args []string) {
						writeFile(fs, "dQw4w9WgXcQ_1.webm", now.Add(-time.Minute))(args)
						writeFile(fs, "dQw4w9WgXcQ_1.m4a", now)(args)
					},
				}
			},
			expectedClip: domain.FetchedClip{
				Path:      filepath.Join("scratch", "dQw4w9WgXcQ_1.m4a"),
				Title:     "Song",
				Artist:    "Band",
				SourceURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			},
			expectedFiles: []string{
				filepath.Join("scratch", "dQw4w9WgXcQ_1.m4a"),
				filepath.Join("scratch", "dQw4w9WgXcQ_1.webm"),
			},
		},
		"missing-metadata-is-not-fatal": {
			result: func(fs afero.Fs) runResult {
				return runResult{sideEffect: writeFile(fs, "dQw4w9WgXcQ_1.mp3", now)}
			},
			expectedClip: domain.FetchedClip{
				Path:      filepath.Join("scratch", "dQw4w9WgXcQ_1.mp3"),
				Artist:    domain.UnknownArtist,
				SourceURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			},
			expectedFiles: []string{filepath.Join("scratch", "dQw4w9WgXcQ_1.mp3")},
		},
		"no-output-file": {
			result: func(fs afero.Fs) runResult {
				return runResult{stdout: infoJSON}
			},
			expectedErr: errors.New("downloader finished but produced no audio file for dQw4w9WgXcQ_1"),
		},
		"private-video-removes-partials": {
			result: func(fs afero.Fs) runResult {
				return runResult{
					stderr:     []byte("ERROR: [youtube] dQw4w9WgXcQ: Private video\n"),
					err:        errors.New("exit status 1"),
					sideEffect: writeFile(fs, "dQw4w9WgXcQ_1.webm.part", now),
				}
			},
			expectedErr: domain.NewReferenceUnavailableErr("[youtube] dQw4w9WgXcQ: Private video", errors.New("exit status 1")),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("scratch", 0o755))
			runner := &fakeRunner{results: map[string]runResult{"yt-dlp": tt.result(fs)}}

			fetcher := NewYtDlpFetcher(runner, fs, "yt-dlp", "ffmpeg", time.Minute, newDiscardLogger())
			got, gotErr := fetcher.Fetch(context.Background(), req)

			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedClip, got)

			files, err := afero.Glob(fs, filepath.Join("scratch", "*"))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFiles, files)
		})
	}
}

func TestYtDlpFetcher_Args(t *testing.T) {
	window := domain.SegmentWindow{VideoID: "dQw4w9WgXcQ", StartSeconds: 90, EndSeconds: 110}
	req := domain.FetchRequest{Window: window, OutputDir: "scratch", BaseName: "dQw4w9WgXcQ_1"}

	fetcher := NewYtDlpFetcher(&fakeRunner{}, afero.NewMemMapFs(), "yt-dlp", "/opt/ffmpeg/bin/ffmpeg", 0, newDiscardLogger())
	args := fetcher.args(req)

	assert.Equal(t, []string{
		"--no-playlist",
		"--no-warnings",
		"--no-progress",
		"--no-simulate",
		"--dump-json",
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"--postprocessor-args", "ExtractAudio:-ss 90 -to 110",
		"--output", filepath.Join("scratch", "dQw4w9WgXcQ_1.%(ext)s"),
		"--ffmpeg-location", "/opt/ffmpeg/bin/ffmpeg",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, args)
}

func TestInitMediaFetcher_Initialize(t *testing.T) {
	imf := InitMediaFetcher{Logger: newDiscardLogger(), YtDlpPath: "yt-dlp", FFmpegPath: "ffmpeg", FetchTimeout: time.Minute}

	_, err := imf.Initialize(context.Background())
	assert.NoError(t, err)

	fetcher, err := depend.Resolve[domain.MediaFetcher]()
	assert.NoError(t, err)
	assert.NotNil(t, fetcher)
}
