package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
)

// clipExtension is the container yt-dlp is asked to produce.
const clipExtension = ".mp3"

// videoInfo is the subset of yt-dlp's info JSON the fetcher uses.
type videoInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Creator    string  `json:"creator"`
	Uploader   string  `json:"uploader"`
	Thumbnail  string  `json:"thumbnail"`
	WebpageURL string  `json:"webpage_url"`
	Duration   float64 `json:"duration"`
}

// YtDlpFetcher downloads the audio of a segment window with yt-dlp and
// trims it with ffmpeg as a post-processing step.
type YtDlpFetcher struct {
	runner     CommandRunner
	fs         afero.Fs
	binary     string
	ffmpegPath string
	timeout    time.Duration
	logger     *logrus.Logger
}

// NewYtDlpFetcher creates a new YtDlpFetcher. A non-positive timeout disables
// the per-download deadline.
func NewYtDlpFetcher(runner CommandRunner, fs afero.Fs, binary, ffmpegPath string, timeout time.Duration, logger *logrus.Logger) YtDlpFetcher {
	return YtDlpFetcher{
		runner:     runner,
		fs:         fs,
		binary:     binary,
		ffmpegPath: ffmpegPath,
		timeout:    timeout,
		logger:     logger,
	}
}

// Fetch downloads the window into req.OutputDir as <BaseName>.mp3.
func (f YtDlpFetcher) Fetch(ctx context.Context, req domain.FetchRequest) (domain.FetchedClip, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(
		attribute.String("segment.video_id", req.Window.VideoID),
		attribute.Int("segment.start_seconds", req.Window.StartSeconds),
		attribute.Int("segment.end_seconds", req.Window.EndSeconds),
	)

	if f.timeout > 0 {
		var cancel context.CancelFunc
		spanCtx, cancel = context.WithTimeout(spanCtx, f.timeout)
		defer cancel()
	}

	f.logger.WithFields(logrus.Fields{
		"video_id": req.Window.VideoID,
		"window":   req.Window.DisplayTime(),
	}).Info("YtDlpFetcher: downloading segment")

	stdout, stderr, err := f.runner.Run(spanCtx, f.binary, f.args(req)...)
	if err != nil {
		f.removePartials(req)
		err = TranslateFetchError(string(stderr), err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.FetchedClip{}, err
	}

	info, err := parseVideoInfo(stdout)
	if err != nil {
		f.logger.WithField("video_id", req.Window.VideoID).Warnf("YtDlpFetcher: %v", err)
	}

	path, err := f.locateOutput(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.FetchedClip{}, err
	}

	return domain.FetchedClip{
		Path:         path,
		Title:        info.Title,
		Artist:       info.artist(),
		ThumbnailURL: info.Thumbnail,
		SourceURL:    req.Window.SourceURL(),
	}, nil
}

func (f YtDlpFetcher) args(req domain.FetchRequest) []string {
	args := []string{
		"--no-playlist",
		"--no-warnings",
		"--no-progress",
		"--no-simulate",
		"--dump-json",
		"--format", "bestaudio/best",
		"--extract-audio",
		"--audio-format", strings.TrimPrefix(clipExtension, "."),
		"--audio-quality", "192K",
		"--postprocessor-args", fmt.Sprintf("ExtractAudio:-ss %d -to %d", req.Window.StartSeconds, req.Window.EndSeconds),
		"--output", filepath.Join(req.OutputDir, req.BaseName+".%(ext)s"),
	}
	if f.ffmpegPath != "" && f.ffmpegPath != "ffmpeg" {
		args = append(args, "--ffmpeg-location", f.ffmpegPath)
	}
	return append(args, req.Window.SourceURL())
}

// locateOutput returns <BaseName>.mp3, or the newest <BaseName>.* file when
// the post-processor kept another extension.
func (f YtDlpFetcher) locateOutput(req domain.FetchRequest) (string, error) {
	expected := filepath.Join(req.OutputDir, req.BaseName+clipExtension)
	if ok, _ := afero.Exists(f.fs, expected); ok {
		return expected, nil
	}

	matches, err := afero.Glob(f.fs, filepath.Join(req.OutputDir, req.BaseName+".*"))
	if err != nil {
		return "", fmt.Errorf("cannot list downloaded files: %w", err)
	}

	var newest string
	var newestMod time.Time
	for _, match := range matches {
		if strings.HasSuffix(match, ".part") || strings.HasSuffix(match, ".json") {
			continue
		}
		stat, err := f.fs.Stat(match)
		if err != nil {
			continue
		}
		if newest == "" || stat.ModTime().After(newestMod) {
			newest, newestMod = match, stat.ModTime()
		}
	}
	if newest == "" {
		return "", fmt.Errorf("downloader finished but produced no audio file for %s", req.BaseName)
	}
	return newest, nil
}

func (f YtDlpFetcher) removePartials(req domain.FetchRequest) {
	matches, _ := afero.Glob(f.fs, filepath.Join(req.OutputDir, req.BaseName+"*"))
	for _, match := range matches {
		if err := f.fs.Remove(match); err != nil {
			f.logger.WithField("path", match).Warnf("YtDlpFetcher: cannot remove partial download: %v", err)
		}
	}
}

// parseVideoInfo reads the last JSON document yt-dlp printed.
func parseVideoInfo(stdout []byte) (videoInfo, error) {
	lines := bytes.Split(bytes.TrimSpace(stdout), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace(lines[i])
		if len(line) == 0 || line[0] != '{' {
			continue
		}
		var info videoInfo
		if err := json.Unmarshal(line, &info); err != nil {
			return videoInfo{}, fmt.Errorf("cannot parse video metadata: %w", err)
		}
		return info, nil
	}
	return videoInfo{}, fmt.Errorf("downloader printed no video metadata")
}

func (i videoInfo) artist() string {
	for _, candidate := range []string{i.Artist, i.Creator, i.Uploader} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return candidate
		}
	}
	return domain.UnknownArtist
}

// InitMediaFetcher initializes the yt-dlp fetcher and registers it in the dependency container.
type InitMediaFetcher struct {
	Logger       *logrus.Logger `resolve:""`
	YtDlpPath    string         `config:"YTDLP_PATH" default:"yt-dlp"`
	FFmpegPath   string         `config:"FFMPEG_PATH" default:"ffmpeg"`
	FetchTimeout time.Duration  `config:"FETCH_TIMEOUT" default:"3m"`
}

// Initialize registers the fetcher as the domain.MediaFetcher.
func (imf InitMediaFetcher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.MediaFetcher](NewYtDlpFetcher(
		ExecRunner{Logger: imf.Logger},
		afero.NewOsFs(),
		imf.YtDlpPath,
		imf.FFmpegPath,
		imf.FetchTimeout,
		imf.Logger,
	))
	return ctx, nil
}
