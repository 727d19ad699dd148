package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/resona/internal/adapters/outbound/modelrunner"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resolveFlags.defaultSeconds = 20
		resolveFlags.maxSeconds = 20
		resolveFlags.output = "json"
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	tests := map[string]struct {
		args        []string
		expectedOut string
		expectErr   string
	}{
		"json-output": {
			args: []string{"resolve", "https://youtu.be/dQw4w9WgXcQ?t=90"},
			expectedOut: `{
  "video_id": "dQw4w9WgXcQ",
  "start_seconds": 90,
  "end_seconds": 110,
  "duration_seconds": 20,
  "segment_id": "yt_dQw4w9WgXcQ_90_110",
  "youtube_link": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
  "segment_display_time": "01:30 - 01:50"
}
`,
		},
		"yaml-output-with-end": {
			args: []string{"resolve", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10&end=25", "-o", "yaml"},
			expectedOut: `video_id: dQw4w9WgXcQ
start_seconds: 10
end_seconds: 25
duration_seconds: 15
segment_id: yt_dQw4w9WgXcQ_10_25
youtube_link: https://www.youtube.com/watch?v=dQw4w9WgXcQ
segment_display_time: 00:10 - 00:25
`,
		},
		"custom-policy": {
			args: []string{"resolve", "https://youtu.be/dQw4w9WgXcQ", "--default-seconds", "30", "--max-seconds", "10", "-o", "yaml"},
			expectedOut: `video_id: dQw4w9WgXcQ
start_seconds: 0
end_seconds: 10
duration_seconds: 10
segment_id: yt_dQw4w9WgXcQ_0_10
youtube_link: https://www.youtube.com/watch?v=dQw4w9WgXcQ
segment_display_time: 00:00 - 00:10
`,
		},
		"invalid-reference": {
			args:      []string{"resolve", "https://example.com/watch?v=dQw4w9WgXcQ"},
			expectErr: "could not find a video id",
		},
		"invalid-policy": {
			args:      []string{"resolve", "https://youtu.be/dQw4w9WgXcQ", "--max-seconds", "0"},
			expectErr: "maximum clip duration must be positive",
		},
		"unsupported-format": {
			args:      []string{"resolve", "https://youtu.be/dQw4w9WgXcQ", "-o", "xml"},
			expectErr: `unsupported output format "xml"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOut, out)
		})
	}
}

func TestEmbedCommand_InvalidParams(t *testing.T) {
	_, err := runCommand(t, "embed", "clip.mp3", "--embedding-size", "128")
	t.Cleanup(func() { embedFlags.size = 512 })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding size 128 is not supported")
}

func TestCompareCommand_RequiresTwoClips(t *testing.T) {
	_, err := runCommand(t, "compare", "a.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s), received 1")
}

func TestModelsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/msgpack")
		_ = msgpack.NewEncoder(w).Encode(modelrunner.ModelsResponse{Models: []modelrunner.ModelInfo{
			{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 512},
			{InputRepr: "linear", ContentType: "env", EmbeddingSize: 6144},
		}})
	}))
	defer srv.Close()
	t.Cleanup(func() {
		modelsFlags.output = "json"
		modelsFlags.modelHost = "http://localhost:8501"
	})

	out, err := runCommand(t, "models", "--model-host", srv.URL, "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, `- input_repr: mel256
  content_type: music
  embedding_size: 512
  active: true
- input_repr: linear
  content_type: env
  embedding_size: 6144
  active: false
`, out)
}
