package modelrunner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestFeatureModelClient_Embed(t *testing.T) {
	clip := domain.AudioClip{Samples: []float32{0.5, 0.25}, SampleRate: 22050, Channels: 1}
	params := domain.DefaultModelParams()

	tests := map[string]struct {
		response       EmbeddingsResponse
		status         int
		expectedFrames domain.FrameEmbeddings
		expectErr      bool
	}{
		"success": {
			status: http.StatusOK,
			response: EmbeddingsResponse{
				Embeddings: [][]float32{{1, 0}, {0, 1}},
				Timestamps: []float64{0, 0.1},
			},
			expectedFrames: domain.FrameEmbeddings{
				Frames:     [][]float32{{1, 0}, {0, 1}},
				Timestamps: []float64{0, 0.1},
			},
		},
		"timestamps-mismatch": {
			status: http.StatusOK,
			response: EmbeddingsResponse{
				Embeddings: [][]float32{{1, 0}, {0, 1}},
				Timestamps: []float64{0},
			},
			expectErr: true,
		},
		"server-error": {
			status:    http.StatusInternalServerError,
			response:  EmbeddingsResponse{},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var got EmbeddingsRequest
				require.NoError(t, msgpack.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, clip.Samples, got.Samples)
				assert.Equal(t, params.InputRepr, got.InputRepr)
				assert.Equal(t, params.ContentType, got.ContentType)
				assert.Equal(t, params.EmbeddingSize, got.EmbeddingSize)
				assert.Equal(t, params.TargetSampleRate, got.TargetSampleRate)
				writeMsgpack(t, w, tt.status, tt.response)
			}))
			defer srv.Close()

			fm := NewFeatureModelClient(NewFeatureModelAPIClient(srv.URL, "", http.DefaultClient))
			got, err := fm.Embed(context.Background(), clip, params)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFrames, got)
		})
	}
}

func TestFeatureModelClient_ListModels(t *testing.T) {
	tests := map[string]struct {
		status         int
		body           any
		expectedModels []domain.ModelParams
		expectErr      bool
	}{
		"loaded-models": {
			status: http.StatusOK,
			body: ModelsResponse{Models: []ModelInfo{
				{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 512},
				{InputRepr: "linear", ContentType: "env", EmbeddingSize: 6144},
			}},
			expectedModels: []domain.ModelParams{
				{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 512},
				{InputRepr: "linear", ContentType: "env", EmbeddingSize: 6144},
			},
		},
		"no-models": {
			status:         http.StatusOK,
			body:           ModelsResponse{},
			expectedModels: []domain.ModelParams{},
		},
		"server-error": {
			status:    http.StatusServiceUnavailable,
			body:      ErrorResponse{Error: "warming up"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/models", r.URL.Path)
				writeMsgpack(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			fm := NewFeatureModelClient(NewFeatureModelAPIClient(srv.URL, "", http.DefaultClient))

			got, err := fm.ListModels(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedModels, got)
		})
	}
}

func TestInitFeatureModel_Initialize(t *testing.T) {
	i := InitFeatureModel{HttpClient: http.DefaultClient, ModelHost: "http://localhost:8501"}
	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	r, err := depend.Resolve[domain.FeatureModel]()
	assert.NoError(t, err)
	assert.NotNil(t, r)

	c, err := depend.Resolve[domain.ModelCatalog]()
	assert.NoError(t, err)
	assert.NotNil(t, c)
}
