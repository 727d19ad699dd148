package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanPool(t *testing.T) {
	tests := map[string]struct {
		frames        [][]float32
		expected      []float64
		expectedError string
	}{
		"two-frames": {
			frames:   [][]float32{{1, 2, 3}, {3, 4, 5}},
			expected: []float64{2, 3, 4},
		},
		"single-frame": {
			frames:   [][]float32{{0.5, -0.5}},
			expected: []float64{0.5, -0.5},
		},
		"no-frames": {
			frames:        nil,
			expectedError: "no frames to pool",
		},
		"empty-frames": {
			frames:        [][]float32{{}, {}},
			expectedError: "frames are empty",
		},
		"ragged-frames": {
			frames:        [][]float32{{1, 2, 3}, {1, 2}},
			expectedError: "frame 1 has 2 components, expected 3",
		},
		"non-finite": {
			frames:        [][]float32{{1, float32(math.NaN())}},
			expectedError: "component 1 is not finite",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := MeanPool(tt.frames)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.expected, got, 1e-9)
		})
	}
}

func TestMeanPool_FixedWidthAcrossFrameCounts(t *testing.T) {
	frames := func(n int) [][]float32 {
		out := make([][]float32, n)
		for i := range out {
			out[i] = make([]float32, DefaultEmbeddingSize)
			for j := range out[i] {
				out[i][j] = float32(i + j)
			}
		}
		return out
	}

	short, err := MeanPool(frames(5))
	require.NoError(t, err)
	long, err := MeanPool(frames(20))
	require.NoError(t, err)

	assert.Len(t, short, DefaultEmbeddingSize)
	assert.Len(t, long, DefaultEmbeddingSize)
}

func TestModelParams_Validate(t *testing.T) {
	tests := map[string]struct {
		params  ModelParams
		wantErr bool
	}{
		"defaults": {
			params: DefaultModelParams(),
		},
		"large-embedding": {
			params: ModelParams{InputRepr: "linear", ContentType: "env", EmbeddingSize: 6144, TargetSampleRate: 48000},
		},
		"unknown-input-repr": {
			params:  ModelParams{InputRepr: "mfcc", ContentType: "music", EmbeddingSize: 512, TargetSampleRate: 48000},
			wantErr: true,
		},
		"unknown-content-type": {
			params:  ModelParams{InputRepr: "mel256", ContentType: "speech", EmbeddingSize: 512, TargetSampleRate: 48000},
			wantErr: true,
		},
		"unsupported-embedding-size": {
			params:  ModelParams{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 128, TargetSampleRate: 48000},
			wantErr: true,
		},
		"zero-sample-rate": {
			params:  ModelParams{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 512},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				var validationErr *ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestModelParams_Matches(t *testing.T) {
	active := DefaultModelParams()

	assert.True(t, active.Matches(ModelParams{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 512}))
	assert.False(t, active.Matches(ModelParams{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 6144}))
	assert.False(t, active.Matches(ModelParams{InputRepr: "linear", ContentType: "env", EmbeddingSize: 512}))
}

func TestAudioClip_Duration(t *testing.T) {
	clip := AudioClip{Samples: make([]float32, 96000), SampleRate: 48000, Channels: 1}
	assert.InDelta(t, 2.0, clip.Duration(), 1e-9)

	stereo := AudioClip{Samples: make([]float32, 96000), SampleRate: 48000, Channels: 2}
	assert.InDelta(t, 1.0, stereo.Duration(), 1e-9)

	assert.Zero(t, AudioClip{}.Duration())
}
