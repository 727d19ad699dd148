package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExtractionWorker_Run(t *testing.T) {
	tests := map[string]struct {
		workers        int
		clips          []string
		setExpectation func(*usecases.MockEmbeddingExtractor)
		expectedErr    error
	}{
		"processes-queued-clips": {
			workers: 2,
			clips:   []string{"a.mp3", "b.mp3", "c.mp3"},
			setExpectation: func(m *usecases.MockEmbeddingExtractor) {
				m.EXPECT().Extract(mock.Anything, mock.Anything).
					Return(domain.EmbeddingVector{Vector: []float64{1, 2}}, nil).
					Times(3)
			},
		},
		"zero-workers-falls-back-to-one": {
			workers: 0,
			clips:   []string{"a.mp3"},
			setExpectation: func(m *usecases.MockEmbeddingExtractor) {
				m.EXPECT().Extract(mock.Anything, "a.mp3").
					Return(domain.EmbeddingVector{Vector: []float64{1, 2}}, nil).
					Once()
			},
		},
		"propagates-extractor-error": {
			workers: 1,
			clips:   []string{"broken.mp3"},
			setExpectation: func(m *usecases.MockEmbeddingExtractor) {
				m.EXPECT().Extract(mock.Anything, "broken.mp3").
					Return(domain.EmbeddingVector{}, errors.New("boom")).
					Once()
			},
			expectedErr: errors.New("boom"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			extractor := usecases.NewMockEmbeddingExtractor(t)
			tt.setExpectation(extractor)

			pool := usecases.NewExtractionPool(extractor, 4, 5*time.Second)
			cancel, doneChan := run(t, t.Context(), ExtractionWorker{
				Logger:  newDiscardLogger(),
				Pool:    pool,
				Workers: tt.workers,
			})

			for _, clip := range tt.clips {
				vec, err := pool.Extract(context.Background(), clip)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, []float64{1, 2}, vec.Vector)
			}

			cancel()
			waitRunnableStop(t, doneChan)
		})
	}
}
