package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListAvailableModelsImpl_Query(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(catalog *domain.MockModelCatalog)
		expectedModels  []AvailableModel
		expectedErr     error
	}{
		"success": {
			setExpectations: func(catalog *domain.MockModelCatalog) {
				catalog.EXPECT().
					ListModels(mock.Anything).
					Return([]domain.ModelParams{
						{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 512},
						{InputRepr: "linear", ContentType: "env", EmbeddingSize: 6144},
					}, nil).
					Once()
			},
			expectedModels: []AvailableModel{
				{Params: domain.ModelParams{InputRepr: "mel256", ContentType: "music", EmbeddingSize: 512}, Active: true},
				{Params: domain.ModelParams{InputRepr: "linear", ContentType: "env", EmbeddingSize: 6144}},
			},
		},
		"nothing-loaded": {
			setExpectations: func(catalog *domain.MockModelCatalog) {
				catalog.EXPECT().
					ListModels(mock.Anything).
					Return(nil, nil).
					Once()
			},
			expectedModels: []AvailableModel{},
		},
		"catalog-error": {
			setExpectations: func(catalog *domain.MockModelCatalog) {
				catalog.EXPECT().
					ListModels(mock.Anything).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			expectedErr: domain.NewModelFailureErr("cannot list feature models", errors.New("connection refused")),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain.NewMockModelCatalog(t)
			tt.setExpectations(catalog)

			uc := NewListAvailableModelsImpl(catalog, domain.DefaultModelParams())
			got, err := uc.Query(context.Background())

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedModels, got)
		})
	}
}

func TestInitListAvailableModels_Initialize(t *testing.T) {
	init := InitListAvailableModels{
		Catalog: domain.NewMockModelCatalog(t),
		Params:  domain.DefaultModelParams(),
	}

	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListAvailableModels]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
