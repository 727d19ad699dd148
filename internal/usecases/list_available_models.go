package usecases

import (
	"context"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// AvailableModel is a model configuration loaded on the feature model server.
type AvailableModel struct {
	Params domain.ModelParams
	// Active is set on the configuration this service extracts with.
	Active bool
}

// ListAvailableModels defines the use case for listing the feature model configurations
type ListAvailableModels interface {
	Query(ctx context.Context) ([]AvailableModel, error)
}

// ListAvailableModelsImpl implements the ListAvailableModels use case
type ListAvailableModelsImpl struct {
	catalog domain.ModelCatalog
	params  domain.ModelParams
}

// NewListAvailableModelsImpl creates a new ListAvailableModelsImpl instance
func NewListAvailableModelsImpl(catalog domain.ModelCatalog, params domain.ModelParams) *ListAvailableModelsImpl {
	return &ListAvailableModelsImpl{
		catalog: catalog,
		params:  params,
	}
}

// Query retrieves the configurations loaded on the feature model server
func (uc ListAvailableModelsImpl) Query(ctx context.Context) ([]AvailableModel, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, err := uc.catalog.ListModels(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewModelFailureErr("cannot list feature models", err)
	}

	res := make([]AvailableModel, 0, len(models))
	for _, m := range models {
		res = append(res, AvailableModel{
			Params: m,
			Active: m.Matches(uc.params),
		})
	}
	return res, nil
}

type InitListAvailableModels struct {
	Catalog domain.ModelCatalog `resolve:""`
	Params  domain.ModelParams  `resolve:""`
}

// Initialize registers the ListAvailableModels use case in the dependency container
func (i InitListAvailableModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListAvailableModels](NewListAvailableModelsImpl(i.Catalog, i.Params))
	return ctx, nil
}
