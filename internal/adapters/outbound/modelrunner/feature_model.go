package modelrunner

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// FeatureModelClient adapts the feature model server to domain.FeatureModel.
type FeatureModelClient struct {
	client FeatureModelAPIClient
}

// NewFeatureModelClient creates a new FeatureModelClient.
func NewFeatureModelClient(client FeatureModelAPIClient) FeatureModelClient {
	return FeatureModelClient{client: client}
}

// Embed sends the clip with the fixed model params and returns the frame embeddings.
func (fm FeatureModelClient) Embed(ctx context.Context, clip domain.AudioClip, params domain.ModelParams) (domain.FrameEmbeddings, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(
		attribute.String("model.input_repr", params.InputRepr),
		attribute.String("model.content_type", params.ContentType),
		attribute.Int("model.embedding_size", params.EmbeddingSize),
	)

	resp, err := fm.client.Embeddings(spanCtx, EmbeddingsRequest{
		Samples:          clip.Samples,
		SampleRate:       clip.SampleRate,
		Channels:         clip.Channels,
		InputRepr:        params.InputRepr,
		ContentType:      params.ContentType,
		EmbeddingSize:    params.EmbeddingSize,
		TargetSampleRate: params.TargetSampleRate,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.FrameEmbeddings{}, err
	}

	if len(resp.Timestamps) != 0 && len(resp.Timestamps) != len(resp.Embeddings) {
		err = fmt.Errorf("model returned %d frames but %d timestamps", len(resp.Embeddings), len(resp.Timestamps))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.FrameEmbeddings{}, err
	}

	return domain.FrameEmbeddings{
		Frames:     resp.Embeddings,
		Timestamps: resp.Timestamps,
	}, nil
}

// ListModels returns the configurations the server has loaded.
func (fm FeatureModelClient) ListModels(ctx context.Context) ([]domain.ModelParams, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := fm.client.Models(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	models := make([]domain.ModelParams, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, domain.ModelParams{
			InputRepr:     m.InputRepr,
			ContentType:   m.ContentType,
			EmbeddingSize: m.EmbeddingSize,
		})
	}
	return models, nil
}

// InitFeatureModel registers the feature model client.
type InitFeatureModel struct {
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"FEATURE_MODEL_HOST"`
}

// Initialize registers the client as the domain.FeatureModel and domain.ModelCatalog.
func (i InitFeatureModel) Initialize(ctx context.Context) (context.Context, error) {
	client := NewFeatureModelClient(NewFeatureModelAPIClient(i.ModelHost, "", i.HttpClient))
	depend.Register[domain.FeatureModel](client)
	depend.Register[domain.ModelCatalog](client)
	return ctx, nil
}
