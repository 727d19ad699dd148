package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// EmbeddingExtractor turns an audio clip into one fixed-dimension embedding.
type EmbeddingExtractor interface {
	Extract(ctx context.Context, clipPath string) (domain.EmbeddingVector, error)
}

// EmbeddingExtractorImpl decodes a clip, runs the feature model and mean-pools
// the frame embeddings.
type EmbeddingExtractorImpl struct {
	decoder domain.ClipDecoder
	model   domain.FeatureModel
	params  domain.ModelParams
}

// NewEmbeddingExtractorImpl creates a new instance of EmbeddingExtractorImpl.
func NewEmbeddingExtractorImpl(decoder domain.ClipDecoder, model domain.FeatureModel, params domain.ModelParams) EmbeddingExtractorImpl {
	return EmbeddingExtractorImpl{
		decoder: decoder,
		model:   model,
		params:  params,
	}
}

// Params returns the feature model settings used for every extraction.
func (ee EmbeddingExtractorImpl) Params() domain.ModelParams {
	return ee.params
}

// Extract computes the embedding of the clip at clipPath. Decoding problems
// fail with DecodeFailureErr and model problems with ModelFailureErr.
func (ee EmbeddingExtractorImpl) Extract(ctx context.Context, clipPath string) (vec domain.EmbeddingVector, err error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	startedAt := time.Now()
	defer func() {
		RecordEmbeddingExtractionDuration(spanCtx, time.Since(startedAt), err)
	}()

	clip, err := ee.decoder.Decode(spanCtx, clipPath)
	if err != nil {
		err = domain.NewDecodeFailureErr(fmt.Sprintf("cannot decode %s", clipPath), err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}
	if len(clip.Samples) == 0 || clip.SampleRate <= 0 {
		err = domain.NewDecodeFailureErr(fmt.Sprintf("%s contains no audio samples", clipPath), nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}
	span.SetAttributes(
		attribute.Int("audio.sample_rate", clip.SampleRate),
		attribute.Float64("audio.duration_seconds", clip.Duration()),
	)

	frames, err := ee.model.Embed(spanCtx, clip, ee.params)
	if err != nil {
		err = domain.NewModelFailureErr("feature model invocation failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}
	if len(frames.Frames) == 0 {
		err = domain.NewModelFailureErr("feature model produced no frames", nil)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}
	span.SetAttributes(attribute.Int("model.frames", len(frames.Frames)))

	pooled, err := domain.MeanPool(frames.Frames)
	if err != nil {
		err = domain.NewModelFailureErr("cannot pool frame embeddings", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}
	if len(pooled) != ee.params.EmbeddingSize {
		err = domain.NewModelFailureErr(
			fmt.Sprintf("feature model returned %d dimensions, expected %d", len(pooled), ee.params.EmbeddingSize), nil,
		)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return domain.EmbeddingVector{Vector: pooled}, nil
}

// InitEmbeddingExtractor builds the extractor, puts it behind the extraction
// pool and registers both in the dependency container.
type InitEmbeddingExtractor struct {
	Decoder          domain.ClipDecoder  `resolve:""`
	Model            domain.FeatureModel `resolve:""`
	InputRepr        string              `config:"FEATURE_INPUT_REPR" default:"mel256"`
	ContentType      string              `config:"FEATURE_CONTENT_TYPE" default:"music"`
	EmbeddingSize    int                 `config:"FEATURE_EMBEDDING_SIZE" default:"512"`
	TargetSampleRate int                 `config:"FEATURE_TARGET_SAMPLE_RATE" default:"48000"`
	QueueSize        int                 `config:"EXTRACTION_QUEUE_SIZE" default:"16"`
	Timeout          time.Duration       `config:"EXTRACTION_TIMEOUT" default:"2m"`
}

// Initialize validates the model settings and registers the extractor.
func (iee InitEmbeddingExtractor) Initialize(ctx context.Context) (context.Context, error) {
	params := domain.ModelParams{
		InputRepr:        iee.InputRepr,
		ContentType:      iee.ContentType,
		EmbeddingSize:    iee.EmbeddingSize,
		TargetSampleRate: iee.TargetSampleRate,
	}
	if err := params.Validate(); err != nil {
		return ctx, err
	}

	pool := NewExtractionPool(NewEmbeddingExtractorImpl(iee.Decoder, iee.Model, params), iee.QueueSize, iee.Timeout)
	depend.Register(params)
	depend.Register(pool)
	depend.Register[EmbeddingExtractor](pool)
	return ctx, nil
}
