package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// AnalyzeSegment defines the interface for the AnalyzeSegment use case.
type AnalyzeSegment interface {
	Execute(ctx context.Context, rawURL string) (domain.SegmentAnalysis, error)
}

// AnalyzeSegmentImpl is the implementation of the AnalyzeSegment use case.
type AnalyzeSegmentImpl struct {
	resolver     ResolveSegment
	fetcher      domain.MediaFetcher
	extractor    EmbeddingExtractor
	publisher    domain.AnalysisEventPublisher
	timeProvider domain.CurrentTimeProvider
	scratch      ScratchSpace
	params       domain.ModelParams
	logger       *logrus.Logger
	createUUID   func() uuid.UUID
}

// NewAnalyzeSegmentImpl creates a new instance of AnalyzeSegmentImpl.
func NewAnalyzeSegmentImpl(
	resolver ResolveSegment,
	fetcher domain.MediaFetcher,
	extractor EmbeddingExtractor,
	publisher domain.AnalysisEventPublisher,
	timeProvider domain.CurrentTimeProvider,
	scratch ScratchSpace,
	params domain.ModelParams,
	logger *logrus.Logger,
) AnalyzeSegmentImpl {
	return AnalyzeSegmentImpl{
		resolver:     resolver,
		fetcher:      fetcher,
		extractor:    extractor,
		publisher:    publisher,
		timeProvider: timeProvider,
		scratch:      scratch,
		params:       params,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// Execute resolves the segment window, downloads its audio and computes the
// embedding. Scratch files are removed on every exit path.
func (as AnalyzeSegmentImpl) Execute(ctx context.Context, rawURL string) (analysis domain.SegmentAnalysis, err error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	defer func() {
		RecordSegmentAnalysis(spanCtx, domain.SegmentSource_YOUTUBE, err)
	}()

	window, err := as.resolver.Execute(spanCtx, rawURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SegmentAnalysis{}, err
	}
	span.SetAttributes(
		attribute.String("segment.video_id", window.VideoID),
		attribute.Int("segment.start_seconds", window.StartSeconds),
		attribute.Int("segment.end_seconds", window.EndSeconds),
	)

	baseName := fmt.Sprintf("%s_%s", window.VideoID, as.createUUID())
	defer as.scratch.Cleanup(baseName)

	clip, err := as.fetcher.Fetch(spanCtx, domain.FetchRequest{
		Window:    window,
		OutputDir: as.scratch.Dir(),
		BaseName:  baseName,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SegmentAnalysis{}, err
	}

	vec, err := as.extractor.Extract(spanCtx, clip.Path)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SegmentAnalysis{}, err
	}

	analysis = domain.SegmentAnalysis{
		Segment:   domain.NewYouTubeSegmentInfo(window, clip),
		Window:    &window,
		Embedding: vec,
		Params:    as.params,
		Similar:   []domain.SegmentInfo{},
	}

	publishAnalysis(spanCtx, as.publisher, as.timeProvider, as.logger, analysis)

	return analysis, nil
}

// publishAnalysis emits the analyzed event. A failure is logged and does not
// affect the analysis result.
func publishAnalysis(
	ctx context.Context,
	publisher domain.AnalysisEventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *logrus.Logger,
	analysis domain.SegmentAnalysis,
) {
	event := domain.NewSegmentAnalyzedEvent(analysis, timeProvider.Now())
	if err := publisher.PublishSegmentAnalyzed(ctx, event); err != nil {
		logger.WithField("segment_id", analysis.Segment.ID).Errorf("AnalysisEvents: cannot publish analyzed event: %v", err)
	}
}

// InitAnalyzeSegment initializes the AnalyzeSegment use case and registers it in the dependency container.
type InitAnalyzeSegment struct {
	Resolver     ResolveSegment                `resolve:""`
	Fetcher      domain.MediaFetcher           `resolve:""`
	Extractor    EmbeddingExtractor            `resolve:""`
	Publisher    domain.AnalysisEventPublisher `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Scratch      ScratchSpace                  `resolve:""`
	Params       domain.ModelParams            `resolve:""`
	Logger       *logrus.Logger                `resolve:""`
}

// Initialize registers the AnalyzeSegment use case.
func (ias InitAnalyzeSegment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeSegment](NewAnalyzeSegmentImpl(
		ias.Resolver, ias.Fetcher, ias.Extractor, ias.Publisher, ias.TimeProvider, ias.Scratch, ias.Params, ias.Logger,
	))
	return ctx, nil
}
