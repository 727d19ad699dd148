package usecases

import (
	"context"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
)

// ResolveSegment defines the interface for the ResolveSegment use case.
type ResolveSegment interface {
	Execute(ctx context.Context, rawURL string) (domain.SegmentWindow, error)
}

// ResolveSegmentImpl is the implementation of the ResolveSegment use case.
type ResolveSegmentImpl struct {
	policy domain.ClipPolicy
	logger *logrus.Logger
}

// NewResolveSegmentImpl creates a new instance of ResolveSegmentImpl.
func NewResolveSegmentImpl(policy domain.ClipPolicy, logger *logrus.Logger) ResolveSegmentImpl {
	return ResolveSegmentImpl{
		policy: policy,
		logger: logger,
	}
}

// Execute resolves rawURL into a segment window under the configured clip policy.
func (rs ResolveSegmentImpl) Execute(ctx context.Context, rawURL string) (domain.SegmentWindow, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	ref, err := domain.ParseSegmentReference(rawURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SegmentWindow{}, err
	}

	for _, ignored := range ref.Ignored {
		rs.logger.WithField("video_id", ref.VideoID).Warnf("ResolveSegment: ignoring time parameter %s", ignored)
	}

	return rs.policy.Window(ref), nil
}

// InitResolveSegment initializes the ResolveSegment use case and registers it in the dependency container.
type InitResolveSegment struct {
	Logger         *logrus.Logger `resolve:""`
	DefaultSeconds int            `config:"CLIP_DEFAULT_SECONDS" default:"20"`
	MaxSeconds     int            `config:"CLIP_MAX_SECONDS" default:"20"`
}

// Initialize validates the clip policy and registers the ResolveSegment use case.
func (irs InitResolveSegment) Initialize(ctx context.Context) (context.Context, error) {
	policy := domain.ClipPolicy{DefaultSeconds: irs.DefaultSeconds, MaxSeconds: irs.MaxSeconds}
	if err := policy.Validate(); err != nil {
		return ctx, err
	}
	depend.Register[ResolveSegment](NewResolveSegmentImpl(policy, irs.Logger))
	return ctx, nil
}
