package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_SEGMENT_ANALYZED represents the event when a segment embedding has been computed.
	EventType_SEGMENT_ANALYZED EventType = "SEGMENT.ANALYZED"
)

// SegmentAnalyzedEvent carries a computed embedding to downstream consumers
// such as a catalog indexer.
type SegmentAnalyzedEvent struct {
	Type       EventType
	Segment    SegmentInfo
	Window     *SegmentWindow
	Embedding  EmbeddingVector
	Params     ModelParams
	AnalyzedAt time.Time
}

// NewSegmentAnalyzedEvent builds the event for a finished analysis.
func NewSegmentAnalyzedEvent(analysis SegmentAnalysis, analyzedAt time.Time) SegmentAnalyzedEvent {
	return SegmentAnalyzedEvent{
		Type:       EventType_SEGMENT_ANALYZED,
		Segment:    analysis.Segment,
		Window:     analysis.Window,
		Embedding:  analysis.Embedding,
		Params:     analysis.Params,
		AnalyzedAt: analyzedAt,
	}
}

// AnalysisEventPublisher defines the interface for publishing analysis events.
type AnalysisEventPublisher interface {
	PublishSegmentAnalyzed(ctx context.Context, event SegmentAnalyzedEvent) error
}
