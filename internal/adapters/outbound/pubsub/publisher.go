package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// segmentAnalyzedMessage is the wire format of a SEGMENT.ANALYZED event.
type segmentAnalyzedMessage struct {
	SegmentID     string    `json:"segment_id"`
	Source        string    `json:"source"`
	VideoID       string    `json:"video_id,omitempty"`
	StartSeconds  *int      `json:"start_seconds,omitempty"`
	EndSeconds    *int      `json:"end_seconds,omitempty"`
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	Embedding     []float64 `json:"embedding"`
	InputRepr     string    `json:"input_repr"`
	ContentType   string    `json:"content_type"`
	EmbeddingSize int       `json:"embedding_size"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

func newSegmentAnalyzedMessage(event domain.SegmentAnalyzedEvent) segmentAnalyzedMessage {
	msg := segmentAnalyzedMessage{
		SegmentID:     event.Segment.ID,
		Source:        string(event.Segment.Source),
		Title:         event.Segment.Title,
		Artist:        event.Segment.Artist,
		Embedding:     event.Embedding.Vector,
		InputRepr:     event.Params.InputRepr,
		ContentType:   event.Params.ContentType,
		EmbeddingSize: event.Params.EmbeddingSize,
		AnalyzedAt:    event.AnalyzedAt.UTC(),
	}
	if event.Window != nil {
		start, end := event.Window.StartSeconds, event.Window.EndSeconds
		msg.VideoID = event.Window.VideoID
		msg.StartSeconds = &start
		msg.EndSeconds = &end
	}
	return msg
}

// PubSubEventPublisher implements domain.AnalysisEventPublisher using Google Cloud Pub/Sub.
type PubSubEventPublisher struct {
	client *pubsubV2.Client
	topic  string
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher.
func NewPubSubEventPublisher(client *pubsubV2.Client, topic string) PubSubEventPublisher {
	return PubSubEventPublisher{client: client, topic: topic}
}

// PublishSegmentAnalyzed publishes the event to the analysis events topic.
func (p PubSubEventPublisher) PublishSegmentAnalyzed(ctx context.Context, event domain.SegmentAnalyzedEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("segment_id", event.Segment.ID),
			attribute.String("event_type", string(event.Type)),
			attribute.String("topic", p.topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(newSegmentAnalyzedMessage(event))
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("marshal segment analyzed event: %w", err)
	}

	result := p.client.Publisher(p.topic).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": string(event.Type),
			"source":     string(event.Segment.Source),
			"segment_id": event.Segment.ID,
		},
	})

	_, err = result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// NoopEventPublisher discards events when no topic is configured.
type NoopEventPublisher struct{}

// PublishSegmentAnalyzed does nothing.
func (NoopEventPublisher) PublishSegmentAnalyzed(context.Context, domain.SegmentAnalyzedEvent) error {
	return nil
}

// InitPublisher initializes the AnalysisEventPublisher implementation.
type InitPublisher struct {
	Logger  *logrus.Logger `resolve:""`
	TopicID string         `config:"ANALYSIS_EVENTS_TOPIC_ID" default:"-"`
	client  *pubsubV2.Client
}

// Initialize registers the Pub/Sub publisher, or a no-op one when the topic is disabled.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.TopicID == "-" {
		depend.Register[domain.AnalysisEventPublisher](NoopEventPublisher{})
		return ctx, nil
	}

	if i.client == nil {
		client, err := depend.Resolve[*pubsubV2.Client]()
		if err != nil {
			return ctx, fmt.Errorf("analysis events topic %s requires PUBSUB_PROJECT_ID: %w", i.TopicID, err)
		}
		i.client = client
	}

	i.Logger.WithField("topic", i.TopicID).Info("PubSub: publishing segment analyzed events")
	depend.Register[domain.AnalysisEventPublisher](NewPubSubEventPublisher(i.client, i.TopicID))
	return ctx, nil
}
