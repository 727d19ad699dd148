package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/sirupsen/logrus"
)

// SegmentRequest is the payload of an analysis request message.
type SegmentRequest struct {
	URL string `json:"url"`
}

// SegmentRequestSubscriber consumes segment analysis requests from Pub/Sub
// and runs them through the AnalyzeSegment use case.
type SegmentRequestSubscriber struct {
	Logger         *logrus.Logger          `resolve:""`
	AnalyzeSegment usecases.AnalyzeSegment `resolve:""`
	Interval       time.Duration           `config:"ANALYSIS_REQUESTS_BATCH_INTERVAL" default:"3s"`
	BatchSize      int                     `config:"ANALYSIS_REQUESTS_BATCH_SIZE" default:"4"`
	SubscriptionID string                  `config:"ANALYSIS_REQUESTS_SUBSCRIPTION_ID" default:"-"`
	// Client is resolved lazily so the subscriber can stay idle when Pub/Sub is not configured.
	Client              *pubsub.Client
	workerExecutionChan chan struct{}
}

// Run starts the subscriber. With no subscription configured it idles until ctx ends.
func (s SegmentRequestSubscriber) Run(ctx context.Context) error {
	if s.SubscriptionID == "-" {
		s.Logger.Info("SegmentRequestSubscriber: no subscription configured, idle")
		<-ctx.Done()
		return nil
	}

	if s.Client == nil {
		client, err := depend.Resolve[*pubsub.Client]()
		if err != nil {
			return fmt.Errorf("subscription %s requires PUBSUB_PROJECT_ID: %w", s.SubscriptionID, err)
		}
		s.Client = client
	}
	if s.BatchSize <= 0 {
		s.BatchSize = 4
	}
	if s.Interval <= 0 {
		s.Interval = 3 * time.Second
	}

	s.Logger.WithField("subscription", s.SubscriptionID).Info("SegmentRequestSubscriber: running...")

	msgCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case msgCh <- msg:
				// Ack later, after the analysis.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			for _, msg := range batch {
				msg.Nack()
			}
			s.Logger.Info("SegmentRequestSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-msgCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// flush analyzes the batch, deduplicating identical URLs.
func (s SegmentRequestSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Debugf("SegmentRequestSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	var order []string
	byURL := make(map[string][]*pubsub.Message)
	for _, msg := range batch {
		var req SegmentRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil || req.URL == "" {
			s.Logger.Warnf("SegmentRequestSubscriber: dropping malformed request %q", string(msg.Data))
			msg.Ack()
			continue
		}
		if _, found := byURL[req.URL]; !found {
			order = append(order, req.URL)
		}
		byURL[req.URL] = append(byURL[req.URL], msg)
	}

	for _, url := range order {
		msgs := byURL[url]
		_, err := s.AnalyzeSegment.Execute(ctx, url)
		switch {
		case err == nil, isPermanent(err):
			if err != nil {
				s.Logger.WithField("url", url).Warnf("SegmentRequestSubscriber: discarding request: %v", err)
			}
			for _, msg := range msgs {
				msg.Ack()
			}
		default:
			if !errors.Is(err, context.Canceled) {
				s.Logger.WithField("url", url).Errorf("SegmentRequestSubscriber: %v", err)
			}
			for _, msg := range msgs {
				msg.Nack()
			}
		}
	}
}

// isPermanent reports errors that retrying the same request cannot fix.
func isPermanent(err error) bool {
	var (
		invalidRef  *domain.InvalidReferenceErr
		unavailable *domain.ReferenceUnavailableErr
		validation  *domain.ValidationErr
	)
	return errors.As(err, &invalidRef) || errors.As(err, &unavailable) || errors.As(err, &validation)
}
