package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/resona/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                       = otel.Meter("usecases")
	SegmentAnalyses             metric.Int64Counter
	EmbeddingExtractionDuration metric.Float64Histogram
)

func init() {
	var err error
	// Analyses by source (youtube, upload) and outcome (success, error)
	SegmentAnalyses, err = meter.Int64Counter(
		"segment_analyses_total",
		metric.WithDescription("Total segment analyses"),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingExtractionDuration, err = meter.Float64Histogram(
		"embedding_extraction_duration_seconds",
		metric.WithDescription("Time spent decoding a clip and running the feature model"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordSegmentAnalysis counts one finished analysis.
func RecordSegmentAnalysis(ctx context.Context, source domain.SegmentSource, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	SegmentAnalyses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", string(source)),
		attribute.String("outcome", outcome),
	))
}

// RecordEmbeddingExtractionDuration records how long one extraction took.
func RecordEmbeddingExtractionDuration(ctx context.Context, elapsed time.Duration, err error) {
	EmbeddingExtractionDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.Bool("error", err != nil),
	))
}
