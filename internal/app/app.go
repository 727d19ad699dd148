package app

import (
	"github.com/cleitonmarx/resona/internal/adapters/inbound/http"
	"github.com/cleitonmarx/resona/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/resona/internal/adapters/outbound/config"
	"github.com/cleitonmarx/resona/internal/adapters/outbound/log"
	"github.com/cleitonmarx/resona/internal/adapters/outbound/media"
	"github.com/cleitonmarx/resona/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/resona/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/resona/internal/adapters/outbound/time"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewResonaApp creates and returns a new instance of the Resona application.
func NewResonaApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&config.InitConfigProviders{},
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&media.InitMediaFetcher{},
			&media.InitClipDecoder{},
			&media.InitAudioTagReader{},
			&modelrunner.InitFeatureModel{},

			&usecases.InitScratchSpace{},
			&usecases.InitResolveSegment{},
			&usecases.InitEmbeddingExtractor{},
			&usecases.InitAnalyzeSegment{},
			&usecases.InitAnalyzeUpload{},
			&usecases.InitListAvailableModels{},
		).
		Host(
			&http.ResonaServer{},
			&workers.ExtractionWorker{},
			&workers.SegmentRequestSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
