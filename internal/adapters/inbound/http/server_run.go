package http

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/resona/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

var _ gen.ServerInterface = (*ResonaServer)(nil)

// ResonaServer is the REST API and UI HTTP server for Resona.
type ResonaServer struct {
	Port                  int                          `config:"HTTP_PORT" default:"8080"`
	MaxUploadBytes        int64                        `config:"MAX_UPLOAD_BYTES" default:"26214400"`
	AnalysisTimeout       time.Duration                `config:"ANALYSIS_TIMEOUT" default:"5m"`
	Logger                *logrus.Logger               `resolve:""`
	ResolveSegmentUseCase usecases.ResolveSegment      `resolve:""`
	AnalyzeSegmentUseCase usecases.AnalyzeSegment      `resolve:""`
	AnalyzeUploadUseCase  usecases.AnalyzeUpload       `resolve:""`
	ListModelsUseCase     usecases.ListAvailableModels `resolve:""`
}

//go:embed static/*
var staticFS embed.FS

// Handler builds the full routing tree.
func (api ResonaServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", api.Welcome)
	mux.Handle("GET /static/", http.FileServerFS(staticFS))

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("resona-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			respondError(w, newErrorResp(gen.BADREQUEST, err.Error()))
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the ResonaServer.
func (api ResonaServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Infof("ResonaServer: listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Errorf("ResonaServer: error during shutdown: %v", err)
		} else {
			api.Logger.Info("ResonaServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ResonaServer is ready by performing a health check.
func (api ResonaServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
