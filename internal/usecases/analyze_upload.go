package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AnalyzeUpload defines the interface for the AnalyzeUpload use case.
type AnalyzeUpload interface {
	Execute(ctx context.Context, filename string, content io.Reader) (domain.SegmentAnalysis, error)
}

// AnalyzeUploadImpl is the implementation of the AnalyzeUpload use case.
type AnalyzeUploadImpl struct {
	tagReader    domain.AudioTagReader
	extractor    EmbeddingExtractor
	publisher    domain.AnalysisEventPublisher
	timeProvider domain.CurrentTimeProvider
	scratch      ScratchSpace
	params       domain.ModelParams
	logger       *logrus.Logger
	createUUID   func() uuid.UUID
}

// NewAnalyzeUploadImpl creates a new instance of AnalyzeUploadImpl.
func NewAnalyzeUploadImpl(
	tagReader domain.AudioTagReader,
	extractor EmbeddingExtractor,
	publisher domain.AnalysisEventPublisher,
	timeProvider domain.CurrentTimeProvider,
	scratch ScratchSpace,
	params domain.ModelParams,
	logger *logrus.Logger,
) AnalyzeUploadImpl {
	return AnalyzeUploadImpl{
		tagReader:    tagReader,
		extractor:    extractor,
		publisher:    publisher,
		timeProvider: timeProvider,
		scratch:      scratch,
		params:       params,
		logger:       logger,
		createUUID:   uuid.New,
	}
}

// Execute stores the uploaded content in the scratch space and computes its
// embedding. The stored file is removed on every exit path.
func (au AnalyzeUploadImpl) Execute(ctx context.Context, filename string, content io.Reader) (analysis domain.SegmentAnalysis, err error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	defer func() {
		RecordSegmentAnalysis(spanCtx, domain.SegmentSource_UPLOAD, err)
	}()

	filename = strings.TrimSpace(filename)
	if filename == "" || filepath.Base(filename) == "." || filepath.Base(filename) == string(filepath.Separator) {
		err = domain.NewValidationErr("audio file name is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.SegmentAnalysis{}, err
	}
	if content == nil {
		err = domain.NewValidationErr("audio file content is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.SegmentAnalysis{}, err
	}

	baseName := fmt.Sprintf("upload_%s", au.createUUID())
	defer au.scratch.Cleanup(baseName)

	path, err := au.scratch.Store(baseName, strings.ToLower(filepath.Ext(filename)), content)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SegmentAnalysis{}, err
	}

	tags, tagErr := au.tagReader.ReadTags(path)
	if tagErr != nil {
		au.logger.WithField("filename", filename).Debugf("AnalyzeUpload: no readable tags: %v", tagErr)
	}

	vec, err := au.extractor.Extract(spanCtx, path)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SegmentAnalysis{}, err
	}

	analysis = domain.SegmentAnalysis{
		Segment:   domain.NewUploadSegmentInfo(filename, tags, au.timeProvider.Now()),
		Embedding: vec,
		Params:    au.params,
		Similar:   []domain.SegmentInfo{},
	}

	publishAnalysis(spanCtx, au.publisher, au.timeProvider, au.logger, analysis)

	return analysis, nil
}

// InitAnalyzeUpload initializes the AnalyzeUpload use case and registers it in the dependency container.
type InitAnalyzeUpload struct {
	TagReader    domain.AudioTagReader         `resolve:""`
	Extractor    EmbeddingExtractor            `resolve:""`
	Publisher    domain.AnalysisEventPublisher `resolve:""`
	TimeProvider domain.CurrentTimeProvider    `resolve:""`
	Scratch      ScratchSpace                  `resolve:""`
	Params       domain.ModelParams            `resolve:""`
	Logger       *logrus.Logger                `resolve:""`
}

// Initialize registers the AnalyzeUpload use case.
func (iau InitAnalyzeUpload) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeUpload](NewAnalyzeUploadImpl(
		iau.TagReader, iau.Extractor, iau.Publisher, iau.TimeProvider, iau.Scratch, iau.Params, iau.Logger,
	))
	return ctx, nil
}
