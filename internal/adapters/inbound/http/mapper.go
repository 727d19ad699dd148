package http

import (
	"context"
	"errors"

	"github.com/cleitonmarx/resona/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/resona/internal/common"
	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/resona/internal/usecases"
)

func toError(err error) gen.ErrorResp {
	var (
		validation  *domain.ValidationErr
		invalidRef  *domain.InvalidReferenceErr
		unavailable *domain.ReferenceUnavailableErr
		decode      *domain.DecodeFailureErr
		model       *domain.ModelFailureErr
	)
	switch {
	case errors.As(err, &validation):
		return newErrorResp(gen.BADREQUEST, validation.Error())
	case errors.As(err, &invalidRef):
		return newErrorResp(gen.BADREQUEST, invalidRef.Error())
	case errors.As(err, &unavailable):
		return newErrorResp(gen.REFERENCEUNAVAILABLE, unavailable.Error())
	case errors.As(err, &decode):
		return newErrorResp(gen.DECODEFAILURE, decode.Error())
	case errors.As(err, &model):
		return newErrorResp(gen.MODELFAILURE, model.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return newErrorResp(gen.TIMEOUT, "analysis timed out")
	default:
		return newErrorResp(gen.INTERNALERROR, "internal server error")
	}
}

func toSegmentWindow(w domain.SegmentWindow) gen.SegmentWindow {
	return gen.SegmentWindow{
		VideoId:            w.VideoID,
		StartSeconds:       w.StartSeconds,
		EndSeconds:         w.EndSeconds,
		DurationSeconds:    w.Duration(),
		SegmentId:          w.SegmentID(),
		YoutubeLink:        w.SourceURL(),
		SegmentDisplayTime: w.DisplayTime(),
	}
}

func toSegmentInfo(s domain.SegmentInfo) gen.SegmentInfo {
	info := gen.SegmentInfo{
		Id:                 s.ID,
		Source:             gen.SegmentInfoSource(s.Source),
		Title:              s.Title,
		Artist:             s.Artist,
		YoutubeLink:        s.SourceURL,
		SegmentDisplayTime: s.DisplayTime,
		MatchedFeatures:    []string{},
	}
	if s.ThumbnailURL != "" {
		info.ThumbnailUrl = common.Ptr(s.ThumbnailURL)
	}
	info.MatchedFeatures = append(info.MatchedFeatures, s.Features...)
	return info
}

func toModelParams(p domain.ModelParams) gen.ModelParams {
	return gen.ModelParams{
		InputRepr:        p.InputRepr,
		ContentType:      p.ContentType,
		EmbeddingSize:    p.EmbeddingSize,
		TargetSampleRate: p.TargetSampleRate,
	}
}

func toModelsResponse(models []usecases.AvailableModel) gen.ModelsResponse {
	resp := gen.ModelsResponse{Models: make([]gen.AvailableModel, 0, len(models))}
	for _, m := range models {
		resp.Models = append(resp.Models, gen.AvailableModel{
			InputRepr:     m.Params.InputRepr,
			ContentType:   m.Params.ContentType,
			EmbeddingSize: m.Params.EmbeddingSize,
			Active:        m.Active,
		})
	}
	return resp
}

func toAnalysisResponse(a domain.SegmentAnalysis) gen.AnalysisResponse {
	resp := gen.AnalysisResponse{
		SourceSegmentInfo: toSegmentInfo(a.Segment),
		Embedding:         a.Embedding.Vector,
		Model:             toModelParams(a.Params),
		SimilarSegments:   []gen.SegmentInfo{},
	}
	if resp.Embedding == nil {
		resp.Embedding = []float64{}
	}
	if a.Window != nil {
		window := toSegmentWindow(*a.Window)
		resp.Window = &window
	}
	for _, s := range a.Similar {
		resp.SimilarSegments = append(resp.SimilarSegments, toSegmentInfo(s))
	}
	return resp
}
