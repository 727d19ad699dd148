package http

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/cleitonmarx/resona/internal/adapters/inbound/http/gen"
)

const audioFileField = "audio_file"

// segmentFormBytes caps the analyze-segment form body.
const segmentFormBytes = 1 << 20

// multipartMemory is how much of an upload is buffered in memory before
// spilling to a temporary file.
const multipartMemory = 8 << 20

// Welcome greets API clients and points them at the web page.
func (api ResonaServer) Welcome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the RESONA API. Visit /static/index.html for the app.",
	})
}

func (api ResonaServer) ResolveSegment(w http.ResponseWriter, r *http.Request, params gen.ResolveSegmentParams) {
	window, err := api.ResolveSegmentUseCase.Execute(r.Context(), params.Url)
	if err != nil {
		api.logFailure(r, err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toSegmentWindow(window))
}

func (api ResonaServer) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := api.ListModelsUseCase.Query(r.Context())
	if err != nil {
		api.logFailure(r, err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toModelsResponse(models))
}

func (api ResonaServer) AnalyzeSegment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, segmentFormBytes)
	if err := parseSegmentForm(r); err != nil {
		respondError(w, newErrorResp(gen.BADREQUEST, fmt.Sprintf("invalid form body: %v", err)))
		return
	}
	body := gen.AnalyzeSegmentFormdataRequestBody{YoutubeUrl: r.PostForm.Get("youtube_url")}

	ctx, cancel := api.analysisContext(r.Context())
	defer cancel()

	analysis, err := api.AnalyzeSegmentUseCase.Execute(ctx, body.YoutubeUrl)
	if err != nil {
		api.logFailure(r, err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toAnalysisResponse(analysis))
}

func (api ResonaServer) AnalyzeAudio(w http.ResponseWriter, r *http.Request) {
	if api.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, api.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, newErrorResp(gen.PAYLOADTOOLARGE, fmt.Sprintf("audio file exceeds %d bytes", tooLarge.Limit)))
			return
		}
		respondError(w, newErrorResp(gen.BADREQUEST, fmt.Sprintf("invalid multipart body: %v", err)))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	headers := r.MultipartForm.File[audioFileField]
	if len(headers) == 0 {
		respondError(w, newErrorResp(gen.BADREQUEST, audioFileField+" is required"))
		return
	}

	var body gen.AnalyzeAudioMultipartRequestBody
	body.AudioFile.InitFromMultipart(headers[0])
	content, err := body.AudioFile.Reader()
	if err != nil {
		api.logFailure(r, err)
		respondError(w, toError(err))
		return
	}
	defer content.Close() //nolint:errcheck

	ctx, cancel := api.analysisContext(r.Context())
	defer cancel()

	analysis, err := api.AnalyzeUploadUseCase.Execute(ctx, body.AudioFile.Filename(), content)
	if err != nil {
		api.logFailure(r, err)
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toAnalysisResponse(analysis))
}

// parseSegmentForm accepts both urlencoded and multipart form bodies.
func parseSegmentForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.ParseForm()
	}
	if err := r.ParseMultipartForm(segmentFormBytes); err != nil {
		return err
	}
	return r.MultipartForm.RemoveAll()
}

func (api ResonaServer) analysisContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if api.AnalysisTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, api.AnalysisTimeout)
}

// logFailure logs server-side failures at error level and client mistakes at info.
func (api ResonaServer) logFailure(r *http.Request, err error) {
	entry := api.Logger.WithField("path", r.URL.Path)
	if statusFor(toError(err).Error.Code) >= http.StatusInternalServerError {
		entry.Errorf("ResonaServer: request failed: %v", err)
		return
	}
	entry.Infof("ResonaServer: request rejected: %v", err)
}
