package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cleitonmarx/resona/internal/usecases"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type serverMocks struct {
	resolve *usecases.MockResolveSegment
	segment *usecases.MockAnalyzeSegment
	upload  *usecases.MockAnalyzeUpload
	models  *usecases.MockListAvailableModels
}

func newTestServer(t *testing.T) (ResonaServer, serverMocks) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mocks := serverMocks{
		resolve: usecases.NewMockResolveSegment(t),
		segment: usecases.NewMockAnalyzeSegment(t),
		upload:  usecases.NewMockAnalyzeUpload(t),
		models:  usecases.NewMockListAvailableModels(t),
	}
	return ResonaServer{
		MaxUploadBytes:        1 << 20,
		Logger:                logger,
		ResolveSegmentUseCase: mocks.resolve,
		AnalyzeSegmentUseCase: mocks.segment,
		AnalyzeUploadUseCase:  mocks.upload,
		ListModelsUseCase:     mocks.models,
	}, mocks
}

func serve(t *testing.T, server ResonaServer, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func newFormRequest(youtubeURL string) *http.Request {
	form := url.Values{}
	if youtubeURL != "" {
		form.Set("youtube_url", youtubeURL)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-segment", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func newMultipartFormRequest(t *testing.T, youtubeURL string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("youtube_url", youtubeURL))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-segment", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newMultipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("other", "value"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
