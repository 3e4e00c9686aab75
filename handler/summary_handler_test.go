package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdeck/domain"
	"newsdeck/handler"
	"newsdeck/test/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postSummary(t *testing.T, h *handler.SummaryHandler, body any) (*httptest.ResponseRecorder, error) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, h.HandleSummary(e.NewContext(req, rec))
}

func TestSummaryHandler_ResolvesSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockSummaryResolver(ctrl)
	resolver.EXPECT().
		ResolveSummary(gomock.Any(), domain.Headline{
			Title:   "Chip shortage eases",
			URL:     "https://example.com/chips",
			Section: "Tech",
		}).
		Return(domain.SummaryResolution{
			Summary:   "- Supply recovered\nTakeaway: prices fall",
			FromCache: true,
			SourceURL: "https://example.com/chips",
		})

	h := handler.NewSummaryHandler(resolver, testLogger())

	rec, err := postSummary(t, h, handler.SummaryRequest{
		URL:     "https://example.com/chips",
		Title:   "Chip shortage eases",
		Section: "Tech",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resolution domain.SummaryResolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolution))
	assert.True(t, resolution.FromCache)
	assert.Contains(t, resolution.Summary, "Takeaway:")
}

func TestSummaryHandler_DefaultsSectionAndTrimsFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockSummaryResolver(ctrl)
	resolver.EXPECT().
		ResolveSummary(gomock.Any(), domain.Headline{
			Title:   "Untrimmed",
			URL:     "https://example.com/a",
			Section: domain.DefaultSection,
		}).
		Return(domain.SummaryResolution{Summary: "ok"})

	h := handler.NewSummaryHandler(resolver, testLogger())

	rec, err := postSummary(t, h, map[string]string{
		"url":   "  https://example.com/a  ",
		"title": " Untrimmed ",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSummaryHandler_RejectsIncompleteRequests(t *testing.T) {
	tests := map[string]struct {
		body any
	}{
		"missing_url":   {body: map[string]string{"title": "No link"}},
		"missing_title": {body: map[string]string{"url": "https://example.com/a"}},
		"blank_fields":  {body: map[string]string{"url": "   ", "title": "\t"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resolver := mocks.NewMockSummaryResolver(ctrl)
			h := handler.NewSummaryHandler(resolver, testLogger())

			_, err := postSummary(t, h, tc.body)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestSummaryHandler_RejectsMalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := mocks.NewMockSummaryResolver(ctrl)
	h := handler.NewSummaryHandler(resolver, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summary", bytes.NewReader([]byte("not json")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.HandleSummary(e.NewContext(req, rec))
	require.Error(t, err)
}
