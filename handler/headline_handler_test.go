package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdeck/domain"
	"newsdeck/handler"
	"newsdeck/service"
	"newsdeck/test/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestHeadlineHandler_DefaultsToUnlimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockHeadlineProvider(ctrl)
	provider.EXPECT().
		FetchHeadlines(gomock.Any(), service.Unlimited, false).
		Return([]domain.Headline{
			{Title: "First", URL: "https://example.com/a", Section: "Tech"},
			{Title: "Second", URL: "https://example.com/b", Section: "World"},
		}, true, "[Tech] First | [World] Second")

	h := handler.NewHeadlineHandler(provider, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/headlines", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleHeadlines(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.HeadlinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.True(t, resp.FromCache)
	assert.Equal(t, "[Tech] First | [World] Second", resp.Ticker)
	assert.Equal(t, "First", resp.Headlines[0].Title)
}

func TestHeadlineHandler_ParsesLimitAndRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockHeadlineProvider(ctrl)
	provider.EXPECT().
		FetchHeadlines(gomock.Any(), 5, true).
		Return([]domain.Headline{{Title: "Fresh", URL: "https://example.com/f", Section: "Tech"}}, false, "")

	h := handler.NewHeadlineHandler(provider, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/headlines?limit=5&refresh=true", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleHeadlines(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.HeadlinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.FromCache)
	assert.Equal(t, 1, resp.Count)
}

func TestHeadlineHandler_RejectsBadQueryParams(t *testing.T) {
	tests := map[string]struct {
		target string
	}{
		"non_numeric_limit": {target: "/api/v1/headlines?limit=lots"},
		"non_bool_refresh":  {target: "/api/v1/headlines?refresh=sometimes"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			provider := mocks.NewMockHeadlineProvider(ctrl)
			h := handler.NewHeadlineHandler(provider, testLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			err := h.HandleHeadlines(e.NewContext(req, rec))
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestHeadlineHandler_EmptyResultServesEmptyArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockHeadlineProvider(ctrl)
	provider.EXPECT().
		FetchHeadlines(gomock.Any(), service.Unlimited, false).
		Return(nil, false, "")

	h := handler.NewHeadlineHandler(provider, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/headlines", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleHeadlines(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"headlines":[]`)
}
