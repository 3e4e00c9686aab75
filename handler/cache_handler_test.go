package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsdeck/domain"
	"newsdeck/handler"
	"newsdeck/test/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCacheHandler_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCacheRepository(ctrl)
	cache.EXPECT().Statistics(gomock.Any()).Return(&domain.CacheStatistics{
		CacheConfigured: true,
		Available:       true,
		CacheKey:        "newsdeck:headlines",
		KeyPresent:      true,
		HeadlineCount:   12,
		SummaryCount:    4,
	})

	h := handler.NewCacheHandler(cache, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cache/stats", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleStatistics(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats domain.CacheStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.True(t, stats.Available)
	assert.Equal(t, 12, stats.HeadlineCount)
}

func TestCacheHandler_Clear(t *testing.T) {
	tests := map[string]struct {
		ok           bool
		message      string
		expectedCode int
	}{
		"clear_succeeds": {
			ok:           true,
			message:      "Cache cleared (primary key, 2 historical snapshot(s)).",
			expectedCode: http.StatusOK,
		},
		"already_empty": {
			ok:           true,
			message:      "Cache already empty.",
			expectedCode: http.StatusOK,
		},
		"backend_failure": {
			ok:           false,
			message:      "Failed to clear cache. Check logs for details.",
			expectedCode: http.StatusBadGateway,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cache := mocks.NewMockCacheRepository(ctrl)
			cache.EXPECT().Clear(gomock.Any()).Return(tc.ok, tc.message)

			h := handler.NewCacheHandler(cache, testLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil)
			rec := httptest.NewRecorder()

			require.NoError(t, h.HandleClear(e.NewContext(req, rec)))
			assert.Equal(t, tc.expectedCode, rec.Code)

			var resp handler.ClearCacheResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.ok, resp.Success)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestCacheHandler_HistoryToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCacheRepository(ctrl)
	cache.EXPECT().SetHistoryEnabled(false)
	cache.EXPECT().HistoryEnabled().Return(false)

	h := handler.NewCacheHandler(cache, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cache/history", bytes.NewReader([]byte(`{"enabled":false}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleHistoryToggle(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"enabled":false`)
}

func TestCacheHandler_HistoryToggleRequiresEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCacheRepository(ctrl)
	h := handler.NewCacheHandler(cache, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cache/history", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.HandleHistoryToggle(e.NewContext(req, rec))
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCacheHandler_HistoryListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	capturedAt := time.Date(2026, 8, 31, 11, 0, 0, 0, time.UTC)
	cache := mocks.NewMockCacheRepository(ctrl)
	cache.EXPECT().
		ListSnapshots(gomock.Any(), 3).
		Return([]domain.HistoricalSnapshot{
			{Key: "newsdeck:2026-08-31:110000", CapturedAt: capturedAt, HeadlineCount: 7, SummaryCount: 2},
		}, nil)

	h := handler.NewCacheHandler(cache, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=3", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleHistory(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "newsdeck:2026-08-31:110000", resp.Snapshots[0].Key)
}

func TestCacheHandler_HistoryRejectsNegativeLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mocks.NewMockCacheRepository(ctrl)
	h := handler.NewCacheHandler(cache, testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=-1", nil)
	rec := httptest.NewRecorder()

	err := h.HandleHistory(e.NewContext(req, rec))
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
