package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"newsdeck/domain"
	"newsdeck/repository"
)

// ClearCacheResponse reports the outcome of a cache purge.
type ClearCacheResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HistoryToggleRequest switches snapshot capture on or off at runtime.
type HistoryToggleRequest struct {
	Enabled *bool `json:"enabled"`
}

// HistoryToggleResponse echoes the effective toggle state.
type HistoryToggleResponse struct {
	Enabled bool `json:"enabled"`
}

// HistoryResponse lists historical cache snapshots, newest first.
type HistoryResponse struct {
	Snapshots []domain.HistoricalSnapshot `json:"snapshots"`
	Count     int                         `json:"count"`
}

// CacheHandler exposes cache diagnostics and administration.
type CacheHandler struct {
	cache  repository.CacheRepository
	logger *slog.Logger
}

func NewCacheHandler(cache repository.CacheRepository, logger *slog.Logger) *CacheHandler {
	return &CacheHandler{cache: cache, logger: logger}
}

// HandleStatistics handles GET /api/v1/cache/stats requests.
func (h *CacheHandler) HandleStatistics(c echo.Context) error {
	stats := h.cache.Statistics(c.Request().Context())
	return c.JSON(http.StatusOK, stats)
}

// HandleClear handles DELETE /api/v1/cache requests.
func (h *CacheHandler) HandleClear(c echo.Context) error {
	ok, message := h.cache.Clear(c.Request().Context())
	if !ok {
		h.logger.Error("cache clear failed", "message", message)
		return c.JSON(http.StatusBadGateway, ClearCacheResponse{Success: false, Message: message})
	}
	return c.JSON(http.StatusOK, ClearCacheResponse{Success: true, Message: message})
}

// HandleHistoryToggle handles PUT /api/v1/cache/history requests.
func (h *CacheHandler) HandleHistoryToggle(c echo.Context) error {
	var req HistoryToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Enabled == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "enabled is required")
	}

	h.cache.SetHistoryEnabled(*req.Enabled)
	h.logger.Info("history capture toggled", "enabled", *req.Enabled)
	return c.JSON(http.StatusOK, HistoryToggleResponse{Enabled: h.cache.HistoryEnabled()})
}

// HandleHistory handles GET /api/v1/history requests.
func (h *CacheHandler) HandleHistory(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	snapshots, err := h.cache.ListSnapshots(ctx, limit)
	if err != nil {
		h.logger.Error("failed to list snapshots", "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "failed to list snapshots")
	}
	if snapshots == nil {
		snapshots = []domain.HistoricalSnapshot{}
	}

	return c.JSON(http.StatusOK, HistoryResponse{Snapshots: snapshots, Count: len(snapshots)})
}
