package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"newsdeck/domain"
	"newsdeck/service"
)

// SummaryRequest identifies the headline a summary is requested for.
type SummaryRequest struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Section string `json:"section"`
}

// SummaryHandler resolves article summaries on demand.
type SummaryHandler struct {
	resolver service.SummaryResolver
	logger   *slog.Logger
}

func NewSummaryHandler(resolver service.SummaryResolver, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{resolver: resolver, logger: logger}
}

// HandleSummary handles POST /api/v1/summary requests.
func (h *SummaryHandler) HandleSummary(c echo.Context) error {
	ctx := c.Request().Context()

	var req SummaryRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind summary request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req.URL = strings.TrimSpace(req.URL)
	req.Title = strings.TrimSpace(req.Title)
	if req.URL == "" || req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url and title are required")
	}

	section := strings.TrimSpace(req.Section)
	if section == "" {
		section = domain.DefaultSection
	}

	headline := domain.Headline{Title: req.Title, URL: req.URL, Section: section}
	resolution := h.resolver.ResolveSummary(ctx, headline)

	return c.JSON(http.StatusOK, resolution)
}
