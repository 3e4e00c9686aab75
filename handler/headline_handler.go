package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"newsdeck/domain"
	"newsdeck/service"
)

// HeadlinesResponse is the payload served for headline listings.
type HeadlinesResponse struct {
	Headlines []domain.Headline `json:"headlines"`
	Count     int               `json:"count"`
	FromCache bool              `json:"from_cache"`
	Ticker    string            `json:"ticker,omitempty"`
}

// HeadlineHandler serves the aggregated headline feed.
type HeadlineHandler struct {
	provider service.HeadlineProvider
	logger   *slog.Logger
}

func NewHeadlineHandler(provider service.HeadlineProvider, logger *slog.Logger) *HeadlineHandler {
	return &HeadlineHandler{provider: provider, logger: logger}
}

// HandleHeadlines handles GET /api/v1/headlines requests. An absent
// limit means unbounded; refresh=true bypasses the cache read.
func (h *HeadlineHandler) HandleHeadlines(c echo.Context) error {
	ctx := c.Request().Context()

	maxItems := service.Unlimited
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("rejecting non-numeric limit", "limit", raw)
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		maxItems = parsed
	}

	forceRefresh := false
	if raw := c.QueryParam("refresh"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "refresh must be a boolean")
		}
		forceRefresh = parsed
	}

	headlines, fromCache, ticker := h.provider.FetchHeadlines(ctx, maxItems, forceRefresh)
	if headlines == nil {
		headlines = []domain.Headline{}
	}

	return c.JSON(http.StatusOK, HeadlinesResponse{
		Headlines: headlines,
		Count:     len(headlines),
		FromCache: fromCache,
		Ticker:    ticker,
	})
}
