package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON envelope for every error served to clients.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the client-safe portion of an error.
type ErrorDetail struct {
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
//
// echo.HTTPError keeps its status code; everything else becomes a generic
// 500 so internal details never reach clients. 5xx messages are masked.
func CustomHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."

		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok && status < 500 {
				message = m
			}
			logger.Warn("HTTP error",
				"status", status,
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err)
		} else {
			logger.Error("unhandled error",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err)
		}

		response := ErrorResponse{
			Error: ErrorDetail{
				Message:   message,
				Retryable: isRetryableStatus(status),
			},
		}
		if err := c.JSON(status, response); err != nil {
			logger.Error("failed to send error response", "error", err)
		}
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
