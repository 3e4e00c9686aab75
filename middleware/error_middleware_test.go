package middleware_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdeck/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHTTPErrorHandler(t *testing.T) {
	tests := map[string]struct {
		err             error
		expectedStatus  int
		expectedMessage string
		expectRetryable bool
	}{
		"echo_http_error_keeps_status_and_message": {
			err:             echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "limit must be an integer",
			expectRetryable: false,
		},
		"server_side_echo_error_is_masked": {
			err:             echo.NewHTTPError(http.StatusBadGateway, "redis dial tcp refused"),
			expectedStatus:  http.StatusBadGateway,
			expectedMessage: "An unexpected error occurred. Please try again later.",
			expectRetryable: true,
		},
		"unknown_error_becomes_generic_500": {
			err:             errors.New("nil pointer somewhere deep"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred. Please try again later.",
			expectRetryable: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/headlines", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := middleware.CustomHTTPErrorHandler(slog.New(slog.DiscardHandler))
			handler(tc.err, c)

			assert.Equal(t, tc.expectedStatus, rec.Code)

			var resp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedMessage, resp.Error.Message)
			assert.Equal(t, tc.expectRetryable, resp.Error.Retryable)
		})
	}
}

func TestCustomHTTPErrorHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, c.NoContent(http.StatusOK))

	handler := middleware.CustomHTTPErrorHandler(slog.New(slog.DiscardHandler))
	handler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
