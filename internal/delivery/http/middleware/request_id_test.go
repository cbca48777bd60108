package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "gsale/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_MintsAndThreadsID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxID string
	var ctxLogger *slog.Logger
	handler := mw.Process(func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		ctxLogger = deliverycontext.GetLogger(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxID)
	assert.NotNil(t, ctxLogger)
}

func TestRequestIDMiddleware_HonoursInboundHeader(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", deliverycontext.GetRequestID(c))
}
