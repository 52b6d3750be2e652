package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Act
	err := h(c)

	// Assert
	require.NoError(t, err)
	id, ok := c.Get("request_id").(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsInboundID(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "upstream-id-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Act
	err := h(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "upstream-id-42", c.Get("request_id"))
	assert.Equal(t, "upstream-id-42", rec.Header().Get(echo.HeaderXRequestID))
}
