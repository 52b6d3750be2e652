package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with a correlation ID. An inbound
// X-Request-ID is kept so the ID survives proxy hops; otherwise a fresh UUID
// is minted. The ID is stored on the echo context for the request logger and
// echoed back to the client.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set("request_id", id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			return next(c)
		}
	}
}
