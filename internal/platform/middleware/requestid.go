package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header used to carry the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestID returns middleware that attaches a correlation ID to each
// request. An incoming X-Request-ID header is preserved; otherwise a fresh
// UUID is generated. The ID is stored under "request_id" for the logger and
// recovery middleware and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set("request_id", rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}
