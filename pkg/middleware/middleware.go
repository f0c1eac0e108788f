package middleware

import (
	"context"
	"time"

	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

// RequestID set X-Request-ID response header, reuse id from incoming request when present
func RequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(helper.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set(helper.HeaderXRequestID, requestID)
		return next(c)
	}
}

// Timeout bound request context with deadline, zero or negative duration disable the deadline
func Timeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
