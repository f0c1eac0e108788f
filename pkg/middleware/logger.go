package middleware

import (
	"time"

	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/golangid/subscriber-service/pkg/logger"
	"github.com/labstack/echo"
	"go.uber.org/zap/zapcore"
)

// Logger function for writing all request log with structured logger,
// error from next handler is passed to echo error handler before logging
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		start := time.Now()
		req := c.Request()
		res := c.Response()

		if err = next(c); err != nil {
			c.Error(err)
		}

		statusCode := res.Status

		logger.LogWithField(levelForStatus(statusCode), map[string]interface{}{
			"message":    "rest request",
			"context":    "SERVICE-REST",
			"request_id": res.Header().Get(helper.HeaderXRequestID),
			"method":     req.Method,
			"uri":        req.RequestURI,
			"status":     statusCode,
			"latency":    time.Since(start).String(),
			"remote_ip":  c.RealIP(),
			"bytes_out":  res.Size,
		})
		return nil
	}
}

func levelForStatus(code int) zapcore.Level {
	switch {
	case code >= 500:
		return zapcore.ErrorLevel
	case code >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
