package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/pkg/logger"
)

// RequestLoggerMiddleware creates a middleware for request logging
func RequestLoggerMiddleware(appLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if id := c.Get("user_id"); id != nil {
				userID = fmt.Sprintf("%v", id)
			}

			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", method),
				logger.String("path", path),
				logger.String("user_id", userID),
			}

			switch {
			case statusCode >= 500:
				appLogger.Error("Server error", fields...)
			case statusCode >= 400:
				appLogger.Warn("Client error", fields...)
			default:
				appLogger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
