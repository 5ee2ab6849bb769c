package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates request-logging middleware for Echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if uid := c.Get("user_id"); uid != nil {
				userID = fmt.Sprintf("%v", uid)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			entry := logger.Logger.With(
				Int("status", statusCode),
				Duration("latency", latency),
				String("client_ip", clientIP),
				String("method", method),
				String("path", path),
				String("user_id", userID),
				String("request_id", requestID),
			)

			// Log with appropriate level based on status code
			switch {
			case statusCode >= 500:
				if err != nil {
					entry = entry.With(Err(err))
				}
				entry.Error("Server error")
			case statusCode >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
