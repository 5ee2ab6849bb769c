package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carbonkhet/carbonkhet/internal/pkg/logger"
	"github.com/carbonkhet/carbonkhet/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with
// request context and answers with a generic 500. The stack trace is logged
// only outside production and never returned to the client.
func PanicRecoveryMiddleware(environment string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					fields := []logger.Field{
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("timestamp", time.Now().Format(time.RFC3339)),
					}
					if environment != "production" {
						fields = append(fields, logger.String("stack_trace", string(debug.Stack())))
					}
					logger.Error("Panic recovered", fields...)

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
