package middleware

import (
	"log/slog"

	deliverycontext "medifinder/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestScope assigns each request an id, reusing the X-Request-Id header
// when the client sends one, and stores a logger carrying that id in the
// request context so lower layers can pick it up with GetLoggerOrDefault.
func RequestScope(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if requestID == "" {
				requestID = deliverycontext.GetRequestID(c)
			}
			deliverycontext.SetRequestID(c, requestID)
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			scoped := logger.With("requestID", requestID)
			ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, scoped)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
