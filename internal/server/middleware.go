package server

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/metrics"
)

// RequestLogger tags each request with an id, attaches a request-scoped
// logger to its context, and counts it by route and status class.
func RequestLogger(logger *slog.Logger, reg *metrics.Registry) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			reqLogger := logger.With("req_id", rid)
			ctx := common.WithRequestID(req.Context(), rid)
			ctx = common.WithLogger(ctx, reqLogger)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				// let the error handler pick the status before it is logged
				c.Error(err)
			}

			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			labels := map[string]string{
				"method": req.Method,
				"route":  route,
				"status": metrics.StatusClass(status),
			}
			reg.Inc(ctx, metrics.HTTPRequests, labels, 1)

			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"remote_ip", c.RealIP(),
				"latency_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case status >= 500:
				reg.Inc(ctx, metrics.HTTPErrors, labels, 1)
				reqLogger.Error("http.request.failed", append(attrs, "error", err)...)
			case err != nil:
				reqLogger.Warn("http.request.rejected", append(attrs, "error", err)...)
			default:
				reqLogger.Info("http.request.served", attrs...)
			}
			return nil
		}
	}
}
