package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// RequestID assigns every request a uuid, reusing a valid inbound
// X-Request-ID. The id is echoed in the response header and carried in the
// request context so dispatches and transports tag their calls with it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id, err := uuid.Parse(req.Header.Get(echo.HeaderXRequestID))
			if err != nil {
				id = uuid.New()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, id.String())
			c.SetRequest(req.WithContext(jobcontext.WithRequestID(req.Context(), id.String())))
			return next(c)
		}
	}
}

// RequestLogger logs one structured line per request
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			if logger == nil {
				return nil
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			}

			switch {
			case res.Status >= 500:
				logger.Error("http.request", append(fields, zap.Error(err))...)
			case res.Status >= 400:
				logger.Warn("http.request", fields...)
			default:
				logger.Info("http.request", fields...)
			}
			return nil
		}
	}
}
