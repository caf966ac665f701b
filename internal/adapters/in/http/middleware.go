package http

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"labflow/internal/core/ports"
	"labflow/internal/metrics"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/reqctx"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const bearerPrefix = "Bearer "

// RequestContext opens a request-scoped store for every request and seeds it with
// the request metadata. Errors are rendered inside the scope so the error handler
// still sees the request id.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			values := reqctx.Values{
				reqctx.KeyRequestID: requestID,
				reqctx.KeyEndpoint:  req.Method + " " + req.RequestURI,
				reqctx.KeyClientIP:  c.RealIP(),
				reqctx.KeyUserAgent: req.UserAgent(),
				reqctx.KeyStartTime: time.Now(),
			}
			if token := bearerToken(req.Header.Get(echo.HeaderAuthorization)); token != "" {
				values[reqctx.KeyAccessToken] = token
			}

			return reqctx.Run(req.Context(), values, func(ctx context.Context) error {
				c.SetRequest(req.WithContext(ctx))
				if err := next(c); err != nil {
					c.Error(err)
				}
				return nil
			})
		}
	}
}

// Instrument records request metrics and writes one log line per request.
func Instrument(recorder *metrics.Recorder, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			done := recorder.TrackInFlight()
			defer done()

			start, ok := reqctx.StartTime(c.Request().Context())
			if !ok {
				start = time.Now()
			}

			if err := next(c); err != nil {
				c.Error(err)
			}

			elapsed := time.Since(start)
			status := c.Response().Status
			recorder.ObserveHTTP(c.Request().Method, c.Path(), status, elapsed)

			ctx := c.Request().Context()
			logger.InfoContext(ctx, "request completed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", elapsed),
				slog.String("ip", reqctx.ClientIP(ctx)),
			)
			return nil
		}
	}
}

// Authenticate verifies the bearer token and stores the caller's identity in the
// request context. Requests matched by skipper pass through untouched.
func Authenticate(tokens ports.TokenService, skipper middleware.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			ctx := c.Request().Context()
			token := reqctx.AccessToken(ctx)
			if token == "" {
				token = bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			}
			if token == "" {
				return errs.NewUnauthorizedError("token not provided")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return err
			}

			reqctx.Set(ctx, reqctx.KeyUserID, claims.Subject)
			reqctx.Set(ctx, reqctx.KeyEmail, claims.Email)
			if !reqctx.Has(ctx, reqctx.KeyAccessToken) {
				reqctx.Set(ctx, reqctx.KeyAccessToken, token)
			}
			return next(c)
		}
	}
}

// PublicPaths skips the routes that need no token.
func PublicPaths(c echo.Context) bool {
	path := c.Path()
	switch {
	case strings.HasPrefix(path, "/auth/"),
		path == "/health",
		path == "/metrics",
		path == "/api-docs.json",
		strings.HasPrefix(path, "/swagger"):
		return true
	default:
		return false
	}
}

func bearerToken(header string) string {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
