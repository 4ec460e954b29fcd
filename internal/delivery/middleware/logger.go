package middleware

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"dreamtree/config"
	deliverycontext "dreamtree/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// sensitiveQueryParams are redacted before a request line is logged. The
// OAuth callback carries the authorization code and state token in the query
// string, and neither may land in log storage.
var sensitiveQueryParams = map[string]struct{}{
	"code":  {},
	"state": {},
}

// LoggerMiddleware controllable logging middleware
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle writes one line per request when debug logging is on.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		var err error
		// Deferred so the request line is still written when a handler panics.
		defer func() {
			m.logRequest(c, start, err)
		}()
		err = next(c)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", redactQuery(req.URL.RawQuery)))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	m.logger.LogAttrs(context.Background(), statusLevel(res.Status), "HTTP Request", fields...)
}

// statusLevel maps response classes to log levels: 4xx warn, 5xx error,
// everything else info.
func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// redactQuery masks the values of sensitive query parameters while keeping
// the rest of the query string readable.
func redactQuery(rawQuery string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		// Unparseable queries are dropped rather than logged verbatim.
		return "<unparseable>"
	}

	for param := range values {
		if _, sensitive := sensitiveQueryParams[param]; sensitive {
			values.Set(param, "REDACTED")
		}
	}

	return values.Encode()
}
