package middleware

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/private-bank/pkg/configpkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// CreateLogger returns the application logger: JSON at Info level, or a
// console writer at Trace level with caller info in development.
func CreateLogger(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var (
		output   io.Writer = os.Stderr
		logLevel           = zerolog.InfoLevel
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environement == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

// RequestLogger puts a logger tagged with the request id into the request
// context and logs every request once it is served.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		start := time.Now()

		requestID := gctx.Request.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			gctx.Request.Header.Set(RequestIDHeader, requestID)
		}

		gctx.Writer.Header().Set(RequestIDHeader, requestID)

		l := logger.With().Str("request_id", requestID).Logger()
		gctx.Request = gctx.Request.WithContext(l.WithContext(gctx.Request.Context()))

		defer func() {
			if panicVal := recover(); panicVal != nil {
				l.Error().Msgf("panic message: %v", panicVal)
				gctx.AbortWithStatus(http.StatusInternalServerError)
			}

			var event *zerolog.Event
			if gctx.Writer.Status() >= http.StatusInternalServerError {
				event = l.Error()
			} else {
				event = l.Info()
			}

			event.
				Str("client_ip", gctx.ClientIP()).
				Str("method", gctx.Request.Method).
				Int("status_code", gctx.Writer.Status()).
				Str("path", gctx.Request.URL.Path).
				Str("latency", time.Since(start).String()).
				Msg(gctx.Errors.ByType(gin.ErrorTypePrivate).String())
		}()

		gctx.Next()
	}
}
