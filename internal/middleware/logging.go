package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/contractors/internal/pkg/logger"
)

// AccessLog records one line per completed request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Info()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("url", path).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Int("size", c.Writer.Size()).
			Dur("latency", time.Since(begin)).
			Msg("Completed request")
	}
}
