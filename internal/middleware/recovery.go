package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/app/models/dto"
	"github.com/yigit/contractors/internal/pkg/logger"
)

// Recovery turns a panicking handler into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rvr := recover(); rvr != nil {
				logger.Error().
					Interface("panic", rvr).
					Str("request_id", GetRequestID(c)).
					Str("method", c.Request.Method).
					Str("url", c.Request.URL.String()).
					Str("stack_trace", string(debug.Stack())).
					Msg("Recovered from panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse(http.StatusInternalServerError, fmt.Sprint(rvr)))
			}
		}()

		c.Next()
	}
}
