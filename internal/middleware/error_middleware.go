package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/contractors/internal/app/models/dto"
	"github.com/yigit/contractors/internal/pkg/apperrors"
	"github.com/yigit/contractors/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError writes the error envelope for err.
// Missing resources map to 404; every other failure, including rejected
// parameters, maps to 500 with the error text as message.
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, notFoundMessage(err)))
	default:
		logger.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}

func notFoundMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return "resource not found"
}
