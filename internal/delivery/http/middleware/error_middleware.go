package middleware

import (
	"errors"
	"net/http"

	"go-leadform-backend/internal/delivery/http/response"
	"go-leadform-backend/pkg/apperror"
	"go-leadform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the fixed
// client envelope. This is the single boundary between internal errors and
// what the caller sees.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// Delivery and configuration failures are operational signals;
			// validation failures are not incidents and stay unlogged.
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"error", appErr.Err,
					"request_id", requestIDFrom(c),
				)
			}
			response.Error(c, appErr.Code, appErr.Errors)
			return
		}

		// Never expose internal error details to clients. Log server-side,
		// answer with the generic message.
		logger.Log.Error("unexpected error",
			"error", err,
			"request_id", requestIDFrom(c),
		)
		response.Error(c, http.StatusInternalServerError, []string{apperror.MsgUnexpected})
	}
}

func requestIDFrom(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	idStr, _ := id.(string)
	return idStr
}
