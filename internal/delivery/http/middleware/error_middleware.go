package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrekStyler/handypro-api/internal/delivery/http/response"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
	"github.com/DrekStyler/handypro-api/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log server-side,
				// send a generic message.
				logger.Log.Error("unhandled request error",
					"path", c.FullPath(), "request_id", c.GetString("RequestID"), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
