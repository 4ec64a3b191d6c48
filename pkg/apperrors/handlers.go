package apperrors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorBody is the JSON shape of every error response. The `message` field
// is the one clients are expected to read.
type errorBody struct {
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code"`
	Domain  string      `json:"domain,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError converts err into a JSON error response. Anything that is not
// an *AppError becomes a generic 500 with the cause logged, never returned.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		slog.Error("server error",
			"path", c.Request.URL.Path,
			"code", string(appErr.Code),
			"error", appErr.Error(),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, errorBody{
		Message: appErr.Message,
		Code:    appErr.Code,
		Domain:  appErr.Domain,
		Details: appErr.Details,
	})
}

// AsAppError attempts to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
