package handlers

import (
	"fmt"

	"minivutto_backend/internal/logger"
	"minivutto_backend/internal/validator"
	"minivutto_backend/pkg/apperrors"
	"minivutto_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB extracts the request-scoped *gorm.DB (pool or test transaction)
// that DBMiddleware placed in the context. Every handler that touches a
// service goes through here.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

// BindJSON binds the body without structural validation; ordered business
// checks stay in the services. Returns false after writing the error.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// BindAndValidateJSON binds the body and runs struct validation.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if !h.BindJSON(c, obj) {
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(c.Request.Context(), "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(c.Request.Context(), "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// BindQuery binds query parameters into obj.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return true
}

// HandleServiceError logs and converts a service error into a response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode < 500 {
			logger.CtxWarn(ctx, "service error",
				"error", appErr.Message,
				"code", string(appErr.Code),
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}
