package middleware

import (
	"strings"

	"minivutto_backend/internal/auth"
	"minivutto_backend/internal/logger"
	"minivutto_backend/pkg/apperrors"
	"minivutto_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys for the authenticated caller's claims.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware requires a valid bearer token. A missing header is 401;
// a present but unverifiable token is 403. Clients cannot tell an expired
// token from a forged one.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "token rejected", "reason", err.Error())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OwnerResolver maps a resource id to the id of its owning user. Any table
// keyed by an owner-id column can implement it.
type OwnerResolver interface {
	OwnerID(db *gorm.DB, id string) (string, error)
}

// NotFoundChecker lets resolvers report "resource absent" distinctly, so the
// guard answers 404 instead of 403 for ids that do not exist.
type NotFoundChecker func(err error) bool

// RequireOwnership permits the request only when the authenticated caller
// owns the resource named by the :id route parameter. Must run after
// AuthMiddleware and DBMiddleware.
func RequireOwnership(resolver OwnerResolver, isNotFound NotFoundChecker, notFoundErr *apperrors.AppError) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := GetUserID(c)
		if callerID == "" {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(nil))
			return
		}

		ownerID, err := resolver.OwnerID(db.(*gorm.DB), c.Param("id"))
		if err != nil {
			if isNotFound != nil && isNotFound(err) {
				apperrors.HandleError(c, notFoundErr)
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		if ownerID != callerID {
			apperrors.HandleError(c, apperrors.ErrNotOwner)
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated caller's id from the context, or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
