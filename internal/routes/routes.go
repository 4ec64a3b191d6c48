package routes

import (
	"net/http"

	"minivutto_backend/internal/auth"
	"minivutto_backend/internal/handlers"
	"minivutto_backend/internal/middleware"
	"minivutto_backend/internal/repositories"
	"minivutto_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route onto the engine.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	bikeRepo repositories.BikeRepository,
) {
	requireAuth := middleware.AuthMiddleware(tokens)
	requireBikeOwner := middleware.RequireOwnership(
		bikeRepo,
		func(err error) bool { return apperrors.Is(err, repositories.ErrBikeNotFound) },
		apperrors.ErrBikeNotFound,
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Mini Vutto API is running!",
			"endpoints": gin.H{
				"auth":  "/auth",
				"bikes": "/bikes",
			},
		})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", appHandlers.AuthHandler.Register)
		authGroup.POST("/login", appHandlers.AuthHandler.Login)

		authGroup.GET("/users", requireAuth, appHandlers.UserHandler.ListUsers)
		authGroup.GET("/users/:id", requireAuth, appHandlers.UserHandler.GetUser)

		// These four mutating user-management routes are intentionally left
		// without authentication to preserve the existing API contract.
		// Known gap: deploy behind an internal network or add an
		// admin-role guard before exposing publicly.
		authGroup.PATCH("/users/:id/role", appHandlers.UserHandler.UpdateRole)
		authGroup.PATCH("/users/:id/verify", appHandlers.UserHandler.UpdateVerified)
		authGroup.PUT("/users/:id", appHandlers.UserHandler.UpdateUser)
		authGroup.DELETE("/users/:id", appHandlers.UserHandler.DeleteUser)
	}

	bikes := router.Group("/bikes")
	{
		bikes.GET("", appHandlers.BikeHandler.ListBikes)
		// Registered before GET /:id so "my" is not captured as a bike id.
		bikes.GET("/my/listings", requireAuth, appHandlers.BikeHandler.MyListings)
		bikes.GET("/:id", appHandlers.BikeHandler.GetBike)

		bikes.POST("", requireAuth, appHandlers.BikeHandler.CreateBike)
		bikes.PUT("/:id", requireAuth, requireBikeOwner, appHandlers.BikeHandler.UpdateBike)
		bikes.DELETE("/:id", requireAuth, requireBikeOwner, appHandlers.BikeHandler.DeleteBike)
	}
}
