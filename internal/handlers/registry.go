package handlers

import (
	"minivutto_backend/internal/services"
	"minivutto_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
	BikeHandler *BikeHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler: NewAuthHandler(base, sc.AuthService),
		UserHandler: NewUserHandler(base, sc.UserService),
		BikeHandler: NewBikeHandler(base, sc.BikeService),
	}
}
