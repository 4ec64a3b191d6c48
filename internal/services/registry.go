package services

import (
	"minivutto_backend/internal/auth"
	"minivutto_backend/internal/email"
	"minivutto_backend/internal/repositories"
)

// ServiceContainer bundles every service for route wiring.
type ServiceContainer struct {
	AuthService AuthService
	UserService UserService
	BikeService BikeService

	// BikeRepo is exposed for the ownership guard, which resolves owners
	// directly at the middleware layer.
	BikeRepo repositories.BikeRepository
}

func NewServiceContainer(tokens *auth.TokenManager, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewVerificationTokenRepository()
	bikeRepo := repositories.NewBikeRepository()

	return &ServiceContainer{
		AuthService: NewAuthService(userRepo, tokenRepo, tokens, mailer),
		UserService: NewUserService(userRepo),
		BikeService: NewBikeService(bikeRepo),
		BikeRepo:    bikeRepo,
	}
}
