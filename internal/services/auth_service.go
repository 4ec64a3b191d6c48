package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"minivutto_backend/internal/auth"
	"minivutto_backend/internal/email"
	"minivutto_backend/internal/logger"
	"minivutto_backend/internal/models"
	"minivutto_backend/internal/repositories"
	"minivutto_backend/internal/services/dto"
	"minivutto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// OTPTTL is the verification-code lifetime.
const OTPTTL = 10 * time.Minute

type AuthService interface {
	// Register runs one registration attempt. Exactly one of the result's
	// Pending/Created fields is set on success.
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// RegisterResult distinguishes the two success terminals of a registration
// attempt: an OTP was dispatched (Pending) or the account was created.
type RegisterResult struct {
	Pending *dto.PendingResponse
	Created *dto.AuthResponse
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.VerificationTokenRepository
	tokens    *auth.TokenManager
	mailer    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.VerificationTokenRepository,
	tokens *auth.TokenManager,
	mailer email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		mailer:    mailer,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*RegisterResult, error) {
	// Precondition checks run in a fixed order; each is a distinct terminal
	// failure clients can act on.
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}
	if req.LastName == "" {
		return nil, apperrors.ErrMissingLastName
	}
	if len(req.Password) < auth.MinPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	exists, err := s.userRepo.ExistsByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	if req.OTP == "" {
		return s.issueOTP(ctx, db, req.Email)
	}
	return s.createVerifiedUser(ctx, db, req)
}

// issueOTP persists a fresh code for the email (overwriting any pending one)
// and dispatches it. Dispatch failure fails the attempt; no user exists yet,
// so nothing is left half-created.
func (s *AuthServiceImpl) issueOTP(ctx context.Context, db *gorm.DB, to string) (*RegisterResult, error) {
	code, err := GenerateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.tokenRepo.Upsert(db, to, code, time.Now().Add(OTPTTL)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendOTP(ctx, to, code); err != nil {
		logger.CtxWithError(ctx, "otp dispatch failed", err, "email", to)
		return nil, apperrors.ErrOTPDispatchFailed
	}

	return &RegisterResult{
		Pending: &dto.PendingResponse{
			Message:   "Please check your email for OTP verification code",
			Email:     to,
			ExpiresIn: "10 minutes",
		},
	}, nil
}

func (s *AuthServiceImpl) createVerifiedUser(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*RegisterResult, error) {
	if err := s.tokenRepo.Consume(db, req.Email, req.OTP, time.Now()); err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.NormalizeRole(req.Role),
		IsVerified:   true,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", string(user.Role))

	return &RegisterResult{
		Created: &dto.AuthResponse{
			Message: "User created successfully",
			User:    user,
			Token:   token,
		},
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same message as a password mismatch: the response must not
			// reveal which half of the credentials was wrong.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)

	return &dto.AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	}, nil
}

// GenerateOTP draws a uniform 6-digit code in [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
