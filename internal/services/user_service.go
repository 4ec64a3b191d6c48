package services

import (
	"minivutto_backend/internal/models"
	"minivutto_backend/internal/repositories"
	"minivutto_backend/internal/services/dto"
	"minivutto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(db *gorm.DB) ([]models.User, error)
	GetUser(db *gorm.DB, id string) (*models.User, error)
	UpdateRole(db *gorm.DB, id string, role string) error
	UpdateVerified(db *gorm.DB, id string, isVerified bool) error
	UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(db *gorm.DB, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateRole(db *gorm.DB, id string, role string) error {
	// Unlike registration, role updates reject invalid values outright.
	if !models.IsValidRole(role) {
		return apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateRole(db, id, models.UserRole(role)); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) UpdateVerified(db *gorm.DB, id string, isVerified bool) error {
	if err := s.userRepo.UpdateVerified(db, id, isVerified); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateUser applies a structured partial update: only fields present in the
// request are modified; at least one must be present; last_name, when
// present, must be non-empty.
func (s *UserServiceImpl) UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	patch := repositories.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if patch.Empty() {
		return nil, apperrors.NewBadRequestError("At least one of first_name or last_name is required")
	}
	if patch.LastName != nil && *patch.LastName == "" {
		return nil, apperrors.ErrMissingLastName
	}

	if err := s.userRepo.Patch(db, id, patch); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetUser(db, id)
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
