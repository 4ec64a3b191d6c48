package repositories

import (
	"errors"

	"minivutto_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserPatch is a structured partial update: only non-nil fields are written.
// This replaces dynamic column-list assembly with an explicit contract.
type UserPatch struct {
	FirstName *string
	LastName  *string
}

// Empty reports whether the patch would modify nothing.
func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil
}

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	FindAll(db *gorm.DB) ([]models.User, error)
	Create(db *gorm.DB, user *models.User) error
	UpdateRole(db *gorm.DB, userID string, role models.UserRole) error
	UpdateVerified(db *gorm.DB, userID string, isVerified bool) error
	Patch(db *gorm.DB, userID string, patch UserPatch) error
	Delete(db *gorm.DB, userID string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	exists, err := r.ExistsByEmail(db, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserAlreadyExists
	}
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateRole(db *gorm.DB, userID string, role models.UserRole) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateVerified(db *gorm.DB, userID string, isVerified bool) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("is_verified", isVerified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Patch(db *gorm.DB, userID string, patch UserPatch) error {
	updates := map[string]interface{}{}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if len(updates) == 0 {
		return nil
	}

	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	result := db.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
