package repositories

import (
	"errors"
	"time"

	"minivutto_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTokenNotFound = errors.New("verification token not found")

type VerificationTokenRepository interface {
	// Upsert stores the pending code for an email, replacing any existing
	// one. The expiry window restarts on every call.
	Upsert(db *gorm.DB, email, code string, expiresAt time.Time) error

	// Consume atomically finds a non-expired matching (email, code) row and
	// deletes it. Returns ErrTokenNotFound when no such row exists, so a
	// code is spendable exactly once.
	Consume(db *gorm.DB, email, code string, now time.Time) error

	FindByEmail(db *gorm.DB, email string) (*models.VerificationToken, error)
}

type VerificationTokenRepositoryImpl struct{}

func NewVerificationTokenRepository() VerificationTokenRepository {
	return &VerificationTokenRepositoryImpl{}
}

func (r *VerificationTokenRepositoryImpl) Upsert(db *gorm.DB, email, code string, expiresAt time.Time) error {
	token := models.VerificationToken{
		Email:     email,
		Token:     code,
		ExpiresAt: expiresAt,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at"}),
	}).Create(&token).Error
}

func (r *VerificationTokenRepositoryImpl) Consume(db *gorm.DB, email, code string, now time.Time) error {
	result := db.Where("email = ? AND token = ? AND expires_at > ?", email, code, now).
		Delete(&models.VerificationToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *VerificationTokenRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.VerificationToken, error) {
	var token models.VerificationToken
	err := db.First(&token, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}
