package repositories

import (
	"errors"
	"strings"

	"minivutto_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBikeNotFound = errors.New("bike not found")

// BikeFilter narrows the public listing query. All matches are
// case-insensitive substring matches, combined with AND; Search matches
// brand OR model.
type BikeFilter struct {
	Brand  string
	Model  string
	Search string
}

type BikeRepository interface {
	FindWithFilter(db *gorm.DB, filter BikeFilter) ([]models.Bike, error)
	FindByID(db *gorm.DB, id string) (*models.Bike, error)
	FindBySellerID(db *gorm.DB, sellerID string) ([]models.Bike, error)
	Create(db *gorm.DB, bike *models.Bike) error
	Update(db *gorm.DB, bike *models.Bike) error
	Delete(db *gorm.DB, id string) error

	// OwnerID resolves a bike id to its seller id without loading the row,
	// for the ownership guard.
	OwnerID(db *gorm.DB, id string) (string, error)
}

type BikeRepositoryImpl struct{}

func NewBikeRepository() BikeRepository {
	return &BikeRepositoryImpl{}
}

// contains builds a case-insensitive substring pattern. LOWER + LIKE instead
// of ILIKE so the query runs on both postgres and the sqlite test database.
func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

func (r *BikeRepositoryImpl) FindWithFilter(db *gorm.DB, filter BikeFilter) ([]models.Bike, error) {
	query := db.Preload("Seller")

	if filter.Brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", contains(filter.Brand))
	}
	if filter.Model != "" {
		query = query.Where("LOWER(model) LIKE ?", contains(filter.Model))
	}
	if filter.Search != "" {
		pattern := contains(filter.Search)
		query = query.Where("LOWER(brand) LIKE ? OR LOWER(model) LIKE ?", pattern, pattern)
	}

	var bikes []models.Bike
	err := query.Order("created_at DESC").Find(&bikes).Error
	return bikes, err
}

func (r *BikeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Bike, error) {
	var bike models.Bike
	err := db.Preload("Seller").First(&bike, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBikeNotFound
		}
		return nil, err
	}
	return &bike, nil
}

func (r *BikeRepositoryImpl) FindBySellerID(db *gorm.DB, sellerID string) ([]models.Bike, error) {
	var bikes []models.Bike
	err := db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&bikes).Error
	return bikes, err
}

func (r *BikeRepositoryImpl) Create(db *gorm.DB, bike *models.Bike) error {
	return db.Create(bike).Error
}

func (r *BikeRepositoryImpl) Update(db *gorm.DB, bike *models.Bike) error {
	result := db.Model(&models.Bike{}).Where("id = ?", bike.ID).Updates(map[string]interface{}{
		"brand":             bike.Brand,
		"model":             bike.Model,
		"year":              bike.Year,
		"price":             bike.Price,
		"kilometers_driven": bike.KilometersDriven,
		"location":          bike.Location,
		"image_url":         bike.ImageURL,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBikeNotFound
	}
	return nil
}

func (r *BikeRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Bike{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBikeNotFound
	}
	return nil
}

func (r *BikeRepositoryImpl) OwnerID(db *gorm.DB, id string) (string, error) {
	var sellerID string
	err := db.Model(&models.Bike{}).Where("id = ?", id).Pluck("seller_id", &sellerID).Error
	if err != nil {
		return "", err
	}
	if sellerID == "" {
		return "", ErrBikeNotFound
	}
	return sellerID, nil
}
