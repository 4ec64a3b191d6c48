package services

import (
	"time"

	"minivutto_backend/internal/models"
	"minivutto_backend/internal/repositories"
	"minivutto_backend/internal/services/dto"
	"minivutto_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MinBikeYear is the oldest model year a listing may carry.
const MinBikeYear = 1900

type BikeService interface {
	ListBikes(db *gorm.DB, query *dto.BikeListQuery) ([]dto.BikeResponse, error)
	GetBike(db *gorm.DB, id string) (*dto.BikeResponse, error)
	ListBySeller(db *gorm.DB, sellerID string) ([]dto.BikeResponse, error)
	CreateBike(db *gorm.DB, sellerID string, req *dto.BikeRequest) (*dto.BikeResponse, error)
	UpdateBike(db *gorm.DB, id string, req *dto.BikeRequest) (*dto.BikeResponse, error)
	DeleteBike(db *gorm.DB, id string) error
}

type BikeServiceImpl struct {
	bikeRepo repositories.BikeRepository
}

func NewBikeService(bikeRepo repositories.BikeRepository) BikeService {
	return &BikeServiceImpl{bikeRepo: bikeRepo}
}

func (s *BikeServiceImpl) ListBikes(db *gorm.DB, query *dto.BikeListQuery) ([]dto.BikeResponse, error) {
	bikes, err := s.bikeRepo.FindWithFilter(db, repositories.BikeFilter{
		Brand:  query.Brand,
		Model:  query.Model,
		Search: query.Search,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toBikeResponses(bikes), nil
}

func (s *BikeServiceImpl) GetBike(db *gorm.DB, id string) (*dto.BikeResponse, error) {
	bike, err := s.bikeRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBikeNotFound) {
			return nil, apperrors.ErrBikeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewBikeResponse(bike)
	return &resp, nil
}

func (s *BikeServiceImpl) ListBySeller(db *gorm.DB, sellerID string) ([]dto.BikeResponse, error) {
	bikes, err := s.bikeRepo.FindBySellerID(db, sellerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toBikeResponses(bikes), nil
}

func (s *BikeServiceImpl) CreateBike(db *gorm.DB, sellerID string, req *dto.BikeRequest) (*dto.BikeResponse, error) {
	if err := validateBikeRequest(req); err != nil {
		return nil, err
	}

	bike := &models.Bike{
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             *req.Year,
		Price:            *req.Price,
		KilometersDriven: *req.KilometersDriven,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		SellerID:         sellerID,
	}
	if err := s.bikeRepo.Create(db, bike); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewBikeResponse(bike)
	return &resp, nil
}

// UpdateBike replaces every mutable field. SellerID is never touched:
// ownership is immutable after creation.
func (s *BikeServiceImpl) UpdateBike(db *gorm.DB, id string, req *dto.BikeRequest) (*dto.BikeResponse, error) {
	if err := validateBikeRequest(req); err != nil {
		return nil, err
	}

	bike := &models.Bike{
		BaseModel:        models.BaseModel{ID: id},
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             *req.Year,
		Price:            *req.Price,
		KilometersDriven: *req.KilometersDriven,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
	}
	if err := s.bikeRepo.Update(db, bike); err != nil {
		if apperrors.Is(err, repositories.ErrBikeNotFound) {
			return nil, apperrors.ErrBikeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetBike(db, id)
}

func (s *BikeServiceImpl) DeleteBike(db *gorm.DB, id string) error {
	if err := s.bikeRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrBikeNotFound) {
			return apperrors.ErrBikeNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// validateBikeRequest enforces the listing bounds. Zero values reach here
// distinguishable from absent ones because the DTO uses pointer numerics.
func validateBikeRequest(req *dto.BikeRequest) error {
	if req.Brand == "" || req.Model == "" || req.Location == "" ||
		req.Year == nil || req.Price == nil || req.KilometersDriven == nil {
		return apperrors.NewBadRequestError("All fields are required except image_url")
	}
	if *req.Year < MinBikeYear || *req.Year > time.Now().Year()+1 {
		return apperrors.NewBadRequestError("Invalid year")
	}
	if *req.Price <= 0 {
		return apperrors.NewBadRequestError("Price must be positive")
	}
	if *req.KilometersDriven < 0 {
		return apperrors.NewBadRequestError("Kilometers driven cannot be negative")
	}
	return nil
}

func toBikeResponses(bikes []models.Bike) []dto.BikeResponse {
	responses := make([]dto.BikeResponse, 0, len(bikes))
	for i := range bikes {
		responses = append(responses, dto.NewBikeResponse(&bikes[i]))
	}
	return responses
}
