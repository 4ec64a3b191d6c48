package dto

import (
	"time"

	"minivutto_backend/internal/models"
)

// BikeRequest covers create and full-replace update. Numeric fields are
// pointers so "absent" and "zero" stay distinguishable: kilometers_driven
// of 0 is a valid value, a missing one is not.
type BikeRequest struct {
	Brand            string   `json:"brand" validate:"required"`
	Model            string   `json:"model" validate:"required"`
	Year             *int     `json:"year" validate:"required"`
	Price            *float64 `json:"price" validate:"required"`
	KilometersDriven *int     `json:"kilometers_driven" validate:"required"`
	Location         string   `json:"location" validate:"required"`
	ImageURL         string   `json:"image_url" validate:"omitempty,url"`
}

// BikeListQuery carries the public search filters.
type BikeListQuery struct {
	Brand  string `form:"brand"`
	Model  string `form:"model"`
	Search string `form:"search"`
}

// BikeResponse is a listing row as clients see it, including the seller's
// email the way the public listing join exposes it.
type BikeResponse struct {
	ID               string    `json:"id"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Price            float64   `json:"price"`
	KilometersDriven int       `json:"kilometers_driven"`
	Location         string    `json:"location"`
	ImageURL         string    `json:"image_url,omitempty"`
	SellerID         string    `json:"seller_id"`
	SellerEmail      string    `json:"seller_email,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewBikeResponse maps a model row, lifting the seller's email out of the
// preloaded relation when present.
func NewBikeResponse(bike *models.Bike) BikeResponse {
	resp := BikeResponse{
		ID:               bike.ID,
		Brand:            bike.Brand,
		Model:            bike.Model,
		Year:             bike.Year,
		Price:            bike.Price,
		KilometersDriven: bike.KilometersDriven,
		Location:         bike.Location,
		ImageURL:         bike.ImageURL,
		SellerID:         bike.SellerID,
		CreatedAt:        bike.CreatedAt,
	}
	if bike.Seller != nil {
		resp.SellerEmail = bike.Seller.Email
	}
	return resp
}
