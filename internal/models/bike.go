package models

// Bike is a for-sale listing. SellerID is set at creation and never
// reassigned; mutation and deletion require the caller to be the seller.
type Bike struct {
	BaseModel
	Brand            string  `gorm:"not null;index" json:"brand"`
	Model            string  `gorm:"not null;index" json:"model"`
	Year             int     `gorm:"not null" json:"year"`
	Price            float64 `gorm:"not null" json:"price"`
	KilometersDriven int     `gorm:"not null" json:"kilometers_driven"`
	Location         string  `gorm:"not null" json:"location"`
	ImageURL         string  `json:"image_url,omitempty"`
	SellerID         string  `gorm:"type:uuid;not null;index" json:"seller_id"`

	Seller *User `gorm:"foreignKey:SellerID" json:"-"`
}
