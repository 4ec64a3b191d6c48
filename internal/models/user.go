package models

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleSeller   UserRole = "seller"
)

// NormalizeRole coerces anything that is not a recognized role to customer.
// Invalid values are silently replaced, not rejected, matching the public
// registration contract.
func NormalizeRole(role string) UserRole {
	switch UserRole(role) {
	case UserRoleCustomer, UserRoleSeller:
		return UserRole(role)
	default:
		return UserRoleCustomer
	}
}

// IsValidRole reports whether role is one of the two recognized values.
// Role *updates* reject invalid values (unlike registration, which coerces).
func IsValidRole(role string) bool {
	r := UserRole(role)
	return r == UserRoleCustomer || r == UserRoleSeller
}

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `gorm:"not null" json:"last_name"`

	Bikes []Bike `gorm:"foreignKey:SellerID" json:"-"`
}
