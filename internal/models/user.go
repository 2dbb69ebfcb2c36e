package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleStudent  = "student"
	RoleLandlord = "landlord"
	RoleAdmin    = "admin"
)

const (
	AuthProviderLocal  = "LOCAL"
	AuthProviderGoogle = "GOOGLE"
)

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-"` // empty for federated accounts
	Role         string `json:"role" gorm:"not null;default:student"`
	AuthProvider string `json:"auth_provider" gorm:"not null;default:LOCAL"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	Phone        string `json:"phone"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`

	// Student profile
	University        string `json:"university,omitempty"`
	YearOfStudy       string `json:"year_of_study,omitempty"`
	Budget            *int   `json:"budget,omitempty"`
	PreferredLocation string `json:"preferred_location,omitempty"`
	RoomType          string `json:"room_type,omitempty"`

	// Landlord profile
	BusinessName    string `json:"business_name,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	TaxID           string `json:"tax_id,omitempty"`
	BankAccount     string `json:"bank_account,omitempty"`
	Website         string `json:"website,omitempty"`
	Experience      *int   `json:"experience,omitempty"`

	// Admin profile
	Department string `json:"department,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate hashes the password. Federated accounts carry no credential
// material, so an empty password is stored as-is.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies the password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	if u.Password == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

func (u *User) UpdatePassword(newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

type RefreshToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Token     string    `json:"token" gorm:"unique;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	IsRevoked bool      `json:"is_revoked" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
