package models

import (
	"time"
)

type ListingStatus string

const (
	ListingPending  ListingStatus = "PENDING"
	ListingApproved ListingStatus = "APPROVED"
	ListingRejected ListingStatus = "REJECTED"
)

// Listing is owned by exactly one landlord. The landlord side carries no
// back-collection; landlord listings are fetched by LandlordID instead.
type Listing struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Image       string `json:"image"`

	// Stored as JSON columns. A delimiter-joined encoding would corrupt
	// values containing the delimiter.
	ImageList []string `json:"image_list" gorm:"serializer:json"`
	Amenities []string `json:"amenities" gorm:"serializer:json"`

	Location      string   `json:"location"`
	NearbySchools string   `json:"nearby_schools"`
	Distance      string   `json:"distance"`
	RoomType      string   `json:"room_type"`
	Price         float64  `json:"price" gorm:"not null"`
	Website       string   `json:"website"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`

	Status         ListingStatus `json:"status" gorm:"type:varchar(20);not null;default:PENDING;index"`
	RejectionNotes string        `json:"rejection_notes,omitempty"`

	ViewCount int `json:"view_count" gorm:"not null;default:0"`

	// Derived from the listing's ratings, recomputed on every rating write.
	Rating  float64 `json:"rating" gorm:"default:0"`
	Reviews int     `json:"reviews" gorm:"default:0"`

	LandlordID uint      `json:"landlord_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasCoordinates reports whether the listing was geocoded.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
