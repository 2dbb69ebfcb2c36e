package models

import (
	"time"
)

// Rating holds one user's score for one listing. The composite unique index
// is the real guard against duplicates; service-level existence checks are a
// fast path only.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_ratings_user_listing"`
	ListingID uint      `json:"listing_id" gorm:"not null;uniqueIndex:idx_ratings_user_listing"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
