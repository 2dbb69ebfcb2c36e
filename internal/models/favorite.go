package models

import (
	"time"
)

// Favorite is a pure join row. The composite unique index enforces at most
// one favorite per (user, listing) pair.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorites_user_listing"`
	ListingID uint      `json:"listing_id" gorm:"not null;uniqueIndex:idx_favorites_user_listing"`
	CreatedAt time.Time `json:"created_at"`
}
