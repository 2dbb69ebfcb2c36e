package services

import (
	"errors"
	"fmt"

	"github.com/boardinghouse/rental-backend/internal/models"
	"gorm.io/gorm"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add favorites a listing for the user. The existence check is a fast path;
// the unique index on (user_id, listing_id) rejects the race between check
// and insert.
func (s *FavoriteService) Add(userID, listingID uint) (*models.Favorite, error) {
	var listing models.Listing
	if err := s.db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing %d", ErrNotFound, listingID)
		}
		return nil, fmt.Errorf("failed to fetch listing: %v", err)
	}

	exists, err := s.IsFavorite(userID, listingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: listing already in favorites", ErrConflict)
	}

	favorite := models.Favorite{
		UserID:    userID,
		ListingID: listingID,
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: listing already in favorites", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create favorite: %v", err)
	}
	return &favorite, nil
}

func (s *FavoriteService) Remove(userID, listingID uint) error {
	result := s.db.Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove favorite: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: favorite for listing %d", ErrNotFound, listingID)
	}
	return nil
}

func (s *FavoriteService) ByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %v", err)
	}
	return favorites, nil
}

func (s *FavoriteService) IsFavorite(userID, listingID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %v", err)
	}
	return count > 0, nil
}
