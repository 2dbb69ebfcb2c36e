package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"gorm.io/gorm"
)

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

type RatingRequest struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

// Upsert writes a user's rating for a listing. A second rating for the same
// (user, listing) pair updates the existing row. The listing's aggregate
// rating and review count are recomputed in the same transaction, so readers
// never observe a rating row without its matching aggregate.
func (s *RatingService) Upsert(userID uint, req RatingRequest) (*models.Rating, error) {
	if !utils.IsValidRating(req.Rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	var rating models.Rating
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, req.ListingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: listing %d", ErrNotFound, req.ListingID)
			}
			return fmt.Errorf("failed to fetch listing: %v", err)
		}

		err := tx.Where("user_id = ? AND listing_id = ?", userID, req.ListingID).First(&rating).Error
		switch {
		case err == nil:
			rating.Rating = req.Rating
			rating.Review = utils.SanitizeString(req.Review)
			if err := tx.Save(&rating).Error; err != nil {
				return fmt.Errorf("failed to update rating: %v", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rating = models.Rating{
				UserID:    userID,
				ListingID: req.ListingID,
				Rating:    req.Rating,
				Review:    utils.SanitizeString(req.Review),
			}
			if err := tx.Create(&rating).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("%w: rating already exists for this listing", ErrConflict)
				}
				return fmt.Errorf("failed to create rating: %v", err)
			}
		default:
			return fmt.Errorf("failed to look up rating: %v", err)
		}

		return s.recomputeAggregates(tx, req.ListingID)
	})
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// recomputeAggregates persists the listing's mean rating (one decimal) and
// review count from the current rating rows. Must run inside the same
// transaction as the rating write.
func (s *RatingService) recomputeAggregates(tx *gorm.DB, listingID uint) error {
	avg, err := averageRating(tx, listingID)
	if err != nil {
		return err
	}
	count, err := reviewCount(tx, listingID)
	if err != nil {
		return err
	}

	err = tx.Model(&models.Listing{}).
		Where("id = ?", listingID).
		Updates(map[string]interface{}{"rating": avg, "reviews": count}).Error
	if err != nil {
		return fmt.Errorf("failed to update listing aggregates: %v", err)
	}
	return nil
}

// AverageRating returns the listing's mean score rounded to one decimal
// place, 0.0 when the listing has no ratings.
func (s *RatingService) AverageRating(listingID uint) (float64, error) {
	return averageRating(s.db, listingID)
}

func (s *RatingService) ReviewCount(listingID uint) (int, error) {
	return reviewCount(s.db, listingID)
}

func averageRating(tx *gorm.DB, listingID uint) (float64, error) {
	var avg *float64
	err := tx.Model(&models.Rating{}).
		Where("listing_id = ?", listingID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %v", err)
	}
	if avg == nil {
		return 0.0, nil
	}
	return math.Round(*avg*10) / 10, nil
}

func reviewCount(tx *gorm.DB, listingID uint) (int, error) {
	var count int64
	err := tx.Model(&models.Rating{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %v", err)
	}
	return int(count), nil
}

func (s *RatingService) ByListing(listingID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ratings: %v", err)
	}
	return ratings, nil
}

func (s *RatingService) ByUserAndListing(userID, listingID uint) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.Where("user_id = ? AND listing_id = ?", userID, listingID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no rating for listing %d", ErrNotFound, listingID)
		}
		return nil, fmt.Errorf("failed to fetch rating: %v", err)
	}
	return &rating, nil
}
