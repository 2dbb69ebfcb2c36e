package handlers

import (
	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// CreateOrUpdateRating upserts the caller's rating for a listing.
func (h *RatingHandler) CreateOrUpdateRating(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	rating, err := h.ratingService.Upsert(userID, req)
	if err != nil {
		sendServiceError(c, "Failed to save rating", err)
		return
	}

	utils.SendSuccess(c, "Rating saved successfully", rating)
}

// GetMyRating returns the caller's rating for a listing, or null data when
// the caller has not rated it.
func (h *RatingHandler) GetMyRating(c *gin.Context) {
	userID := c.GetUint("user_id")

	listingID, err := parseID(c, "listing_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	rating, err := h.ratingService.ByUserAndListing(userID, listingID)
	if err != nil {
		sendServiceError(c, "Failed to fetch rating", err)
		return
	}

	utils.SendSuccess(c, "Rating retrieved successfully", rating)
}
