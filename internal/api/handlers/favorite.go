package handlers

import (
	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		ListingID uint `json:"listing_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	favorite, err := h.favoriteService.Add(userID, req.ListingID)
	if err != nil {
		sendServiceError(c, "Failed to add favorite", err)
		return
	}

	utils.SendSuccess(c, "Favorite added successfully", favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")

	listingID, err := parseID(c, "listing_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	if err := h.favoriteService.Remove(userID, listingID); err != nil {
		sendServiceError(c, "Failed to remove favorite", err)
		return
	}

	utils.SendSuccess(c, "Favorite removed successfully", nil)
}

func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID := c.GetUint("user_id")

	favorites, err := h.favoriteService.ByUser(userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch favorites", err)
		return
	}

	utils.SendSuccess(c, "Favorites retrieved successfully", favorites)
}

func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")

	listingID, err := parseID(c, "listing_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(userID, listingID)
	if err != nil {
		utils.SendInternalError(c, "Failed to check favorite", err)
		return
	}

	utils.SendSuccess(c, "Favorite status retrieved", gin.H{"is_favorite": isFavorite})
}
