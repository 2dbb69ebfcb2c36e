package handlers

import (
	"strconv"

	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// ListingHandler serves the public, student-facing listing read paths. Only
// approved listings are visible here; owners and admins use their own routes.
type ListingHandler struct {
	listingService *services.ListingService
	ratingService  *services.RatingService
}

func NewListingHandler(listingService *services.ListingService, ratingService *services.RatingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		ratingService:  ratingService,
	}
}

// GetListings handles GET /listings?q=&lat=&lon=&radiusKm=. The radius
// filter composes on top of the text search and only applies when all three
// geo parameters are present.
func (h *ListingHandler) GetListings(c *gin.Context) {
	listings, err := h.listingService.Search(c.Query("q"))
	if err != nil {
		utils.SendInternalError(c, "Failed to search listings", err)
		return
	}

	latStr, lonStr, radiusStr := c.Query("lat"), c.Query("lon"), c.Query("radiusKm")
	if latStr != "" && lonStr != "" && radiusStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		radius, radiusErr := strconv.ParseFloat(radiusStr, 64)
		if latErr != nil || lonErr != nil || radiusErr != nil {
			utils.SendValidationError(c, "Invalid geo filter parameters")
			return
		}
		listings = h.listingService.FilterByRadius(listings, lat, lon, radius)
	}

	utils.SendSuccess(c, "Listings retrieved successfully", listings)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	listing, err := h.listingService.GetVisible(id)
	if err != nil {
		sendServiceError(c, "Failed to retrieve listing", err)
		return
	}

	utils.SendSuccess(c, "Listing retrieved successfully", listing)
}

func (h *ListingHandler) IncrementView(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	listing, err := h.listingService.IncrementViews(id)
	if err != nil {
		sendServiceError(c, "Failed to record view", err)
		return
	}

	utils.SendSuccess(c, "View recorded", gin.H{"view_count": listing.ViewCount})
}

func (h *ListingHandler) GetListingRatings(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	ratings, err := h.ratingService.ByListing(id)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch ratings", err)
		return
	}

	utils.SendSuccess(c, "Ratings retrieved successfully", ratings)
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	return uint(id), err
}
