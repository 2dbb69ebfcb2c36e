package handlers

import (
	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// LandlordHandler serves the landlord's own listings. Unlike the public
// read path, owners see their listings in any moderation status.
type LandlordHandler struct {
	listingService *services.ListingService
	s3Service      *services.S3Service
}

// s3Service may be nil when S3 credentials are not configured; image upload
// then responds with a service-unavailable error.
func NewLandlordHandler(listingService *services.ListingService, s3Service *services.S3Service) *LandlordHandler {
	return &LandlordHandler{
		listingService: listingService,
		s3Service:      s3Service,
	}
}

func (h *LandlordHandler) CreateListing(c *gin.Context) {
	landlordID := c.GetUint("user_id")

	var req services.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	listing, err := h.listingService.Create(req, landlordID)
	if err != nil {
		sendServiceError(c, "Failed to create listing", err)
		return
	}

	utils.SendSuccess(c, "Listing created successfully", listing)
}

func (h *LandlordHandler) GetMyListings(c *gin.Context) {
	landlordID := c.GetUint("user_id")

	listings, err := h.listingService.GetByLandlord(landlordID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch listings", err)
		return
	}

	utils.SendSuccess(c, "Listings retrieved successfully", listings)
}

// GetListing returns one of the landlord's own listings in any status,
// for editing.
func (h *LandlordHandler) GetListing(c *gin.Context) {
	landlordID := c.GetUint("user_id")

	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	listing, err := h.listingService.GetByID(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch listing", err)
		return
	}
	if listing.LandlordID != landlordID {
		utils.SendForbidden(c, "You can only view your own listings")
		return
	}

	utils.SendSuccess(c, "Listing retrieved successfully", listing)
}

// UpdateListing edits a listing. Editing a rejected listing re-submits it
// for review.
func (h *LandlordHandler) UpdateListing(c *gin.Context) {
	landlordID := c.GetUint("user_id")

	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	var req services.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	existing, err := h.listingService.GetByID(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch listing", err)
		return
	}
	if existing.LandlordID != landlordID {
		utils.SendForbidden(c, "You can only edit your own listings")
		return
	}

	listing, err := h.listingService.Update(id, req)
	if err != nil {
		sendServiceError(c, "Failed to update listing", err)
		return
	}

	utils.SendSuccess(c, "Listing updated successfully", listing)
}

func (h *LandlordHandler) DeleteListing(c *gin.Context) {
	landlordID := c.GetUint("user_id")

	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	existing, err := h.listingService.GetByID(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch listing", err)
		return
	}
	if existing.LandlordID != landlordID {
		utils.SendForbidden(c, "You can only delete your own listings")
		return
	}

	if err := h.listingService.Delete(id); err != nil {
		sendServiceError(c, "Failed to delete listing", err)
		return
	}

	utils.SendSuccess(c, "Listing deleted successfully", nil)
}

func (h *LandlordHandler) GetTotalViews(c *gin.Context) {
	landlordID := c.GetUint("user_id")

	totalViews, err := h.listingService.TotalViewsByLandlord(landlordID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch view stats", err)
		return
	}

	utils.SendSuccess(c, "View stats retrieved successfully", gin.H{"total_views": totalViews})
}

// UploadListingImage uploads a photo to S3 and returns its URL. The client
// attaches the URL to the listing via a normal update.
func (h *LandlordHandler) UploadListingImage(c *gin.Context) {
	if h.s3Service == nil {
		utils.SendError(c, 503, "Image uploads are not configured", nil)
		return
	}

	landlordID := c.GetUint("user_id")

	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	existing, err := h.listingService.GetByID(id)
	if err != nil {
		sendServiceError(c, "Failed to fetch listing", err)
		return
	}
	if existing.LandlordID != landlordID {
		utils.SendForbidden(c, "You can only upload images to your own listings")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "Image file required")
		return
	}
	defer file.Close()

	result, err := h.s3Service.UploadListingImage(file, header)
	if err != nil {
		sendServiceError(c, "Failed to upload image", err)
		return
	}

	utils.SendSuccess(c, "Image uploaded successfully", result)
}
