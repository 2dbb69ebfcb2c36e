package handlers

import (
	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService   *services.AdminService
	listingService *services.ListingService
}

func NewAdminHandler(adminService *services.AdminService, listingService *services.ListingService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		listingService: listingService,
	}
}

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch dashboard stats", err)
		return
	}

	utils.SendSuccess(c, "Dashboard stats retrieved successfully", stats)
}

func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch users", err)
		return
	}

	utils.SendSuccess(c, "Users retrieved successfully", users)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	var req services.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	user, err := h.adminService.UpdateUser(id, req)
	if err != nil {
		sendServiceError(c, "Failed to update user", err)
		return
	}

	utils.SendSuccess(c, "User updated successfully", user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid user ID")
		return
	}

	if err := h.adminService.DeleteUser(id); err != nil {
		sendServiceError(c, "Failed to delete user", err)
		return
	}

	utils.SendSuccess(c, "User deleted successfully", nil)
}

// GetAllListings returns listings in every status, for moderation review.
func (h *AdminHandler) GetAllListings(c *gin.Context) {
	listings, err := h.listingService.GetAll()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch listings", err)
		return
	}

	utils.SendSuccess(c, "Listings retrieved successfully", listings)
}

func (h *AdminHandler) ApproveListing(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	listing, err := h.adminService.ApproveListing(id)
	if err != nil {
		sendServiceError(c, "Failed to approve listing", err)
		return
	}

	utils.SendSuccess(c, "Listing approved successfully", listing)
}

func (h *AdminHandler) RejectListing(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid listing ID")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	listing, err := h.adminService.RejectListing(id, req.Notes)
	if err != nil {
		sendServiceError(c, "Failed to reject listing", err)
		return
	}

	utils.SendSuccess(c, "Listing rejected", listing)
}
