package handlers

import (
	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// CreateInquiry lets a student send a message or visit request to the
// landlord of a listing.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	studentID := c.GetUint("user_id")

	var req services.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	inquiry, err := h.inquiryService.Create(studentID, req)
	if err != nil {
		sendServiceError(c, "Failed to create inquiry", err)
		return
	}

	utils.SendSuccess(c, "Inquiry created successfully", inquiry)
}

func (h *InquiryHandler) GetMyInquiries(c *gin.Context) {
	studentID := c.GetUint("user_id")

	inquiries, err := h.inquiryService.ByStudent(studentID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch inquiries", err)
		return
	}

	utils.SendSuccess(c, "Inquiries retrieved successfully", inquiries)
}

func (h *InquiryHandler) GetLandlordInquiries(c *gin.Context) {
	landlordID := c.GetUint("user_id")

	inquiries, err := h.inquiryService.ByLandlord(landlordID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch inquiries", err)
		return
	}

	utils.SendSuccess(c, "Inquiries retrieved successfully", inquiries)
}

// UpdateInquiryStatus overwrites an inquiry's status. Closed inquiries are
// terminal and reject further updates.
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid inquiry ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	inquiry, err := h.inquiryService.UpdateStatus(id, req.Status)
	if err != nil {
		sendServiceError(c, "Failed to update inquiry status", err)
		return
	}

	utils.SendSuccess(c, "Inquiry status updated", inquiry)
}

func (h *InquiryHandler) ReplyToInquiry(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.SendValidationError(c, "Invalid inquiry ID")
		return
	}

	var req struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	inquiry, err := h.inquiryService.Reply(id, req.Reply)
	if err != nil {
		sendServiceError(c, "Failed to reply to inquiry", err)
		return
	}

	utils.SendSuccess(c, "Reply sent successfully", inquiry)
}
