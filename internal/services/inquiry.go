package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/boardinghouse/rental-backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	visitDateLayout = "2006-01-02"
	visitTimeLayout = "15:04"
)

type InquiryService struct {
	db           *gorm.DB
	emailService *EmailService
}

// emailService may be nil; notifications are best-effort.
func NewInquiryService(db *gorm.DB, emailService *EmailService) *InquiryService {
	return &InquiryService{db: db, emailService: emailService}
}

type InquiryRequest struct {
	ListingID uint   `json:"listing_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Message   string `json:"message"`
	Notes     string `json:"notes"`
	VisitDate string `json:"visit_date"`
	VisitTime string `json:"visit_time"`
}

// Create stores a new inquiry in status NEW. The listing's landlord is
// denormalized onto the inquiry so landlord inboxes are a single query.
// Visit date and time are parsed only for visit requests.
func (s *InquiryService) Create(studentID uint, req InquiryRequest) (*models.Inquiry, error) {
	inquiryType, err := parseInquiryType(req.Type)
	if err != nil {
		return nil, err
	}

	var listing models.Listing
	if err := s.db.First(&listing, req.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing %d", ErrNotFound, req.ListingID)
		}
		return nil, fmt.Errorf("failed to fetch listing: %v", err)
	}

	if listing.LandlordID == 0 {
		return nil, fmt.Errorf("%w: listing %d has no landlord", ErrInvalidState, req.ListingID)
	}

	inquiry := models.Inquiry{
		Type:       inquiryType,
		Status:     models.InquiryNew,
		Message:    utils.SanitizeString(req.Message),
		Notes:      utils.SanitizeString(req.Notes),
		StudentID:  studentID,
		ListingID:  listing.ID,
		LandlordID: listing.LandlordID,
	}

	if inquiryType == models.InquiryVisitRequest {
		if req.VisitDate != "" {
			visitDate, err := time.Parse(visitDateLayout, req.VisitDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid visit date %q", ErrValidation, req.VisitDate)
			}
			inquiry.VisitDate = &visitDate
		}
		if req.VisitTime != "" {
			visitTime, err := time.Parse(visitTimeLayout, req.VisitTime)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid visit time %q", ErrValidation, req.VisitTime)
			}
			inquiry.VisitTime = &visitTime
		}
	}

	if err := s.db.Create(&inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %v", err)
	}
	return &inquiry, nil
}

func parseInquiryType(raw string) (models.InquiryType, error) {
	switch models.InquiryType(raw) {
	case models.InquiryMessage, models.InquiryVisitRequest:
		return models.InquiryType(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown inquiry type %q", ErrValidation, raw)
	}
}

func parseInquiryStatus(raw string) (models.InquiryStatus, error) {
	switch models.InquiryStatus(raw) {
	case models.InquiryNew, models.InquiryReplied, models.InquiryScheduled, models.InquiryClosed:
		return models.InquiryStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown inquiry status %q", ErrValidation, raw)
	}
}

// UpdateStatus overwrites the inquiry status. CLOSED is terminal: a closed
// inquiry cannot be reopened or re-closed.
func (s *InquiryService) UpdateStatus(id uint, rawStatus string) (*models.Inquiry, error) {
	status, err := parseInquiryStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	inquiry, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if inquiry.Status == models.InquiryClosed {
		return nil, fmt.Errorf("%w: inquiry %d is closed", ErrInvalidState, id)
	}

	inquiry.Status = status
	if err := s.db.Save(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to update inquiry status: %v", err)
	}
	return inquiry, nil
}

// Reply records the landlord's reply and forces the status to REPLIED
// regardless of the prior state.
func (s *InquiryService) Reply(id uint, reply string) (*models.Inquiry, error) {
	inquiry, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inquiry.Reply = reply
	inquiry.RepliedAt = &now
	inquiry.Status = models.InquiryReplied

	if err := s.db.Save(inquiry).Error; err != nil {
		return nil, fmt.Errorf("failed to save reply: %v", err)
	}

	s.notifyStudent(inquiry)
	return inquiry, nil
}

// notifyStudent emails the student about the reply. Failures are logged,
// never surfaced: the reply itself already committed.
func (s *InquiryService) notifyStudent(inquiry *models.Inquiry) {
	if s.emailService == nil {
		return
	}

	var student models.User
	if err := s.db.First(&student, inquiry.StudentID).Error; err != nil {
		logger.Errorf("inquiry %d: failed to load student for notification: %v", inquiry.ID, err)
		return
	}

	if err := s.emailService.SendInquiryReplyNotification(student.Email, inquiry.Reply); err != nil {
		logger.Errorf("inquiry %d: failed to send reply notification: %v", inquiry.ID, err)
	}
}

func (s *InquiryService) GetByID(id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: inquiry %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch inquiry: %v", err)
	}
	return &inquiry, nil
}

func (s *InquiryService) ByLandlord(landlordID uint) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.Where("landlord_id = ?", landlordID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landlord inquiries: %v", err)
	}
	return inquiries, nil
}

func (s *InquiryService) ByStudent(studentID uint) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student inquiries: %v", err)
	}
	return inquiries, nil
}
