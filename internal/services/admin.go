package services

import (
	"errors"
	"fmt"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/boardinghouse/rental-backend/pkg/logger"
	"gorm.io/gorm"
)

type AdminService struct {
	db           *gorm.DB
	emailService *EmailService
}

// emailService may be nil; moderation notices are best-effort.
func NewAdminService(db *gorm.DB, emailService *EmailService) *AdminService {
	return &AdminService{db: db, emailService: emailService}
}

type UserUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type DashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalStudents    int64 `json:"total_students"`
	TotalLandlords   int64 `json:"total_landlords"`
	TotalListings    int64 `json:"total_listings"`
	PendingListings  int64 `json:"pending_listings"`
	ApprovedListings int64 `json:"approved_listings"`
	RejectedListings int64 `json:"rejected_listings"`
	TotalInquiries   int64 `json:"total_inquiries"`
}

// ListUsers returns all non-admin accounts.
func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("role <> ?", models.RoleAdmin).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %v", err)
	}
	return users, nil
}

// UpdateUser edits a non-admin account. Admin accounts cannot be modified
// and the admin role cannot be granted.
func (s *AdminService) UpdateUser(id uint, req UserUpdateRequest) (*models.User, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: admin accounts cannot be modified", ErrInvalidState)
	}
	if req.Role != nil && *req.Role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: admin role cannot be assigned", ErrValidation)
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = utils.SanitizeString(*req.Name)
	}
	if req.Email != nil && *req.Email != "" {
		if !utils.IsValidEmail(*req.Email) {
			return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
		}
		if *req.Email != user.Email {
			var count int64
			if err := s.db.Model(&models.User{}).Where("email = ?", *req.Email).Count(&count).Error; err != nil {
				return nil, fmt.Errorf("failed to check email: %v", err)
			}
			if count > 0 {
				return nil, fmt.Errorf("%w: email already exists", ErrConflict)
			}
		}
		user.Email = *req.Email
	}
	if req.Role != nil && *req.Role != "" {
		if !utils.IsValidRegistrationRole(*req.Role) {
			return nil, fmt.Errorf("%w: invalid role %q", ErrValidation, *req.Role)
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %v", err)
	}
	return user, nil
}

// DeleteUser removes a non-admin account.
func (s *AdminService) DeleteUser(id uint) error {
	user, err := s.getUser(id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return fmt.Errorf("%w: admin accounts cannot be deleted", ErrInvalidState)
	}
	if err := s.db.Delete(user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %v", err)
	}
	return nil
}

// ApproveListing makes a listing publicly visible. Repeated approval just
// re-sets the same status.
func (s *AdminService) ApproveListing(id uint) (*models.Listing, error) {
	listing, err := s.getListing(id)
	if err != nil {
		return nil, err
	}

	listing.Status = models.ListingApproved
	listing.RejectionNotes = ""
	if err := s.db.Save(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to approve listing: %v", err)
	}

	s.notifyLandlord(listing, "approved", "")
	return listing, nil
}

// RejectListing hides a listing from the public and records the reason. The
// landlord can re-submit by editing, which resets the status to PENDING.
func (s *AdminService) RejectListing(id uint, notes string) (*models.Listing, error) {
	listing, err := s.getListing(id)
	if err != nil {
		return nil, err
	}

	listing.Status = models.ListingRejected
	listing.RejectionNotes = notes
	if err := s.db.Save(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to reject listing: %v", err)
	}

	s.notifyLandlord(listing, "rejected", notes)
	return listing, nil
}

func (s *AdminService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		model interface{}
		query *gorm.DB
	}{
		{&stats.TotalUsers, &models.User{}, s.db.Where("role <> ?", models.RoleAdmin)},
		{&stats.TotalStudents, &models.User{}, s.db.Where("role = ?", models.RoleStudent)},
		{&stats.TotalLandlords, &models.User{}, s.db.Where("role = ?", models.RoleLandlord)},
		{&stats.TotalListings, &models.Listing{}, s.db},
		{&stats.PendingListings, &models.Listing{}, s.db.Where("status = ?", models.ListingPending)},
		{&stats.ApprovedListings, &models.Listing{}, s.db.Where("status = ?", models.ListingApproved)},
		{&stats.RejectedListings, &models.Listing{}, s.db.Where("status = ?", models.ListingRejected)},
		{&stats.TotalInquiries, &models.Inquiry{}, s.db},
	}
	for _, c := range counts {
		if err := c.query.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to compute dashboard stats: %v", err)
		}
	}
	return stats, nil
}

func (s *AdminService) getUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch user: %v", err)
	}
	return &user, nil
}

func (s *AdminService) getListing(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch listing: %v", err)
	}
	return &listing, nil
}

func (s *AdminService) notifyLandlord(listing *models.Listing, decision, notes string) {
	if s.emailService == nil {
		return
	}

	var landlord models.User
	if err := s.db.First(&landlord, listing.LandlordID).Error; err != nil {
		logger.Errorf("listing %d: failed to load landlord for notification: %v", listing.ID, err)
		return
	}

	if err := s.emailService.SendModerationNotification(landlord.Email, listing.Title, decision, notes); err != nil {
		logger.Errorf("listing %d: failed to send moderation notification: %v", listing.ID, err)
	}
}
