package services

import (
	"testing"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	admin := &models.User{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func strPtr(s string) *string { return &s }

func TestApproveListing(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingPending)
	svc := NewAdminService(db, nil)

	approved, err := svc.ApproveListing(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingApproved, approved.Status)

	// Approved listings show up in public search.
	results, err := NewListingService(db).Search("")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRejectListingRecordsNotes(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewAdminService(db, nil)

	rejected, err := svc.RejectListing(listing.ID, "photos too dark")
	require.NoError(t, err)
	assert.Equal(t, models.ListingRejected, rejected.Status)
	assert.Equal(t, "photos too dark", rejected.RejectionNotes)

	// Rejection hides the listing from public reads.
	_, err = NewListingService(db).GetVisible(listing.ID)
	assert.ErrorIs(t, err, ErrNotVisible)
}

func TestApproveClearsRejectionNotes(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingRejected)
	require.NoError(t, db.Model(listing).Update("rejection_notes", "incomplete address").Error)
	svc := NewAdminService(db, nil)

	approved, err := svc.ApproveListing(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingApproved, approved.Status)
	assert.Empty(t, approved.RejectionNotes)
}

func TestModerateMissingListing(t *testing.T) {
	svc := NewAdminService(setupTestDB(t), nil)

	_, err := svc.ApproveListing(404)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.RejectListing(404, "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsersExcludesAdmins(t *testing.T) {
	db := setupTestDB(t)
	createTestAdmin(t, db)
	createTestLandlord(t, db, "landlord@example.com")
	createTestStudent(t, db, "student@example.com")
	svc := NewAdminService(db, nil)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, models.RoleAdmin, u.Role)
	}
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "student@example.com")
	svc := NewAdminService(db, nil)

	inactive := false
	updated, err := svc.UpdateUser(student.ID, UserUpdateRequest{
		Name:     strPtr("Renamed Student"),
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Student", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestUpdateUserGuards(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	student := createTestStudent(t, db, "student@example.com")
	createTestLandlord(t, db, "landlord@example.com")
	svc := NewAdminService(db, nil)

	_, err := svc.UpdateUser(admin.ID, UserUpdateRequest{Name: strPtr("Other")})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.UpdateUser(student.ID, UserUpdateRequest{Role: strPtr(models.RoleAdmin)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateUser(student.ID, UserUpdateRequest{Email: strPtr("landlord@example.com")})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.UpdateUser(student.ID, UserUpdateRequest{Email: strPtr("not-an-email")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db)
	student := createTestStudent(t, db, "student@example.com")
	svc := NewAdminService(db, nil)

	require.NoError(t, svc.DeleteUser(student.ID))
	assert.ErrorIs(t, svc.DeleteUser(student.ID), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteUser(admin.ID), ErrInvalidState)
}

func TestDashboardCounts(t *testing.T) {
	db := setupTestDB(t)
	createTestAdmin(t, db)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	approved := createTestListing(t, db, landlord.ID, models.ListingApproved)
	createTestListing(t, db, landlord.ID, models.ListingPending)
	createTestListing(t, db, landlord.ID, models.ListingRejected)

	_, err := NewInquiryService(db, nil).Create(student.ID, InquiryRequest{
		ListingID: approved.ID, Type: "MESSAGE",
	})
	require.NoError(t, err)

	stats, err := NewAdminService(db, nil).Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalStudents)
	assert.Equal(t, int64(1), stats.TotalLandlords)
	assert.Equal(t, int64(3), stats.TotalListings)
	assert.Equal(t, int64(1), stats.PendingListings)
	assert.Equal(t, int64(1), stats.ApprovedListings)
	assert.Equal(t, int64(1), stats.RejectedListings)
	assert.Equal(t, int64(1), stats.TotalInquiries)
}
