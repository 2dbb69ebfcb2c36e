package services

import (
	"testing"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInquiryMessage(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	inquiry, err := svc.Create(student.ID, InquiryRequest{
		ListingID: listing.ID,
		Type:      "MESSAGE",
		Message:   "Is the room still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryNew, inquiry.Status)
	assert.Equal(t, landlord.ID, inquiry.LandlordID)
	assert.Nil(t, inquiry.VisitDate)
}

func TestCreateVisitRequestParsesDateAndTime(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	inquiry, err := svc.Create(student.ID, InquiryRequest{
		ListingID: listing.ID,
		Type:      "VISIT_REQUEST",
		Message:   "Can I visit this weekend?",
		VisitDate: "2025-03-01",
		VisitTime: "14:00",
	})
	require.NoError(t, err)
	require.NotNil(t, inquiry.VisitDate)
	require.NotNil(t, inquiry.VisitTime)
	assert.Equal(t, "2025-03-01", inquiry.VisitDate.Format("2006-01-02"))
	assert.Equal(t, "14:00", inquiry.VisitTime.Format("15:04"))
}

func TestCreateInquiryMalformedVisitDate(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	_, err := svc.Create(student.ID, InquiryRequest{
		ListingID: listing.ID,
		Type:      "VISIT_REQUEST",
		VisitDate: "03/01/2025",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(student.ID, InquiryRequest{
		ListingID: listing.ID,
		Type:      "VISIT_REQUEST",
		VisitTime: "2pm",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateInquiryMissingListing(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "student@example.com")
	svc := NewInquiryService(db, nil)

	_, err := svc.Create(student.ID, InquiryRequest{ListingID: 404, Type: "MESSAGE"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateInquiryUnknownType(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	_, err := svc.Create(student.ID, InquiryRequest{ListingID: listing.ID, Type: "PHONE_CALL"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReplyForcesRepliedStatus(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	inquiry, err := svc.Create(student.ID, InquiryRequest{
		ListingID: listing.ID,
		Type:      "VISIT_REQUEST",
		Message:   "Can I come by?",
		VisitDate: "2025-03-01",
		VisitTime: "14:00",
	})
	require.NoError(t, err)

	replied, err := svc.Reply(inquiry.ID, "Sure, come by!")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryReplied, replied.Status)
	assert.Equal(t, "Sure, come by!", replied.Reply)
	assert.NotNil(t, replied.RepliedAt)
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	inquiry, err := svc.Create(student.ID, InquiryRequest{ListingID: listing.ID, Type: "MESSAGE"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(inquiry.ID, "SCHEDULED")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryScheduled, updated.Status)

	updated, err = svc.UpdateStatus(inquiry.ID, "CLOSED")
	require.NoError(t, err)
	assert.Equal(t, models.InquiryClosed, updated.Status)

	// CLOSED is terminal.
	_, err = svc.UpdateStatus(inquiry.ID, "NEW")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	inquiry, err := svc.Create(student.ID, InquiryRequest{ListingID: listing.ID, Type: "MESSAGE"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(inquiry.ID, "ARCHIVED")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInquiriesByLandlordAndStudent(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	otherStudent := createTestStudent(t, db, "other@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewInquiryService(db, nil)

	_, err := svc.Create(student.ID, InquiryRequest{ListingID: listing.ID, Type: "MESSAGE"})
	require.NoError(t, err)
	_, err = svc.Create(otherStudent.ID, InquiryRequest{ListingID: listing.ID, Type: "MESSAGE"})
	require.NoError(t, err)

	byLandlord, err := svc.ByLandlord(landlord.ID)
	require.NoError(t, err)
	assert.Len(t, byLandlord, 2)

	byStudent, err := svc.ByStudent(student.ID)
	require.NoError(t, err)
	assert.Len(t, byStudent, 1)
}
