package services

import (
	"testing"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCreatesRatingAndAggregates(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewRatingService(db)

	rating, err := svc.Upsert(student.ID, RatingRequest{
		ListingID: listing.ID, Rating: 4, Review: "Clean and quiet",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Rating)

	got, err := NewListingService(db).GetByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)
	assert.Equal(t, 1, got.Reviews)
}

func TestUpsertTwiceUpdatesInPlace(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewRatingService(db)

	_, err := svc.Upsert(student.ID, RatingRequest{ListingID: listing.ID, Rating: 3})
	require.NoError(t, err)
	_, err = svc.Upsert(student.ID, RatingRequest{ListingID: listing.ID, Rating: 5})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).
		Where("user_id = ? AND listing_id = ?", student.ID, listing.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := svc.ByUserAndListing(student.ID, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)

	got, err := NewListingService(db).GetByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Rating)
	assert.Equal(t, 1, got.Reviews)
}

func TestUpsertAveragesAcrossUsers(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewRatingService(db)

	scores := []int{1, 3, 5}
	for i, score := range scores {
		student := createTestStudent(t, db, string(rune('a'+i))+"@example.com")
		_, err := svc.Upsert(student.ID, RatingRequest{ListingID: listing.ID, Rating: score})
		require.NoError(t, err)
	}

	got, err := NewListingService(db).GetByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Rating)
	assert.Equal(t, 3, got.Reviews)
}

func TestUpsertAverageRoundsToOneDecimal(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewRatingService(db)

	for i, score := range []int{4, 5, 5} {
		student := createTestStudent(t, db, string(rune('a'+i))+"@example.com")
		_, err := svc.Upsert(student.ID, RatingRequest{ListingID: listing.ID, Rating: score})
		require.NoError(t, err)
	}

	avg, err := svc.AverageRating(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.7, avg)
}

func TestUpsertRejectsOutOfRangeScore(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewRatingService(db)

	for _, score := range []int{0, 6, -1} {
		_, err := svc.Upsert(student.ID, RatingRequest{ListingID: listing.ID, Rating: score})
		assert.ErrorIs(t, err, ErrValidation)
	}

	// The rejected writes must not touch the aggregate.
	got, err := NewListingService(db).GetByID(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Rating)
	assert.Equal(t, 0, got.Reviews)
}

func TestUpsertMissingListing(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "student@example.com")
	svc := NewRatingService(db)

	_, err := svc.Upsert(student.ID, RatingRequest{ListingID: 404, Rating: 3})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAverageRatingEmptyListing(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewRatingService(db)

	avg, err := svc.AverageRating(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	count, err := svc.ReviewCount(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
