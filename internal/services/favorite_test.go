package services

import (
	"testing"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewFavoriteService(db)

	favorite, err := svc.Add(student.ID, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, favorite.UserID)
	assert.Equal(t, listing.ID, favorite.ListingID)

	exists, err := svc.IsFavorite(student.ID, listing.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewFavoriteService(db)

	_, err := svc.Add(student.ID, listing.ID)
	require.NoError(t, err)

	_, err = svc.Add(student.ID, listing.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddFavoriteMissingListing(t *testing.T) {
	db := setupTestDB(t)
	student := createTestStudent(t, db, "student@example.com")
	svc := NewFavoriteService(db)

	_, err := svc.Add(student.ID, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	listing := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewFavoriteService(db)

	_, err := svc.Add(student.ID, listing.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(student.ID, listing.ID))

	exists, err := svc.IsFavorite(student.ID, listing.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing again is a miss, not a no-op.
	assert.ErrorIs(t, svc.Remove(student.ID, listing.ID), ErrNotFound)
}

func TestFavoritesByUser(t *testing.T) {
	db := setupTestDB(t)
	landlord := createTestLandlord(t, db, "landlord@example.com")
	student := createTestStudent(t, db, "student@example.com")
	other := createTestStudent(t, db, "other@example.com")
	first := createTestListing(t, db, landlord.ID, models.ListingApproved)
	second := createTestListing(t, db, landlord.ID, models.ListingApproved)
	svc := NewFavoriteService(db)

	_, err := svc.Add(student.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Add(student.ID, second.ID)
	require.NoError(t, err)
	_, err = svc.Add(other.ID, first.ID)
	require.NoError(t, err)

	favorites, err := svc.ByUser(student.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
}
