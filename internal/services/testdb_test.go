package services

import (
	"testing"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the full schema. A
// single connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Rating{},
		&models.Inquiry{},
		&models.Favorite{},
		&models.RefreshToken{},
	)
	require.NoError(t, err)

	return db
}

func createTestLandlord(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	landlord := &models.User{
		Name:     "Test Landlord",
		Email:    email,
		Password: "password123",
		Role:     models.RoleLandlord,
		IsActive: true,
	}
	require.NoError(t, db.Create(landlord).Error)
	return landlord
}

func createTestStudent(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	student := &models.User{
		Name:     "Test Student",
		Email:    email,
		Password: "password123",
		Role:     models.RoleStudent,
		IsActive: true,
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func createTestListing(t *testing.T, db *gorm.DB, landlordID uint, status models.ListingStatus) *models.Listing {
	t.Helper()
	listing := &models.Listing{
		Title:      "Cozy room near campus",
		Location:   "Kamuning, Quezon City",
		Price:      4500,
		RoomType:   "single",
		Status:     status,
		LandlordID: landlordID,
	}
	require.NoError(t, db.Create(listing).Error)
	return listing
}
