package database

import (
	"errors"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/boardinghouse/rental-backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Init(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate schemas
	err = db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Rating{},
		&models.Inquiry{},
		&models.Favorite{},
		&models.RefreshToken{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// SeedAdmin creates the default admin account when none exists. Admin
// registration over the API is blocked, so this is the only way an admin
// comes into being.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if password == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := db.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		Password:     password,
		Role:         models.RoleAdmin,
		AuthProvider: models.AuthProviderLocal,
		IsActive:     true,
		Department:   "Operations",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Seeded default admin account: " + email)
	return nil
}
