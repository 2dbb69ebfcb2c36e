package routes

import (
	"github.com/boardinghouse/rental-backend/internal/api/handlers"
	"github.com/boardinghouse/rental-backend/internal/api/middleware"
	"github.com/boardinghouse/rental-backend/internal/config"
	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg))

	// Initialize services
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.GoogleClientID, emailService)
	listingService := services.NewListingService(db)
	ratingService := services.NewRatingService(db)
	inquiryService := services.NewInquiryService(db, emailService)
	favoriteService := services.NewFavoriteService(db)
	adminService := services.NewAdminService(db, emailService)
	geocodingService := services.NewGeocodingService(cfg.NominatimURL)

	var s3Service *services.S3Service
	if cfg.AWSBucket != "" {
		s3Service = services.NewS3Service(cfg.AWSRegion, cfg.AWSBucket, cfg.AWSAccessKey, cfg.AWSSecretKey)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	listingHandler := handlers.NewListingHandler(listingService, ratingService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	landlordHandler := handlers.NewLandlordHandler(listingService, s3Service)
	adminHandler := handlers.NewAdminHandler(adminService, listingService)
	geocodingHandler := handlers.NewGeocodingHandler(geocodingService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	api := router.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/google", authHandler.GoogleLogin)
		auth.POST("/refresh-token", authHandler.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(cfg), authHandler.Logout)
		auth.GET("/profile", middleware.AuthMiddleware(cfg), authHandler.GetProfile)
		auth.PUT("/profile", middleware.AuthMiddleware(cfg), authHandler.UpdateProfile)
	}

	// Student routes: public listing reads plus authenticated student actions
	student := api.Group("/student")
	{
		student.GET("/listings", listingHandler.GetListings)
		student.GET("/listing/:id", listingHandler.GetListing)
		student.POST("/listing/:id/view", listingHandler.IncrementView)
		student.GET("/listing/:id/ratings", listingHandler.GetListingRatings)

		authed := student.Group("", middleware.AuthMiddleware(cfg), middleware.StudentOnly())
		{
			authed.POST("/inquiry", inquiryHandler.CreateInquiry)
			authed.GET("/inquiries", inquiryHandler.GetMyInquiries)
			authed.POST("/rating", ratingHandler.CreateOrUpdateRating)
			authed.GET("/rating/:listing_id", ratingHandler.GetMyRating)
			authed.POST("/favorite", favoriteHandler.AddFavorite)
			authed.DELETE("/favorite/:listing_id", favoriteHandler.RemoveFavorite)
			authed.GET("/favorite/:listing_id", favoriteHandler.IsFavorite)
			authed.GET("/favorites", favoriteHandler.GetFavorites)
		}
	}

	// Landlord routes
	landlord := api.Group("/landlord", middleware.AuthMiddleware(cfg), middleware.LandlordOnly())
	{
		landlord.POST("/listing", landlordHandler.CreateListing)
		landlord.GET("/listings", landlordHandler.GetMyListings)
		landlord.GET("/listing/:id", landlordHandler.GetListing)
		landlord.PUT("/listing/:id", landlordHandler.UpdateListing)
		landlord.DELETE("/listing/:id", landlordHandler.DeleteListing)
		landlord.POST("/listing/:id/images", landlordHandler.UploadListingImage)
		landlord.GET("/inquiries", inquiryHandler.GetLandlordInquiries)
		landlord.PUT("/inquiry/:id/status", inquiryHandler.UpdateInquiryStatus)
		landlord.PUT("/inquiry/:id/reply", inquiryHandler.ReplyToInquiry)
		landlord.GET("/stats/views", landlordHandler.GetTotalViews)
	}

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	{
		admin.GET("/dashboard", adminHandler.GetDashboard)
		admin.GET("/users", adminHandler.GetAllUsers)
		admin.PUT("/user/:id", adminHandler.UpdateUser)
		admin.DELETE("/user/:id", adminHandler.DeleteUser)
		admin.GET("/listings", adminHandler.GetAllListings)
		admin.PUT("/listing/:id/approve", adminHandler.ApproveListing)
		admin.PUT("/listing/:id/reject", adminHandler.RejectListing)
	}

	// Geocoding routes
	geocoding := api.Group("/geocoding")
	{
		geocoding.GET("/geocode", geocodingHandler.Geocode)
		geocoding.GET("/search", geocodingHandler.SearchLocations)
		geocoding.GET("/reverse", geocodingHandler.ReverseGeocode)
		geocoding.GET("/distance", geocodingHandler.Distance)
	}

	logger.Info("Routes initialized successfully")
}
