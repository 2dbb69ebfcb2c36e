package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/boardinghouse/rental-backend/internal/geo"
	"github.com/boardinghouse/rental-backend/internal/models"
	"gorm.io/gorm"
)

type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ListingService{db: db}
}

type ListingRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	ImageList     []string `json:"image_list"`
	Location      string   `json:"location"`
	NearbySchools string   `json:"nearby_schools"`
	Distance      string   `json:"distance"`
	RoomType      string   `json:"room_type"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Amenities     []string `json:"amenities"`
	Website       string   `json:"website"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// Search returns approved listings, optionally narrowed to those whose
// location contains q case-insensitively. A blank q means no filter.
func (s *ListingService) Search(q string) ([]models.Listing, error) {
	query := s.db.Where("status = ?", models.ListingApproved)

	q = strings.TrimSpace(q)
	if q != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var listings []models.Listing
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to search listings: %v", err)
	}
	return listings, nil
}

// FilterByRadius keeps listings within radiusKm of (lat, lon). Listings
// without coordinates are dropped. Composed after Search, never a query path
// of its own.
func (s *ListingService) FilterByRadius(listings []models.Listing, lat, lon, radiusKm float64) []models.Listing {
	filtered := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if !listing.HasCoordinates() {
			continue
		}
		if geo.DistanceKm(lat, lon, *listing.Latitude, *listing.Longitude) <= radiusKm {
			filtered = append(filtered, listing)
		}
	}
	return filtered
}

// GetVisible is the public read path: only approved listings are visible.
func (s *ListingService) GetVisible(id uint) (*models.Listing, error) {
	listing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingApproved {
		return nil, fmt.Errorf("%w: listing %d is not approved", ErrNotVisible, id)
	}
	return listing, nil
}

// GetByID is the privileged read path used by owners and admins; it returns
// listings in any status.
func (s *ListingService) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch listing: %v", err)
	}
	return &listing, nil
}

func (s *ListingService) GetAll() ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.db.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %v", err)
	}
	return listings, nil
}

func (s *ListingService) GetByLandlord(landlordID uint) ([]models.Listing, error) {
	var listings []models.Listing
	if err := s.db.Where("landlord_id = ?", landlordID).Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch landlord listings: %v", err)
	}
	return listings, nil
}

// Create stores a new listing owned by the landlord. New listings always
// start PENDING and become visible only through moderation.
func (s *ListingService) Create(req ListingRequest, landlordID uint) (*models.Listing, error) {
	listing := models.Listing{
		Title:         req.Title,
		Description:   req.Description,
		Image:         req.Image,
		ImageList:     req.ImageList,
		Location:      req.Location,
		NearbySchools: req.NearbySchools,
		Distance:      req.Distance,
		RoomType:      req.RoomType,
		Price:         req.Price,
		Amenities:     req.Amenities,
		Website:       req.Website,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Status:        models.ListingPending,
		LandlordID:    landlordID,
	}

	if err := s.db.Create(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %v", err)
	}
	return &listing, nil
}

// Update overwrites the editable fields. Editing a rejected listing is an
// automatic re-submission: status goes back to PENDING and the rejection
// notes are cleared. Other statuses are left untouched.
func (s *ListingService) Update(id uint, req ListingRequest) (*models.Listing, error) {
	listing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	listing.Title = req.Title
	listing.Description = req.Description
	listing.Image = req.Image
	if req.ImageList != nil {
		listing.ImageList = req.ImageList
	}
	listing.Location = req.Location
	listing.NearbySchools = req.NearbySchools
	listing.Distance = req.Distance
	listing.RoomType = req.RoomType
	listing.Price = req.Price
	if req.Amenities != nil {
		listing.Amenities = req.Amenities
	}
	listing.Website = req.Website
	listing.Latitude = req.Latitude
	listing.Longitude = req.Longitude

	if listing.Status == models.ListingRejected {
		listing.Status = models.ListingPending
		listing.RejectionNotes = ""
	}

	if err := s.db.Save(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %v", err)
	}
	return listing, nil
}

func (s *ListingService) Delete(id uint) error {
	result := s.db.Delete(&models.Listing{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete listing: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: listing %d", ErrNotFound, id)
	}
	return nil
}

// IncrementViews bumps the view counter with a single UPDATE expression so
// concurrent viewers never lose updates.
func (s *ListingService) IncrementViews(id uint) (*models.Listing, error) {
	result := s.db.Model(&models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to increment view count: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: listing %d", ErrNotFound, id)
	}
	return s.GetByID(id)
}

// TotalViewsByLandlord sums view counts across a landlord's listings at the
// database.
func (s *ListingService) TotalViewsByLandlord(landlordID uint) (int, error) {
	var total int64
	err := s.db.Model(&models.Listing{}).
		Where("landlord_id = ?", landlordID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum view counts: %v", err)
	}
	return int(total), nil
}
