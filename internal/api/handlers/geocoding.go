package handlers

import (
	"strconv"

	"github.com/boardinghouse/rental-backend/internal/geo"
	"github.com/boardinghouse/rental-backend/internal/services"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type GeocodingHandler struct {
	geocodingService *services.GeocodingService
}

func NewGeocodingHandler(geocodingService *services.GeocodingService) *GeocodingHandler {
	return &GeocodingHandler{geocodingService: geocodingService}
}

func (h *GeocodingHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.SendValidationError(c, "address query parameter required")
		return
	}

	coords, err := h.geocodingService.Geocode(address)
	if err != nil {
		sendServiceError(c, "Geocoding failed", err)
		return
	}
	if coords == nil {
		utils.SendNotFound(c, "Address could not be resolved")
		return
	}

	utils.SendSuccess(c, "Address resolved successfully", coords)
}

func (h *GeocodingHandler) SearchLocations(c *gin.Context) {
	suggestions, err := h.geocodingService.SearchLocations(c.Query("q"))
	if err != nil {
		utils.SendInternalError(c, "Location search failed", err)
		return
	}

	utils.SendSuccess(c, "Locations retrieved successfully", suggestions)
}

func (h *GeocodingHandler) ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		utils.SendValidationError(c, "lat and lon query parameters required")
		return
	}

	address, err := h.geocodingService.ReverseGeocode(lat, lon)
	if err != nil {
		utils.SendInternalError(c, "Reverse geocoding failed", err)
		return
	}

	utils.SendSuccess(c, "Coordinates resolved successfully", gin.H{"address": address})
}

// Distance exposes the Haversine distance between two points.
func (h *GeocodingHandler) Distance(c *gin.Context) {
	lat1, err1 := strconv.ParseFloat(c.Query("lat1"), 64)
	lon1, err2 := strconv.ParseFloat(c.Query("lon1"), 64)
	lat2, err3 := strconv.ParseFloat(c.Query("lat2"), 64)
	lon2, err4 := strconv.ParseFloat(c.Query("lon2"), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		utils.SendValidationError(c, "lat1, lon1, lat2 and lon2 query parameters required")
		return
	}

	utils.SendSuccess(c, "Distance computed", gin.H{
		"distance_km": geo.DistanceKm(lat1, lon1, lat2, lon2),
	})
}
