package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// GeocodingService resolves free-text addresses against Nominatim
// (OpenStreetMap). Listings store coordinates resolved here; the search core
// itself never calls out.
type GeocodingService struct {
	baseURL    string
	httpClient *http.Client
}

func NewGeocodingService(baseURL string) *GeocodingService {
	return &GeocodingService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocationSuggestion struct {
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
	Importance  float64 `json:"importance"`
}

// Geocode resolves an address to coordinates. Returns nil when the address
// resolves to nothing.
func (s *GeocodingService) Geocode(address string) (*Coordinates, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}

	results, err := s.search(address, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &Coordinates{Latitude: results[0].Latitude, Longitude: results[0].Longitude}, nil
}

// SearchLocations returns up to five suggestions for a partial query.
// Queries under three characters return nothing, matching Nominatim's usage
// guidance.
func (s *GeocodingService) SearchLocations(query string) ([]LocationSuggestion, error) {
	if len(query) < 3 {
		return []LocationSuggestion{}, nil
	}
	return s.search(query, 5)
}

func (s *GeocodingService) search(query string, limit int) ([]LocationSuggestion, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&limit=%d",
		s.baseURL, url.QueryEscape(query), limit)

	resp, err := s.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var raw []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %v", err)
	}

	suggestions := make([]LocationSuggestion, 0, len(raw))
	for _, r := range raw {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		suggestions = append(suggestions, LocationSuggestion{
			DisplayName: r.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
			Type:        r.Type,
			Importance:  r.Importance,
		})
	}
	return suggestions, nil
}

// ReverseGeocode resolves coordinates to a display address, or "" when
// nothing is found.
func (s *GeocodingService) ReverseGeocode(lat, lon float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", s.baseURL, lat, lon)

	resp, err := s.httpClient.Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding request failed with status %d", resp.StatusCode)
	}

	var result nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocoding response: %v", err)
	}
	return result.DisplayName, nil
}
