package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"weathervane/internal/domain"
	"weathervane/internal/repository/ports"
)

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrLocationConflict  = errors.New("location already exists or integrity error occurred")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrCityRequired      = errors.New("city is required")
)

// CoordinateError names the out-of-range field and the offending value.
type CoordinateError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid %s: %v. Must be between %v and %v.", e.Field, e.Value, e.Min, e.Max)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// WeatherGateway is the outbound contract the catalog uses to fetch provider
// data for a location's coordinates.
type WeatherGateway interface {
	Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error)
	AirQuality(ctx context.Context, lat, lon float64) (*domain.AirQuality, error)
	Historical(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

type LocationService struct {
	locations ports.LocationRepository
	weather   WeatherGateway
	log       *zap.SugaredLogger
}

func NewLocationService(locations ports.LocationRepository, weather WeatherGateway, log *zap.SugaredLogger) *LocationService {
	return &LocationService{locations: locations, weather: weather, log: log}
}

func validateCoordinates(latitude, longitude float64) error {
	// Negated range form so NaN fails both checks.
	if !(latitude >= -90 && latitude <= 90) {
		return &CoordinateError{Field: "latitude", Value: latitude, Min: -90, Max: 90}
	}
	if !(longitude >= -180 && longitude <= 180) {
		return &CoordinateError{Field: "longitude", Value: longitude, Min: -180, Max: 180}
	}
	return nil
}

func (s *LocationService) Create(ctx context.Context, city string, latitude, longitude float64) (*domain.Location, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrCityRequired
	}
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	location, err := s.locations.Create(ctx, city, latitude, longitude)
	if err != nil {
		if isIntegrityViolation(err) {
			return nil, ErrLocationConflict
		}
		return nil, err
	}
	s.log.Infow("location created", "id", location.ID, "city", location.City)
	return location, nil
}

func (s *LocationService) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	location, err := s.locations.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return location, nil
}

// List returns every location in primary-key order, which matches insertion
// order.
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *LocationService) Delete(ctx context.Context, id int64) error {
	if err := s.locations.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrLocationNotFound
		}
		return err
	}
	s.log.Infow("location deleted", "id", id)
	return nil
}

func (s *LocationService) Forecast(ctx context.Context, location *domain.Location) (json.RawMessage, error) {
	return s.weather.Forecast(ctx, location.Latitude, location.Longitude)
}

func (s *LocationService) AirQuality(ctx context.Context, location *domain.Location) (*domain.AirQuality, error) {
	return s.weather.AirQuality(ctx, location.Latitude, location.Longitude)
}

func (s *LocationService) Historical(ctx context.Context, location *domain.Location) (json.RawMessage, error) {
	return s.weather.Historical(ctx, location.Latitude, location.Longitude)
}
