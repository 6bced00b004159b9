package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"weathervane/internal/service"
	"weathervane/internal/util"
	"weathervane/internal/weather"
)

type LocationHandler struct {
	locations *service.LocationService
}

type createLocationRequest struct {
	City      string   `json:"city" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func RegisterLocations(e *echo.Echo, locations *service.LocationService) {
	handler := &LocationHandler{locations: locations}

	e.POST("/api/create-location", handler.createLocation)
	e.GET("/api/get-location/:id", handler.getLocation)
	e.GET("/api/get-all-locations", handler.getAllLocations)
	e.DELETE("/api/delete-location/:id", handler.deleteLocation)
	e.GET("/api/get-weather/:id", handler.getWeather)
	e.GET("/api/get-air-quality/:id", handler.getAirQuality)
	e.GET("/api/get-historical/:id", handler.getHistorical)
}

func parseLocationID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *LocationHandler) createLocation(c echo.Context) error {
	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("city, latitude, and longitude are required"))
	}

	location, err := h.locations.Create(c.Request().Context(), req.City, *req.Latitude, *req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCoordinate),
			errors.Is(err, service.ErrCityRequired),
			errors.Is(err, service.ErrLocationConflict):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not create location"))
		}
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"status":   "success",
		"location": location,
	})
}

func (h *LocationHandler) getLocation(c echo.Context) error {
	id, err := parseLocationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("location id must be an integer"))
	}

	location, err := h.locations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not retrieve location"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":   "success",
		"location": location,
	})
}

func (h *LocationHandler) getAllLocations(c echo.Context) error {
	locations, err := h.locations.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not retrieve locations"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":    "success",
		"locations": locations,
	})
}

func (h *LocationHandler) deleteLocation(c echo.Context) error {
	id, err := parseLocationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("location id must be an integer"))
	}

	if err := h.locations.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not delete location"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status": "success",
		"id":     id,
	})
}

func (h *LocationHandler) getWeather(c echo.Context) error {
	id, err := parseLocationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("location id must be an integer"))
	}

	location, err := h.locations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not retrieve location"))
	}

	forecast, err := h.locations.Forecast(c.Request().Context(), location)
	if err != nil {
		return upstreamError(c, err, "could not fetch forecast")
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":   "success",
		"forecast": forecast,
	})
}

func (h *LocationHandler) getAirQuality(c echo.Context) error {
	id, err := parseLocationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("location id must be an integer"))
	}

	location, err := h.locations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not retrieve location"))
	}

	airQuality, err := h.locations.AirQuality(c.Request().Context(), location)
	if err != nil {
		return upstreamError(c, err, "could not fetch air quality")
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":      "success",
		"air_quality": airQuality,
	})
}

func (h *LocationHandler) getHistorical(c echo.Context) error {
	id, err := parseLocationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("location id must be an integer"))
	}

	location, err := h.locations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not retrieve location"))
	}

	historical, err := h.locations.Historical(c.Request().Context(), location)
	if err != nil {
		return upstreamError(c, err, "could not fetch historical weather")
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":     "success",
		"historical": historical,
	})
}

func upstreamError(c echo.Context, err error, fallback string) error {
	if errors.Is(err, weather.ErrUpstream) {
		return c.JSON(http.StatusInternalServerError, util.Error(err.Error()))
	}
	return c.JSON(http.StatusInternalServerError, util.Error(fallback))
}
