package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"weathervane/internal/domain"
	"weathervane/internal/service"
	"weathervane/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
	locations *service.LocationService
}

type addFavoriteRequest struct {
	UserID     *int64 `json:"user_id" validate:"required"`
	LocationID *int64 `json:"location_id" validate:"required"`
}

func RegisterFavorites(e *echo.Echo, favorites *service.FavoriteService, locations *service.LocationService) {
	handler := &FavoriteHandler{favorites: favorites, locations: locations}

	e.POST("/api/add-favorite", handler.addFavorite)
	e.GET("/api/get-favorites/:user_id", handler.getFavorites)
	e.DELETE("/api/remove-favorite/:user_id/:location_id", handler.removeFavorite)
}

func (h *FavoriteHandler) addFavorite(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user_id and location_id are required"))
	}

	if err := h.favorites.Add(c.Request().Context(), *req.UserID, *req.LocationID); err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteExists):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not add favorite"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":  "success",
		"message": "Favorite added successfully",
	})
}

func (h *FavoriteHandler) getFavorites(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user id must be an integer"))
	}

	ids, err := h.favorites.ListByUser(c.Request().Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFavorites):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not retrieve favorites"))
		}
	}

	locations := make([]*domain.Location, 0, len(ids))
	for _, id := range ids {
		location, err := h.locations.GetByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrLocationNotFound) {
				return c.JSON(http.StatusNotFound, util.Error(err.Error()))
			}
			return c.JSON(http.StatusInternalServerError, util.Error("could not retrieve favorites"))
		}
		locations = append(locations, location)
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":    "success",
		"favorites": locations,
	})
}

func (h *FavoriteHandler) removeFavorite(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("user id must be an integer"))
	}
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("location id must be an integer"))
	}

	if err := h.favorites.Remove(c.Request().Context(), userID, locationID); err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not remove favorite"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":  "success",
		"message": "Favorite removed successfully",
	})
}
