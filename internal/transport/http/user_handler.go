package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weathervane/internal/service"
	"weathervane/internal/util"
)

type UserHandler struct {
	users *service.UserService
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func RegisterUsers(e *echo.Echo, users *service.UserService) {
	handler := &UserHandler{users: users}

	e.POST("/api/create-user", handler.createUser)
	e.POST("/api/update-password", handler.updatePassword)
	e.DELETE("/api/delete-user/:username", handler.deleteUser)
}

func (h *UserHandler) createUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("username and password are required"))
	}

	user, err := h.users.Create(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserInvalid), errors.Is(err, service.ErrDuplicateUser):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not create user"))
		}
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"status":   "success",
		"username": user.Username,
	})
}

func (h *UserHandler) updatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("username and password are required"))
	}

	if err := h.users.UpdatePassword(c.Request().Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrUserInvalid):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not update password"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":   "success",
		"username": req.Username,
	})
}

func (h *UserHandler) deleteUser(c echo.Context) error {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		return c.JSON(http.StatusBadRequest, util.Error("username is required"))
	}

	if err := h.users.Delete(c.Request().Context(), username); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not delete user"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"status":   "success",
		"username": username,
	})
}
