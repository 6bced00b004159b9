package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weathervane/internal/service"
	"weathervane/internal/util"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	e.POST("/login", func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("username and password are required"))
		}

		token, err := auth.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
			}
			return c.JSON(http.StatusInternalServerError, util.Error("could not complete login"))
		}

		return c.JSON(http.StatusOK, util.Envelope{
			"message": "Login successful",
			"token":   token,
		})
	})
}
