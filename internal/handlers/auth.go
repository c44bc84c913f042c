package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/primeacres/realty/internal/hash"
	"github.com/primeacres/realty/internal/httperr"
	"github.com/primeacres/realty/internal/models"
	"github.com/primeacres/realty/internal/service/token"
)

type AuthHandler struct {
	DB     *gorm.DB
	Tokens *token.Service
}

// Login verifies the admin credentials and returns a 24h session token.
// Unknown username and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		return httperr.Validation("invalid request body")
	}

	var admin models.Admin
	if err := h.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.InvalidCredentials()
		}
		return httperr.Server(err)
	}

	if !hash.CheckPassword(admin.PasswordHash, req.Password) {
		return httperr.InvalidCredentials()
	}

	signed, err := h.Tokens.Issue(&admin)
	if err != nil {
		return httperr.Server(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": signed,
		"admin": echo.Map{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}
