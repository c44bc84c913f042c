package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primeacres/realty/internal/httperr"
	"github.com/primeacres/realty/internal/storage"
)

type LogoHandler struct {
	Store *storage.Store
}

// Upload swaps in a new site logo, unconditionally replacing the old one.
func (h *LogoHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return httperr.Validation("no logo file uploaded")
	}

	logoURL, err := h.Store.ReplaceLogo(fh)
	if err != nil {
		return httperr.Storage(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Logo uploaded successfully",
		"logoUrl": logoURL,
	})
}

func (h *LogoHandler) Get(c echo.Context) error {
	if logoURL := h.Store.LogoURL(); logoURL != "" {
		return c.JSON(http.StatusOK, echo.Map{"logoUrl": logoURL})
	}
	return c.JSON(http.StatusOK, echo.Map{"logoUrl": nil})
}
