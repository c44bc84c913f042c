package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/primeacres/realty/internal/httperr"
	"github.com/primeacres/realty/internal/models"
	"github.com/primeacres/realty/internal/storage"
)

type PropertyHandler struct {
	DB    *gorm.DB
	Store *storage.Store
}

type createPropertyForm struct {
	Title       string   `form:"title"       validate:"required"`
	Description string   `form:"description" validate:"required"`
	City        string   `form:"city"        validate:"required"`
	Price       string   `form:"price"`
	Categories  []string `form:"categories"  validate:"omitempty,dive,category"`
	Featured    string   `form:"featured"`
	Status      string   `form:"status"      validate:"omitempty,property_status"`
}

type updatePropertyForm struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	City        string   `form:"city"`
	Price       string   `form:"price"`
	Categories  []string `form:"categories" validate:"omitempty,dive,category"`
	Featured    string   `form:"featured"`
	Status      string   `form:"status"     validate:"omitempty,property_status"`
}

// List returns every matching property, newest first. Filters combine with
// AND; an absent filter imposes no constraint.
func (h *PropertyHandler) List(c echo.Context) error {
	q := h.DB.Model(&models.Property{})

	if category := c.QueryParam("category"); category != "" {
		if !models.ValidCategory(category) {
			return httperr.Validation("unknown category: " + category)
		}
		// Categories are stored as a JSON list, so membership is a match
		// on the quoted element.
		quoted, _ := json.Marshal(category)
		q = q.Where("categories LIKE ?", "%"+string(quoted)+"%")
	}
	if city := c.QueryParam("city"); city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	if f := c.QueryParam("featured"); f != "" {
		featured, err := strconv.ParseBool(f)
		if err != nil {
			return httperr.Validation("featured must be a boolean")
		}
		q = q.Where("featured = ?", featured)
	}

	properties := []models.Property{}
	if err := q.Order("created_at DESC, id DESC").Find(&properties).Error; err != nil {
		return httperr.Server(err)
	}
	return c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	property, httpErr := h.find(c.Param("id"))
	if httpErr != nil {
		return httpErr
	}
	return c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyForm
	if err := c.Bind(&req); err != nil {
		return httperr.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	featured, httpErr := parseFeatured(req.Featured)
	if httpErr != nil {
		return httpErr
	}

	files := imageFiles(c)
	if len(files) > storage.MaxImages {
		return httperr.Validation("at most 10 images per property")
	}
	images, err := h.Store.SaveImages(files)
	if err != nil {
		return httperr.Storage(err)
	}

	property := models.Property{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Price:       req.Price,
		Categories:  normalizeList(req.Categories),
		Images:      models.StringList(images),
		Featured:    featured,
		Status:      req.Status,
	}
	if property.Price == "" {
		property.Price = models.DefaultPrice
	}
	if property.Status == "" {
		property.Status = models.StatusAvailable
	}

	if err := h.DB.Create(&property).Error; err != nil {
		h.Store.Remove(images...)
		return httperr.Server(err)
	}
	return c.JSON(http.StatusCreated, property)
}

// Update replaces the supplied scalar fields. The image list is replaced
// wholesale only when new files arrive, in which case the files it used to
// reference are unlinked after the record is saved.
func (h *PropertyHandler) Update(c echo.Context) error {
	property, httpErr := h.find(c.Param("id"))
	if httpErr != nil {
		return httpErr
	}

	var req updatePropertyForm
	if err := c.Bind(&req); err != nil {
		return httperr.Validation("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Title != "" {
		property.Title = req.Title
	}
	if req.Description != "" {
		property.Description = req.Description
	}
	if req.City != "" {
		property.City = req.City
	}
	if req.Price != "" {
		property.Price = req.Price
	}
	if req.Categories != nil {
		property.Categories = normalizeList(req.Categories)
	}
	if req.Status != "" {
		property.Status = req.Status
	}
	if req.Featured != "" {
		featured, httpErr := parseFeatured(req.Featured)
		if httpErr != nil {
			return httpErr
		}
		property.Featured = featured
	}

	var replaced models.StringList
	files := imageFiles(c)
	if len(files) > 0 {
		if len(files) > storage.MaxImages {
			return httperr.Validation("at most 10 images per property")
		}
		images, err := h.Store.SaveImages(files)
		if err != nil {
			return httperr.Storage(err)
		}
		replaced = property.Images
		property.Images = models.StringList(images)
	}

	if err := h.DB.Save(property).Error; err != nil {
		return httperr.Server(err)
	}
	h.Store.Remove(replaced...)

	return c.JSON(http.StatusOK, property)
}

// Delete removes the record and unlinks its stored images.
func (h *PropertyHandler) Delete(c echo.Context) error {
	property, httpErr := h.find(c.Param("id"))
	if httpErr != nil {
		return httpErr
	}

	if err := h.DB.Delete(property).Error; err != nil {
		return httperr.Server(err)
	}
	h.Store.Remove(property.Images...)

	return c.JSON(http.StatusOK, echo.Map{"message": "Property deleted successfully"})
}

// find treats a malformed id the same as an unknown one.
func (h *PropertyHandler) find(idParam string) (*models.Property, *echo.HTTPError) {
	id, err := strconv.Atoi(idParam)
	if err != nil || id < 1 {
		return nil, httperr.NotFound("Property not found")
	}
	var property models.Property
	if err := h.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Property not found")
		}
		return nil, httperr.Server(err)
	}
	return &property, nil
}

func parseFeatured(raw string) (bool, *echo.HTTPError) {
	if raw == "" {
		return false, nil
	}
	featured, err := strconv.ParseBool(raw)
	if err != nil {
		return false, httperr.Validation("featured must be a boolean")
	}
	return featured, nil
}

func normalizeList(values []string) models.StringList {
	if values == nil {
		return models.StringList{}
	}
	return models.StringList(values)
}

func imageFiles(c echo.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
