package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/primeacres/realty/internal/handlers"
	"github.com/primeacres/realty/internal/middleware/auth"
)

type Deps struct {
	DB              *gorm.DB
	AuthHandler     *handlers.AuthHandler
	PropertyHandler *handlers.PropertyHandler
	LogoHandler     *handlers.LogoHandler
	JWTSecret       []byte
	UploadDir       string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.Static("/uploads", d.UploadDir)

	e.POST("/auth/login", d.AuthHandler.Login)

	guard := auth.RequireAdmin(d.JWTSecret)

	property := e.Group("/property")
	property.GET("", d.PropertyHandler.List)
	property.GET("/:id", d.PropertyHandler.Get)
	property.POST("/add", d.PropertyHandler.Create, guard)
	property.PUT("/:id", d.PropertyHandler.Update, guard)
	property.DELETE("/:id", d.PropertyHandler.Delete, guard)

	admin := e.Group("/admin")
	admin.GET("/logo", d.LogoHandler.Get)
	admin.POST("/upload-logo", d.LogoHandler.Upload, guard)
}
