package auth

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/primeacres/realty/internal/httperr"
	"github.com/primeacres/realty/internal/service/token"
)

const (
	ContextAdminID       = "adminID"
	ContextAdminUsername = "adminUsername"
)

// RequireAdmin guards mutating routes. Authorization is binary: a valid
// admin token or nothing.
func RequireAdmin(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningMethod: "HS256",
		SigningKey:    secret,
		ContextKey:    "admin",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(token.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return httperr.MissingToken()
			}
			return httperr.InvalidOrExpiredToken()
		},
		SuccessHandler: func(c echo.Context) {
			if t, ok := c.Get("admin").(*jwt.Token); ok {
				if claims, ok := t.Claims.(*token.Claims); ok {
					c.Set(ContextAdminID, claims.AdminID)
					c.Set(ContextAdminUsername, claims.Username)
				}
			}
		},
	})
}
