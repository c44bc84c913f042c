package httperr

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	CodeInvalidCredentials    = "InvalidCredentials"
	CodeMissingToken          = "MissingToken"
	CodeInvalidOrExpiredToken = "InvalidOrExpiredToken"
	CodeNotFound              = "NotFound"
	CodeValidation            = "ValidationError"
	CodeStorage               = "StorageError"
	CodeServer                = "ServerError"
)

// Body is the JSON shape every error response carries.
type Body struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func New(status int, code, message string) *echo.HTTPError {
	return echo.NewHTTPError(status, Body{Error: code, Message: message})
}

func InvalidCredentials() *echo.HTTPError {
	return New(http.StatusBadRequest, CodeInvalidCredentials, "invalid credentials")
}

func MissingToken() *echo.HTTPError {
	return New(http.StatusUnauthorized, CodeMissingToken, "authorization header missing")
}

func InvalidOrExpiredToken() *echo.HTTPError {
	return New(http.StatusUnauthorized, CodeInvalidOrExpiredToken, "invalid or expired token")
}

func NotFound(message string) *echo.HTTPError {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Validation(message string) *echo.HTTPError {
	return New(http.StatusBadRequest, CodeValidation, message)
}

func Storage(err error) *echo.HTTPError {
	return New(http.StatusInternalServerError, CodeStorage, err.Error())
}

func Server(err error) *echo.HTTPError {
	return New(http.StatusInternalServerError, CodeServer, err.Error())
}
