// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can validate bound request DTOs by struct tag.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a single validator instance; it is safe for
// concurrent use and caches struct metadata.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator adapter.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
