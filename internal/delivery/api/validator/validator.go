package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// customValidator adapts go-playground/validator to echo.Validator.
type customValidator struct {
	validate *validator.Validate
}

// New returns the echo validator used by every handler.
func New() echo.Validator {
	return &customValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (cv *customValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
