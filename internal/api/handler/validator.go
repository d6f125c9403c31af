package handler

import (
	"github.com/manicuristapro/salon-system/internal/pkg/validation"
)

// echoValidator lets Echo call c.Validate(req) with the shared salon validator.
type echoValidator struct{}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface. Failures wrap domain.ErrValidation.
func (ev *echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
