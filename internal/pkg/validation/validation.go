// Package validation wraps go-playground/validator with the salon-specific
// tags and turns field errors into readable messages.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/manicuristapro/salon-system/internal/core/domain"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get returns the shared validator with custom tags registered:
//
//	clock    : a 24-hour "HH:MM" time of day
//	status   : one of the canonical appointment statuses
//	notblank : not only whitespace
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseClock(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
			return domain.AppointmentStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		instance = v
	})
	return instance
}

// Struct validates s and returns an error wrapping domain.ErrValidation with
// one message per failing field.
func Struct(s any) error {
	if err := Get().Struct(s); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "clock":
		return field + " must be a time in HH:MM format"
	case "status":
		return fmt.Sprintf("%s must be one of: %s", field, statusList())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func statusList() string {
	names := make([]string, 0, 4)
	for _, s := range domain.Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, " ")
}
