package kundali

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks field ranges and that the date exists in the Gregorian
// calendar.
func (b BirthInput) Validate() error {
	if err := validate.Struct(b); err != nil {
		return validationError(formatValidationError(err), nil)
	}
	if b.Day > daysIn(b.Year, b.Month) {
		return validationError(fmt.Sprintf("%04d-%02d-%02d is not a calendar date", b.Year, b.Month, b.Day), nil)
	}
	return nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func formatValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "lte":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, "; ")
}
