package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldName(fe)))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fieldName(fe), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fieldName(fe), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fieldName(fe)))
		}
	}

	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

// fieldName turns "TotalCapacity" into "total capacity" and "VisitorID"
// into "visitor id".
func fieldName(fe validator.FieldError) string {
	name := []rune(fe.Field())
	var b strings.Builder
	for i, r := range name {
		if i > 0 && isUpper(r) && !isUpper(name[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
