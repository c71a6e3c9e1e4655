package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/go-playground/validator/v10"
)

type FacilityForm struct {
	Name          string `form:"name" binding:"required"`
	Type          string `form:"type" binding:"required"`
	TotalCapacity int    `form:"totalCapacity" binding:"gte=0"`
	Location      string `form:"location" binding:"required"`
	// Amenities is a comma separated list.
	Amenities string `form:"amenities"`
}

func (f FacilityForm) Input() domain.FacilityInput {
	return domain.FacilityInput{
		Name:          strings.TrimSpace(f.Name),
		Type:          strings.TrimSpace(f.Type),
		TotalCapacity: f.TotalCapacity,
		Location:      strings.TrimSpace(f.Location),
		Amenities:     domain.ParseAmenities(f.Amenities),
	}
}

type VisitorForm struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required"`
	PhoneNumber string `form:"phoneNumber" binding:"required"`
}

func (f VisitorForm) Input() domain.VisitorInput {
	return domain.VisitorInput{
		Name:        strings.TrimSpace(f.Name),
		Email:       strings.TrimSpace(f.Email),
		PhoneNumber: strings.TrimSpace(f.PhoneNumber),
	}
}

type BookingForm struct {
	FacilityID      string `form:"facilityId" binding:"required"`
	VisitorID       string `form:"visitorId" binding:"required"`
	Quantity        int    `form:"quantity" binding:"required,gt=0"`
	BookingDateTime string `form:"bookingDateTime" binding:"required"`
}

func (f BookingForm) Input() domain.BookingInput {
	return domain.BookingInput{
		FacilityID:      domain.ID(f.FacilityID),
		VisitorID:       domain.ID(f.VisitorID),
		Quantity:        f.Quantity,
		BookingDateTime: f.BookingDateTime,
	}
}

// BindError converts a form binding failure into a domain.ErrValidation.
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: form contains invalid values", domain.ErrValidation)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := label(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, name+" is required")
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", name, fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", name, fe.Param()))
		default:
			msgs = append(msgs, name+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

var labels = map[string]string{
	"TotalCapacity":   "total capacity",
	"PhoneNumber":     "phone number",
	"FacilityID":      "facility",
	"VisitorID":       "visitor",
	"BookingDateTime": "booking date",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return strings.ToLower(field)
}
