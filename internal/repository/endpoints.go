package repository

import (
	"context"
	"net/url"
	"strings"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
)

// API is the transport every repository goes through.
type API interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Endpoints describes where one entity lives on the booking API. Paths are
// relative to the API base URL; "{id}" is replaced with the escaped id.
type Endpoints struct {
	List   string
	Get    string
	Create string
	Update string
}

// The booking API does not use one naming scheme for all entities; these
// tables record what it actually serves.
var (
	FacilityEndpoints = Endpoints{
		List:   "Facility/GetAll",
		Get:    "Facility/GetById/{id}",
		Create: "facility",
		Update: "facility/{id}",
	}
	VisitorEndpoints = Endpoints{
		List:   "Visitor/GetAll",
		Get:    "Visitor/GetById/{id}",
		Create: "Visitor/Create",
		Update: "Visitor/Update",
	}
	BookingEndpoints = Endpoints{
		List:   "Booking/GetAll",
		Get:    "Booking/GetById/{id}",
		Create: "Booking/Create",
		Update: "Booking/Update",
	}
)

func expand(path string, id domain.ID) string {
	return strings.ReplaceAll(path, "{id}", url.PathEscape(string(id)))
}
