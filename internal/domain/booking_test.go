package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichBookings(t *testing.T) {
	bookings := []Booking{
		{ID: "b1", FacilityID: "f1", VisitorID: "v1", Quantity: 2},
		{ID: "b2", FacilityID: "missing", VisitorID: "v1", Quantity: 1},
	}
	facilities := []Facility{{ID: "f1", Name: "Gym"}}
	visitors := []Visitor{{ID: "v1", Name: "Alice"}}

	res := EnrichBookings(bookings, facilities, visitors)

	require.Len(t, res, 2)
	require.NotNil(t, res[0].Facility)
	assert.Equal(t, "Gym", res[0].Facility.Name)
	assert.Equal(t, "Alice", res[0].Visitor.Name)
	assert.Nil(t, res[1].Facility)
	assert.NotNil(t, res[1].Visitor)

	assert.Nil(t, bookings[0].Facility, "input must not be modified")
}

func TestBooking_InputRoundTrip(t *testing.T) {
	b := Booking{ID: "b1", FacilityID: "f1", VisitorID: "v1", Quantity: 3, BookingDateTime: "2026-10-19T09:30"}
	assert.Equal(t, Booking{ID: "b1", FacilityID: "f1", VisitorID: "v1", Quantity: 3, BookingDateTime: "2026-10-19T09:30"}, b.Input().Record("b1"))
}
