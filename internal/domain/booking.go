package domain

// BookingDateTimeLayout is the layout of a datetime-local form value.
const BookingDateTimeLayout = "2006-01-02T15:04"

type Booking struct {
	ID              ID     `json:"id,omitempty"`
	FacilityID      ID     `json:"facilityId"`
	VisitorID       ID     `json:"visitorId"`
	Quantity        int    `json:"quantity"`
	BookingDateTime string `json:"bookingDateTime"`

	// Populated only in enriched views.
	Facility *Facility `json:"facility,omitempty"`
	Visitor  *Visitor  `json:"visitor,omitempty"`
}

func (b Booking) EntityID() ID { return b.ID }

// WithEntityID returns a copy carrying id.
func (b Booking) WithEntityID(id ID) Booking {
	b.ID = id
	return b
}

func (b Booking) Input() BookingInput {
	return BookingInput{
		FacilityID:      b.FacilityID,
		VisitorID:       b.VisitorID,
		Quantity:        b.Quantity,
		BookingDateTime: b.BookingDateTime,
	}
}

type BookingInput struct {
	FacilityID      ID     `validate:"required"`
	VisitorID       ID     `validate:"required"`
	Quantity        int    `validate:"gt=0"`
	BookingDateTime string `validate:"required"`
}

func (in BookingInput) Record(id ID) Booking {
	return Booking{
		ID:              id,
		FacilityID:      in.FacilityID,
		VisitorID:       in.VisitorID,
		Quantity:        in.Quantity,
		BookingDateTime: in.BookingDateTime,
	}
}

// EnrichBookings returns copies of bookings with the referenced facility and
// visitor attached. Unknown references are left nil.
func EnrichBookings(bookings []Booking, facilities []Facility, visitors []Visitor) []Booking {
	fByID := make(map[ID]Facility, len(facilities))
	for _, f := range facilities {
		fByID[f.ID] = f
	}
	vByID := make(map[ID]Visitor, len(visitors))
	for _, v := range visitors {
		vByID[v.ID] = v
	}

	res := make([]Booking, len(bookings))
	for i, b := range bookings {
		if f, ok := fByID[b.FacilityID]; ok {
			b.Facility = &f
		}
		if v, ok := vByID[b.VisitorID]; ok {
			b.Visitor = &v
		}
		res[i] = b
	}
	return res
}

// Catalog is what a booking form needs to offer as choices.
type Catalog struct {
	Facilities []Facility
	Visitors   []Visitor
}
