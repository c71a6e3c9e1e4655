package domain

import "strings"

type Facility struct {
	ID            ID       `json:"id,omitempty"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	TotalCapacity int      `json:"totalCapacity"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
}

func (f Facility) EntityID() ID { return f.ID }

// WithEntityID returns a copy carrying id.
func (f Facility) WithEntityID(id ID) Facility {
	f.ID = id
	return f
}

func (f Facility) Input() FacilityInput {
	return FacilityInput{
		Name:          f.Name,
		Type:          f.Type,
		TotalCapacity: f.TotalCapacity,
		Location:      f.Location,
		Amenities:     append([]string(nil), f.Amenities...),
	}
}

type FacilityInput struct {
	Name          string   `validate:"required"`
	Type          string   `validate:"required"`
	TotalCapacity int      `validate:"gte=0"`
	Location      string   `validate:"required"`
	Amenities     []string `validate:"omitempty,dive,required"`
}

func (in FacilityInput) Record(id ID) Facility {
	amenities := in.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return Facility{
		ID:            id,
		Name:          in.Name,
		Type:          in.Type,
		TotalCapacity: in.TotalCapacity,
		Location:      in.Location,
		Amenities:     amenities,
	}
}

// FormatAmenities renders amenities the way the editor shows them.
func FormatAmenities(amenities []string) string {
	return strings.Join(amenities, ", ")
}

// ParseAmenities is the inverse of FormatAmenities. Names containing a comma
// do not survive the round trip.
func ParseAmenities(text string) []string {
	parts := strings.Split(text, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
