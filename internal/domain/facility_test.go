package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmenities_RoundTrip(t *testing.T) {
	amenities := []string{"Wifi", "Pool"}

	text := FormatAmenities(amenities)
	assert.Equal(t, "Wifi, Pool", text)
	assert.Equal(t, amenities, ParseAmenities(text))
}

func TestParseAmenities_TrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"Wifi", "Projector"}, ParseAmenities("  Wifi ,, Projector ,"))
	assert.Empty(t, ParseAmenities(""))
	assert.Empty(t, ParseAmenities(" , "))
}

func TestParseAmenities_CommaInNameIsLossy(t *testing.T) {
	text := FormatAmenities([]string{"Tea, coffee"})
	assert.Equal(t, []string{"Tea", "coffee"}, ParseAmenities(text))
}

func TestFacilityInput_RecordNeverSendsNullAmenities(t *testing.T) {
	f := FacilityInput{Name: "Gym"}.Record("f1")
	assert.NotNil(t, f.Amenities)
	assert.Equal(t, ID("f1"), f.ID)
}

func TestFacility_InputCopiesAmenities(t *testing.T) {
	f := Facility{ID: "f1", Name: "Gym", Amenities: []string{"Wifi"}}
	in := f.Input()
	in.Amenities[0] = "Sauna"
	assert.Equal(t, "Wifi", f.Amenities[0])
}
