package sfdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curbmap/sf/pkg/models"
)

func TestParseStreetInfo(t *testing.T) {
	info := ParseStreetInfo("Valencia Street between 17th St and 16th St, west side")
	assert.Equal(t, "Valencia Street", info.Street)
	assert.Equal(t, "17th St", info.From)
	assert.Equal(t, "16th St", info.To)

	// Fallback: the whole string up to the first comma becomes the street.
	info = ParseStreetInfo("Mission Street, somewhere")
	assert.Equal(t, "Mission Street", info.Street)
	assert.Equal(t, "Unknown", info.From)
	assert.Equal(t, "Unknown", info.To)

	info = ParseStreetInfo("")
	assert.Equal(t, UnknownStreet, info.Street)
}

func TestParseSide(t *testing.T) {
	// Cardinal sides convert to address parity: even on north/west,
	// odd on south/east.
	assert.Equal(t, models.SideEven, ParseSide("Valencia Street between 17th St and 16th St, west side"))
	assert.Equal(t, models.SideOdd, ParseSide("Valencia Street between 16th St and 17th St, east side"))
	assert.Equal(t, models.SideEven, ParseSide("24th Street between Mission and Valencia, north side"))
	assert.Equal(t, models.SideOdd, ParseSide("24th Street between Mission and Valencia, south side"))

	assert.Equal(t, models.SideUnknown, ParseSide("24th Street between Mission and Valencia"))
	assert.Equal(t, models.SideUnknown, ParseSide(""))
}

func TestNormalizeStreetName(t *testing.T) {
	n := NewNormalizer(DefaultRules())

	assert.Equal(t, "Market Street", n.NormalizeStreetName("Market St"))
	assert.Equal(t, "8th Avenue", n.NormalizeStreetName("08th Ave"))
	assert.Equal(t, "Alemany Boulevard", n.NormalizeStreetName("Alemany Blvd"))
	assert.Equal(t, "Lower Great Highway", n.NormalizeStreetName("Lower Great Hwy"))
	assert.Equal(t, "3rd Street", n.NormalizeStreetName("03rd St"))

	// Only trailing suffixes expand.
	assert.Equal(t, "St Marys Avenue", n.NormalizeStreetName("St Marys Ave"))

	assert.Equal(t, UnknownStreet, n.NormalizeStreetName(""))
	assert.Equal(t, UnknownStreet, n.NormalizeStreetName("   "))
}
