package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curbmap/sf/pkg/models"
	"github.com/curbmap/sf/pkg/sfdata"
)

func strptr(s string) *string { return &s }

func TestAggregateDedup(t *testing.T) {
	cleaning := models.Regulation{
		Type:             models.RegulationStreetCleaning,
		EnforcementDays:  []string{"tuesday"},
		EnforcementStart: strptr("08:00"),
		EnforcementEnd:   strptr("10:00"),
	}
	rate1, rate2 := 3.5, 4.0
	metered1 := models.Regulation{Type: models.RegulationMetered, MeterRate: &rate1}
	metered2 := models.Regulation{Type: models.RegulationMetered, MeterRate: &rate2}

	bf := &models.Blockface{
		ID:          "bf-1",
		Street:      "Valencia Street",
		Regulations: []models.Regulation{cleaning, cleaning, metered1, metered2},
	}

	n := sfdata.NewNormalizer(sfdata.DefaultRules())
	Aggregate([]*models.Blockface{bf}, n)

	// The duplicate cleaning entries collapse, and the two metered entries
	// collapse too because meter rate is excluded from the key.
	assert.Len(t, bf.Regulations, 2)
	assert.Equal(t, models.RegulationStreetCleaning, bf.Regulations[0].Type)
	assert.Equal(t, models.RegulationMetered, bf.Regulations[1].Type)
}

func TestAggregateBackfillStreet(t *testing.T) {
	bf := &models.Blockface{
		ID:     "bf-1",
		Street: sfdata.UnknownStreet,
		Regulations: []models.Regulation{
			{Type: models.RegulationStreetCleaning, SourceStreet: "Valencia St"},
			{Type: models.RegulationNoParking, SourceStreet: "Mission St"},
		},
	}

	n := sfdata.NewNormalizer(sfdata.DefaultRules())
	Aggregate([]*models.Blockface{bf}, n)

	// First hint wins, normalized.
	assert.Equal(t, "Valencia Street", bf.Street)

	// The internal hint field is stripped before output.
	for _, reg := range bf.Regulations {
		assert.Empty(t, reg.SourceStreet)
	}
}

func TestAggregateKeepsResolvedStreet(t *testing.T) {
	bf := &models.Blockface{
		ID:     "bf-1",
		Street: "Guerrero Street",
		Regulations: []models.Regulation{
			{Type: models.RegulationStreetCleaning, SourceStreet: "Valencia St"},
		},
	}

	n := sfdata.NewNormalizer(sfdata.DefaultRules())
	Aggregate([]*models.Blockface{bf}, n)

	assert.Equal(t, "Guerrero Street", bf.Street)
}
