package sfdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curbmap/sf/pkg/models"
)

func TestExtractSweeping(t *testing.T) {
	n := NewNormalizer(DefaultRules())

	reg := n.ExtractSweeping(SweepingRecord{
		Weekday:  "Tues",
		FromHour: 8,
		ToHour:   10,
		Weeks:    [5]bool{true, true, true, true, true},
		Corridor: "Valencia St",
	})

	assert.Equal(t, models.RegulationStreetCleaning, reg.Type)
	assert.Equal(t, []string{"tuesday"}, reg.EnforcementDays)
	assert.Equal(t, "08:00", *reg.EnforcementStart)
	assert.Equal(t, "10:00", *reg.EnforcementEnd)
	assert.Equal(t, "Street cleaning every week", *reg.SpecialConditions)
	assert.Equal(t, "Valencia St", reg.SourceStreet)
}

func TestWeekPattern(t *testing.T) {
	assert.Equal(t, "Street cleaning every week", weekPattern([5]bool{true, true, true, true, true}))
	assert.Equal(t, "Street cleaning (schedule TBD)", weekPattern([5]bool{}))
	assert.Equal(t, "Street cleaning on odd weeks", weekPattern([5]bool{true, false, true, false, false}))
	assert.Equal(t, "Street cleaning on odd weeks", weekPattern([5]bool{true, false, true, false, true}))
	assert.Equal(t, "Street cleaning on even weeks", weekPattern([5]bool{false, true, false, true, false}))
	assert.Equal(t, "Street cleaning 1st and 2nd week of month", weekPattern([5]bool{true, true, false, false, false}))
	assert.Equal(t, "Street cleaning 1st week of month", weekPattern([5]bool{true, false, false, false, false}))
	assert.Equal(t, "Street cleaning 1st, 2nd and 4th week of month", weekPattern([5]bool{true, true, false, true, false}))
}

func TestNormalizeWeekday(t *testing.T) {
	n := NewNormalizer(DefaultRules())

	assert.Equal(t, "monday", n.normalizeWeekday("Mon"))
	assert.Equal(t, "tuesday", n.normalizeWeekday("Tue"))
	assert.Equal(t, "tuesday", n.normalizeWeekday("Tues"))
	assert.Equal(t, "thursday", n.normalizeWeekday("Thurs"))
	assert.Equal(t, "holiday", n.normalizeWeekday("Holiday"))

	// Unrecognized values pass through lower-cased.
	assert.Equal(t, "someday", n.normalizeWeekday("Someday"))
}

func TestExtractMeter(t *testing.T) {
	n := NewNormalizer(DefaultRules())

	reg := n.ExtractMeter(MeterRecord{
		PostID:     "543-23110",
		StreetName: "Mission St",
		CapColor:   "Grey",
	})

	assert.Equal(t, models.RegulationMetered, reg.Type)
	assert.NotNil(t, reg.TimeLimit)
	assert.Equal(t, 60, *reg.TimeLimit)
	assert.Equal(t, "Mission St", reg.SourceStreet)

	// Unknown cap colors imply no limit.
	reg = n.ExtractMeter(MeterRecord{CapColor: "Purple"})
	assert.Nil(t, reg.TimeLimit)

	// Metered blockface markers produce the default meter regulation.
	def := n.ExtractMeteredBlockface()
	assert.Equal(t, models.RegulationMetered, def.Type)
	assert.Len(t, def.EnforcementDays, 7)
	assert.Equal(t, "09:00", *def.EnforcementStart)
	assert.Equal(t, "18:00", *def.EnforcementEnd)
}
