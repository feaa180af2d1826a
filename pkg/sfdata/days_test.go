package sfdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDays(t *testing.T) {
	n := NewNormalizer(DefaultRules())

	assert.Equal(t, []string{"monday", "tuesday", "wednesday", "thursday", "friday"}, n.ParseDays("M-F"))
	assert.Equal(t, []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}, n.ParseDays("M-Sa"))
	assert.Equal(t, []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}, n.ParseDays("DAILY"))
	assert.Equal(t, []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}, n.ParseDays("M-Su"))

	assert.Equal(t, []string{"tuesday", "thursday"}, n.ParseDays("Tu/Th"))
	assert.Equal(t, []string{"monday", "wednesday", "friday"}, n.ParseDays("M/W/F"))

	// Unrecognized tokens are dropped silently.
	assert.Equal(t, []string{"monday"}, n.ParseDays("M/XX"))
	assert.Nil(t, n.ParseDays("XX"))
	assert.Nil(t, n.ParseDays(""))
	assert.Nil(t, n.ParseDays("   "))
}

func TestParseClock(t *testing.T) {
	cases := map[string]string{
		"900":  "09:00",
		"1800": "18:00",
		"2400": "00:00",
		"730":  "07:30",
		"9":    "09:00",
		"0":    "00:00",
	}
	for in, want := range cases {
		got := ParseClock(in)
		assert.NotNil(t, got, in)
		assert.Equal(t, want, *got, in)
	}

	assert.Nil(t, ParseClock(""))
	assert.Nil(t, ParseClock("noon"))
}
