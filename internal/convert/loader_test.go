package convert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curbmap/sf/pkg/models"
	"github.com/curbmap/sf/pkg/sfdata"
)

// A north-south stretch of Valencia St in the Mission. The regulation and
// sweeping features run parallel to it, offset slightly east.
const blockfacesJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "id": "cnn-100",
        "popup": "Valencia Street between 17th St and 16th St, west side"
      },
      "geometry": {
        "type": "LineString",
        "coordinates": [[-122.4214, 37.760], [-122.4214, 37.768]]
      }
    },
    {
      "type": "Feature",
      "properties": {"popup": "Somewhere far away"},
      "geometry": {
        "type": "LineString",
        "coordinates": [[-122.5, 37.9], [-122.5, 37.91]]
      }
    },
    {
      "type": "Feature",
      "properties": {"popup": "No geometry here"},
      "geometry": null
    }
  ]
}`

const regulationsJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "regulation": "Pay or Permit",
        "hrlimit": "2",
        "rpparea1": "Q",
        "days": "M-F",
        "hrs_begin": "900",
        "hrs_end": "1800"
      },
      "geometry": {
        "type": "LineString",
        "coordinates": [[-122.42135, 37.762], [-122.42135, 37.764]]
      }
    },
    {
      "type": "Feature",
      "properties": {
        "regulation": "Pay or Permit",
        "hrlimit": "2",
        "rpparea1": "Q",
        "days": "M-F",
        "hrs_begin": "900",
        "hrs_end": "1800"
      },
      "geometry": {
        "type": "LineString",
        "coordinates": [[-122.42135, 37.765], [-122.42135, 37.767]]
      }
    }
  ]
}`

const sweepingJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "weekday": "Tues",
        "fromhour": 8,
        "tohour": 10,
        "week1": 1, "week2": 1, "week3": 1, "week4": 1, "week5": 1,
        "corridor": "Valencia St"
      },
      "geometry": {
        "type": "LineString",
        "coordinates": [[-122.42135, 37.763], [-122.42135, 37.766]]
      }
    }
  ]
}`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBlockfaces(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "blockfaces.geojson", blockfacesJSON)

	stats := NewStats()
	n := sfdata.NewNormalizer(sfdata.DefaultRules())
	blockfaces, err := LoadBlockfaces(path, DefaultConfig(), n, stats)
	assert.NoError(t, err)

	// The out-of-bounds and geometry-less features are skipped.
	assert.Len(t, blockfaces, 1)
	assert.Equal(t, 2, stats.Skipped)

	bf := blockfaces[0]
	assert.Equal(t, "cnn-100", bf.ID)
	assert.Equal(t, "Valencia Street", bf.Street)
	assert.Equal(t, "17th St", bf.FromStreet)
	assert.Equal(t, "16th St", bf.ToStreet)
	assert.Equal(t, models.SideEven, bf.Side)
	assert.Len(t, bf.Geometry.Coordinates, 2)
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "sweeping.geojson", sweepingJSON)

	stats := NewStats()
	records, err := LoadRecords(path, SourceSweeping, DefaultConfig(), stats)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, SourceSweeping, rec.Kind)
	assert.NotNil(t, rec.Sweeping)
	assert.Equal(t, "Tues", rec.Sweeping.Weekday)
	assert.Equal(t, 8, rec.Sweeping.FromHour)
	assert.Equal(t, [5]bool{true, true, true, true, true}, rec.Sweeping.Weeks)
	assert.Equal(t, "Valencia St", rec.Sweeping.Corridor)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	inputs := Inputs{
		Blockfaces:  writeFixture(t, dir, "blockfaces.geojson", blockfacesJSON),
		Regulations: writeFixture(t, dir, "regulations.geojson", regulationsJSON),
		Sweeping:    writeFixture(t, dir, "sweeping.geojson", sweepingJSON),
	}

	bundle, stats, err := Run(DefaultConfig(), inputs)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.Matched)
	assert.Equal(t, 0, stats.Unmatched)

	assert.Len(t, bundle.Blockfaces, 1)
	bf := bundle.Blockfaces[0]

	// Two identical pay-or-permit records collapse after dedup, leaving
	// metered + residentialPermit + streetCleaning.
	assert.Len(t, bf.Regulations, 3)

	types := map[models.RegulationType]models.Regulation{}
	for _, reg := range bf.Regulations {
		types[reg.Type] = reg
	}

	metered, ok := types[models.RegulationMetered]
	assert.True(t, ok)
	assert.Equal(t, 120, *metered.TimeLimit)
	assert.Nil(t, metered.PermitZones)

	permit, ok := types[models.RegulationResidentialPermit]
	assert.True(t, ok)
	assert.Equal(t, []string{"Q"}, permit.PermitZones)
	assert.Nil(t, permit.TimeLimit)

	cleaning, ok := types[models.RegulationStreetCleaning]
	assert.True(t, ok)
	assert.Equal(t, []string{"tuesday"}, cleaning.EnforcementDays)
	assert.Empty(t, cleaning.SourceStreet)
}

func TestRunNoBlockfaces(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "empty.geojson", `{"type":"FeatureCollection","features":[]}`)

	_, _, err := Run(DefaultConfig(), Inputs{Blockfaces: path})
	assert.Error(t, err)
}

func TestBundleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inputs := Inputs{
		Blockfaces:  writeFixture(t, dir, "blockfaces.geojson", blockfacesJSON),
		Regulations: writeFixture(t, dir, "regulations.geojson", regulationsJSON),
	}

	bundle, _, err := Run(DefaultConfig(), inputs)
	assert.NoError(t, err)

	data, err := json.Marshal(bundle)
	assert.NoError(t, err)

	var decoded models.BlockfaceBundle
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *bundle, decoded)
}
