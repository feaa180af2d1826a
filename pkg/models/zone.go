package models

// An aggregated permit area or metered district. Polygon holds exterior
// rings of (lon, lat) pairs; MultiPermitPolygons maps a ring index to every
// permit code valid on that ring when the ring is shared between zones.
type Zone struct {
	Code                string              `json:"code"`
	Name                string              `json:"name"`
	Polygon             [][][]float64       `json:"polygon"`
	MultiPermitPolygons map[string][]string `json:"multiPermitPolygons,omitempty"`
	BlockCount          int                 `json:"blockCount"`
	MeterCount          int                 `json:"meterCount,omitempty"`
}

type ZoneBundle struct {
	Zones []Zone `json:"zones"`
}
