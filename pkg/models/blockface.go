package models

// Which side of the street a blockface represents. EVEN/ODD follow the SF
// address-parity convention; cardinal values come from datasets that record
// orientation instead of parity.
type Side string

const (
	SideEven    Side = "EVEN"
	SideOdd     Side = "ODD"
	SideNorth   Side = "NORTH"
	SideSouth   Side = "SOUTH"
	SideEast    Side = "EAST"
	SideWest    Side = "WEST"
	SideUnknown Side = "UNKNOWN"
)

// LineGeometry is the GeoJSON LineString fragment used in the app bundle.
// Coordinates are (lon, lat) pairs.
type LineGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// One side of one street segment between two cross streets. Geometry is set
// at load time and never recomputed; regulations are appended during matching.
type Blockface struct {
	ID          string       `json:"id"`
	Street      string       `json:"street"`
	FromStreet  string       `json:"fromStreet"`
	ToStreet    string       `json:"toStreet"`
	Side        Side         `json:"side"`
	Geometry    LineGeometry `json:"geometry"`
	Regulations []Regulation `json:"regulations"`
}

type BlockfaceBundle struct {
	Blockfaces []Blockface `json:"blockfaces"`
}
