// Package telemetry turns chase rounds into reports: the alive-count CSV, the
// positions JSON, the console table and the run summary.
package telemetry

import "github.com/pthm-cable/chase/components"

// AliveRecord is one row of alive.csv.
type AliveRecord struct {
	Round int `csv:"round_no" json:"round_no"`
	Alive int `csv:"alive_sheep" json:"alive_sheep"`
}

// PositionsRecord is one entry of pos.json. Coordinates are rounded to 3
// decimal places.
type PositionsRecord struct {
	Round int          `json:"round_no"`
	Wolf  [2]float64   `json:"wolf_pos"`
	Sheep [][2]float64 `json:"sheep_pos"`
}

// NewPositionsRecord builds a rounded positions record.
func NewPositionsRecord(round int, wolf components.Position, sheep []components.Position) PositionsRecord {
	rec := PositionsRecord{
		Round: round,
		Wolf:  wolf.Pair(),
		Sheep: make([][2]float64, len(sheep)),
	}
	for i, p := range sheep {
		rec.Sheep[i] = p.Pair()
	}
	return rec
}
