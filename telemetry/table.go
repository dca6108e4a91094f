package telemetry

import (
	"fmt"
	"io"
)

// TableRow is one line of the per-round console table.
type TableRow struct {
	Round int
	Wolf  string // formatted position
	Alive int
	Eaten string // captured sheep index or "-"
}

// WriteRoundRow prints one table row, preceded by the header when header is true.
func WriteRoundRow(w io.Writer, row TableRow, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w, "%9s%19s%20s%20s\n", "Round no.:", "Wolf position:", "Alive sheep no.:", "Eaten sheep no.:"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%9d%19s%20d%20s\n", row.Round, row.Wolf, row.Alive, row.Eaten)
	return err
}
