package openingtally

import "github.com/discochess/openingtally/internal/extract"

// Record is the flat summary of one parsed game.
type Record = extract.Record

// Result tokens as they appear in PGN headers.
const (
	ResultWhiteWin = "1-0"
	ResultBlackWin = "0-1"
	ResultDraw     = "1/2-1/2"
	ResultUnknown  = "*"
)

// Report describes one completed pipeline run, for diagnostics.
type Report struct {
	// Files lists the discovered input names in processing order.
	Files []string

	// FileGames maps each input name to the number of games parsed
	// from it.
	FileGames map[string]int

	// TotalGames is the size of the in-memory record table.
	TotalGames int

	// AvgMoves is the mean main-line length across all games, in
	// half-moves.
	AvgMoves float64

	// Columns lists the record table's column set.
	Columns []string
}
