// Package extract parses PGN streams into flat per-game records.
package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/notnil/chess"
)

// Fallback values for games missing the corresponding header tag.
const (
	UnknownOpening = "Unknown"
	UnknownECO     = "Unknown"
	UnknownResult  = "*"
)

// Record is the flat summary of one parsed game.
// Fields are fixed at parse time and never mutated afterwards.
type Record struct {
	// ECO is the Encyclopedia of Chess Openings classification code.
	ECO string

	// Opening is the opening name, taken from the Opening tag or
	// derived from the ECOUrl tag.
	Opening string

	// Moves is the number of half-moves in the game's main line.
	Moves int

	// Result is the outcome token: "1-0", "0-1", "1/2-1/2" or "*".
	Result string
}

// Columns lists the record fields in table order, for diagnostics.
var Columns = []string{"ECO", "Opening", "Moves", "Result"}

// Games parses all games from a PGN stream in order.
// Exhausting the stream is not an error; a malformed stream is.
func Games(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := chess.NewScanner(r)
	for scanner.Scan() {
		g := scanner.Next()
		// The scanner reports one final empty game when the stream
		// ends without trailing content. It carries no headers and
		// no moves and is not a game.
		if len(g.TagPairs()) == 0 && len(g.Moves()) == 0 {
			continue
		}
		records = append(records, fromGame(g))
	}
	// The scanner signals normal exhaustion through io.EOF.
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scanning pgn: %w", err)
	}

	return records, nil
}

// fromGame derives a Record from a parsed game.
func fromGame(g *chess.Game) Record {
	eco, ok := tag(g, "ECO")
	if !ok {
		eco = UnknownECO
	}

	result, ok := tag(g, "Result")
	if !ok {
		result = UnknownResult
	}

	opening, _ := tag(g, "Opening")
	ecoURL, _ := tag(g, "ECOUrl")

	return Record{
		ECO:     eco,
		Opening: OpeningName(opening, ecoURL),
		Moves:   len(g.Moves()),
		Result:  result,
	}
}

// tag returns the value of a header tag and whether it was present.
func tag(g *chess.Game, key string) (string, bool) {
	if tp := g.GetTagPair(key); tp != nil {
		return tp.Value, true
	}
	return "", false
}
