// Package tally aggregates game records into ranked frequency summaries.
package tally

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/discochess/openingtally/internal/extract"
)

// Count is the number of games recorded for one opening.
type Count struct {
	Opening string
	Games   int
}

// Share is one row of a ranked (category, result) breakdown.
// Rate is the row's share of games across the kept rows only, so the
// rates in one breakdown always sum to 1 even after truncation.
type Share struct {
	Category string
	Result   string
	Rate     float64
}

// Key selects the categorical grouping column for a breakdown.
type Key func(extract.Record) string

// OpeningKey groups records by opening name.
func OpeningKey(r extract.Record) string { return r.Opening }

// ECOKey groups records by ECO classification code.
func ECOKey(r extract.Record) string { return r.ECO }

// ByOpening counts games per opening across the whole table.
// Rows are sorted descending by count; ties are broken by opening name
// so repeated runs over the same table produce identical output.
func ByOpening(records []extract.Record) []Count {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Opening]++
	}

	out := make([]Count, 0, len(counts))
	for opening, n := range counts {
		out = append(out, Count{Opening: opening, Games: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Opening < out[j].Opening
	})

	return out
}

// Breakdown groups records by (category, result), keeps the topN most
// frequent pairs, and annotates each kept pair with its share of the
// kept slice. Truncation happens before normalization, so Rate is
// relative to the kept rows rather than the whole table. topN <= 0
// keeps everything.
func Breakdown(records []extract.Record, key Key, topN int) []Share {
	type pair struct {
		category string
		result   string
	}

	counts := make(map[pair]int)
	for _, r := range records {
		counts[pair{category: key(r), result: r.Result}]++
	}

	type row struct {
		category string
		result   string
		games    int
	}

	rows := make([]row, 0, len(counts))
	for p, n := range counts {
		rows = append(rows, row{category: p.category, result: p.result, games: n})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].games != rows[j].games {
			return rows[i].games > rows[j].games
		}
		if rows[i].category != rows[j].category {
			return rows[i].category < rows[j].category
		}
		return rows[i].result < rows[j].result
	})

	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}

	kept := make([]float64, len(rows))
	for i, r := range rows {
		kept[i] = float64(r.games)
	}
	total := floats.Sum(kept)

	shares := make([]Share, len(rows))
	for i, r := range rows {
		shares[i] = Share{
			Category: r.category,
			Result:   r.result,
			Rate:     float64(r.games) / total,
		}
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Rate != shares[j].Rate {
			return shares[i].Rate > shares[j].Rate
		}
		if shares[i].Category != shares[j].Category {
			return shares[i].Category < shares[j].Category
		}
		return shares[i].Result < shares[j].Result
	})

	return shares
}
