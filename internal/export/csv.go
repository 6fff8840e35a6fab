// Package export writes frequency summaries as CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/discochess/openingtally/internal/tally"
)

// OpeningCounts writes full-table opening counts to path, overwriting
// any existing file. Columns: Opening, Count.
func OpeningCounts(path string, counts []tally.Count) error {
	rows := make([][]string, 0, len(counts)+1)
	rows = append(rows, []string{"Opening", "Count"})
	for _, c := range counts {
		rows = append(rows, []string{c.Opening, strconv.Itoa(c.Games)})
	}
	return writeCSV(path, rows)
}

// Breakdown writes a ranked (category, result) breakdown to path,
// overwriting any existing file. The raw counts are dropped; columns are
// the category label, "Win" (the result token) and "WinRate".
func Breakdown(path, categoryLabel string, shares []tally.Share) error {
	rows := make([][]string, 0, len(shares)+1)
	rows = append(rows, []string{categoryLabel, "Win", "WinRate"})
	for _, s := range shares {
		rows = append(rows, []string{
			s.Category,
			s.Result,
			strconv.FormatFloat(s.Rate, 'g', -1, 64),
		})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return f.Close()
}
