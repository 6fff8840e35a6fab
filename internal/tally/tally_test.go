package tally

import (
	"math"
	"reflect"
	"testing"

	"github.com/discochess/openingtally/internal/extract"
)

func repeat(r extract.Record, n int) []extract.Record {
	out := make([]extract.Record, n)
	for i := range out {
		out[i] = r
	}
	return out
}

func TestByOpening_CountsSumToTableSize(t *testing.T) {
	var records []extract.Record
	records = append(records, repeat(extract.Record{Opening: "A", Result: "1-0"}, 5)...)
	records = append(records, repeat(extract.Record{Opening: "B", Result: "0-1"}, 3)...)
	records = append(records, repeat(extract.Record{Opening: "C", Result: "1/2-1/2"}, 2)...)

	counts := ByOpening(records)
	if len(counts) != 3 {
		t.Fatalf("ByOpening() returned %d entries, want 3", len(counts))
	}

	sum := 0
	for _, c := range counts {
		sum += c.Games
	}
	if sum != len(records) {
		t.Errorf("counts sum = %d, want %d", sum, len(records))
	}

	want := []Count{{"A", 5}, {"B", 3}, {"C", 2}}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("ByOpening() = %v, want %v", counts, want)
	}
}

func TestByOpening_TiesSortedByName(t *testing.T) {
	records := []extract.Record{
		{Opening: "Sicilian Defense"},
		{Opening: "Italian Game"},
	}

	counts := ByOpening(records)
	want := []Count{{"Italian Game", 1}, {"Sicilian Defense", 1}}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("ByOpening() = %v, want %v", counts, want)
	}
}

func TestBreakdown_RatesSumToOne(t *testing.T) {
	var records []extract.Record
	// 15 distinct (opening, result) pairs so truncation kicks in.
	openings := []string{"A", "B", "C", "D", "E"}
	results := []string{"1-0", "0-1", "1/2-1/2"}
	games := 1
	for _, o := range openings {
		for _, r := range results {
			records = append(records, repeat(extract.Record{Opening: o, Result: r}, games)...)
			games++
		}
	}

	shares := Breakdown(records, OpeningKey, 10)
	if len(shares) != 10 {
		t.Fatalf("Breakdown() kept %d rows, want 10", len(shares))
	}

	var sum float64
	for _, s := range shares {
		sum += s.Rate
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("rates sum = %v, want 1.0", sum)
	}
}

func TestBreakdown_NormalizesOverKeptSliceOnly(t *testing.T) {
	// 11 pairs: ten with 2 games each, one with 1 game. The singleton is
	// dropped by truncation and must not influence the rates.
	var records []extract.Record
	for _, o := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		records = append(records, repeat(extract.Record{Opening: o, Result: "1-0"}, 2)...)
	}
	records = append(records, extract.Record{Opening: "K", Result: "0-1"})

	shares := Breakdown(records, OpeningKey, 10)
	if len(shares) != 10 {
		t.Fatalf("Breakdown() kept %d rows, want 10", len(shares))
	}
	for _, s := range shares {
		if s.Category == "K" {
			t.Fatalf("truncated row %v survived", s)
		}
		// 2 games out of 20 kept, not out of 21 total.
		if math.Abs(s.Rate-0.1) > 1e-9 {
			t.Errorf("rate for %s = %v, want 0.1", s.Category, s.Rate)
		}
	}
}

func TestBreakdown_ByECO(t *testing.T) {
	records := []extract.Record{
		{ECO: "B20", Opening: "Sicilian Defense", Result: "0-1"},
		{ECO: "B20", Opening: "Sicilian Defense", Result: "0-1"},
		{ECO: "C50", Opening: "Italian Game", Result: "1-0"},
	}

	shares := Breakdown(records, ECOKey, 10)
	want := []Share{
		{Category: "B20", Result: "0-1", Rate: 2.0 / 3.0},
		{Category: "C50", Result: "1-0", Rate: 1.0 / 3.0},
	}
	if !reflect.DeepEqual(shares, want) {
		t.Errorf("Breakdown() = %v, want %v", shares, want)
	}
}

func TestBreakdown_Deterministic(t *testing.T) {
	records := []extract.Record{
		{Opening: "Italian Game", Result: "1-0"},
		{Opening: "Sicilian Defense", Result: "0-1"},
		{Opening: "French Defense", Result: "1/2-1/2"},
		{Opening: "Caro Kann Defense", Result: "1-0"},
	}

	first := Breakdown(records, OpeningKey, 10)
	for i := 0; i < 50; i++ {
		if got := Breakdown(records, OpeningKey, 10); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced different order: %v vs %v", i, got, first)
		}
	}
}

func TestBreakdown_EmptyTable(t *testing.T) {
	shares := Breakdown(nil, OpeningKey, 10)
	if len(shares) != 0 {
		t.Errorf("Breakdown(nil) = %v, want empty", shares)
	}
}
