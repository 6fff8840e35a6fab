package extract

import "testing"

func TestOpeningName(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		ecoURL  string
		want    string
	}{
		{
			name:    "explicit header wins",
			opening: "Queen's Gambit",
			want:    "Queen's Gambit",
		},
		{
			name:    "header wins over url",
			opening: "Queen's Gambit",
			ecoURL:  "https://www.chess.com/openings/Sicilian-Defense",
			want:    "Queen's Gambit",
		},
		{
			name:   "derived from url with query",
			ecoURL: "https://www.chess.com/openings/Queens-Gambit-Declined?variant=x",
			want:   "Queens Gambit Declined",
		},
		{
			name:   "derived from url without query",
			ecoURL: "https://www.chess.com/openings/Sicilian-Defense",
			want:   "Sicilian Defense",
		},
		{
			name: "neither header nor url",
			want: "Unknown",
		},
		{
			name:   "url without openings segment",
			ecoURL: "https://www.chess.com/analysis",
			want:   "Unknown",
		},
		{
			name:   "segment after the last openings marker",
			ecoURL: "https://mirror.example/openings/old/openings/Kings-Indian-Defense",
			want:   "Kings Indian Defense",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OpeningName(tt.opening, tt.ecoURL); got != tt.want {
				t.Errorf("OpeningName(%q, %q) = %q, want %q", tt.opening, tt.ecoURL, got, tt.want)
			}
		})
	}
}
