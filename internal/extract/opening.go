package extract

import "strings"

const openingsPathMarker = "/openings/"

// OpeningName resolves the opening name for a game.
// The explicit Opening tag wins when non-empty. Otherwise, if the ECOUrl
// tag contains an "/openings/<slug>" path segment, the name is the slug
// after the last such segment, with any trailing query stripped and
// dashes replaced by spaces. Everything else falls back to "Unknown".
func OpeningName(opening, ecoURL string) string {
	if opening != "" {
		return opening
	}

	if i := strings.LastIndex(ecoURL, openingsPathMarker); i >= 0 {
		slug := ecoURL[i+len(openingsPathMarker):]
		if j := strings.IndexByte(slug, '?'); j >= 0 {
			slug = slug[:j]
		}
		return strings.ReplaceAll(slug, "-", " ")
	}

	return UnknownOpening
}
