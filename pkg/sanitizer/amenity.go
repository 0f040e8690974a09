package sanitizer

import "strings"

// NormalizeAmenities maps each requested amenity onto its canonical spelling
// from known, matching case-insensitively. Unknown amenities are kept so a
// search for them matches nothing rather than everything.
func NormalizeAmenities(amenities []string, known []string) []string {
	canonical := make(map[string]string, len(known))
	for _, k := range known {
		canonical[strings.ToLower(k)] = k
	}

	return NormalizeStringSlice(amenities, func(s string) string {
		s = TrimAndNormalize(s)
		if c, ok := canonical[strings.ToLower(s)]; ok {
			return c
		}
		return s
	})
}
