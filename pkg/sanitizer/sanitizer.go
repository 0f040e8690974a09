package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reNonSlug      = regexp.MustCompile(`[^a-z0-9]+`)
	reBlankLineRun = regexp.MustCompile(`\n{3,}`)
)

func trimAndLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Slug turns a display name into a venue id such as "the-grand-palace".
func Slug(input string) string {
	p := Pipeline{
		trimAndLower,
		func(s string) string { return reNonSlug.ReplaceAllString(s, "-") },
		func(s string) string { return strings.Trim(s, "-") },
	}
	return p.Apply(input)
}

// NormalizeStringSlice applies normalizer to every item, dropping empties and
// duplicates while keeping first occurrence order.
func NormalizeStringSlice(items []string, normalizer Strategy) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		normalized := normalizer(item)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result
}

// SplitList splits a comma separated query value into normalized items.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeStringSlice(strings.Split(raw, ","), TrimAndNormalize)
}
