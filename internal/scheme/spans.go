package scheme

import (
	"regexp"
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) within a string.
type Span struct {
	Start, End int
}

// StripSpans deletes every span from s and trims the result. Spans may
// overlap or arrive unordered; out-of-range spans are clamped.
func StripSpans(s string, spans []Span) string {
	if len(spans) == 0 {
		return strings.TrimSpace(s)
	}
	sorted := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Start < 0 {
			sp.Start = 0
		}
		if sp.End > len(s) {
			sp.End = len(s)
		}
		if sp.Start < sp.End {
			sorted = append(sorted, sp)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var b strings.Builder
	pos := 0
	for _, sp := range sorted {
		if sp.Start > pos {
			b.WriteString(s[pos:sp.Start])
		}
		if sp.End > pos {
			pos = sp.End
		}
	}
	if pos < len(s) {
		b.WriteString(s[pos:])
	}
	return strings.TrimSpace(b.String())
}

// matchSpans returns the spans of every non-overlapping match of re in s.
func matchSpans(re *regexp.Regexp, s string) []Span {
	locs := re.FindAllStringIndex(s, -1)
	out := make([]Span, 0, len(locs))
	for _, l := range locs {
		out = append(out, Span{Start: l[0], End: l[1]})
	}
	return out
}
