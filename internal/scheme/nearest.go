package scheme

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type namedColor struct {
	name  string
	color colorful.Color
}

// nearestCandidates holds the full Chinese color words, sorted by name so
// ties resolve the same way on every run.
var nearestCandidates = func() []namedColor {
	var out []namedColor
	for name, hex := range colorTable {
		if !strings.HasSuffix(name, "色") {
			continue
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		out = append(out, namedColor{name: name, color: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}()

// NearestName returns the color word whose value is perceptually closest
// to hex, measured as distance in CIE L*a*b*. It reports false when hex is
// not a #RRGGBB value.
func NearestName(hex string) (string, bool) {
	if !IsHexColor(hex) {
		return "", false
	}
	target, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return "", false
	}

	best, bestDist := "", -1.0
	for _, nc := range nearestCandidates {
		if d := target.DistanceLab(nc.color); bestDist < 0 || d < bestDist {
			best, bestDist = nc.name, d
		}
	}
	return best, best != ""
}
