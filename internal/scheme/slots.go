package scheme

import (
	"regexp"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

// slotPolicy is the static per-slot behavior shared by the extractor and
// the synthesizer.
type slotPolicy struct {
	mandatory   bool
	fallback    entity.GarmentRef // used when a mandatory slot is absent
	labelRe     *regexp.Regexp    // captures the rest of "<label>: <rest>"
	defaultHue  string
	defaultName string
}

var (
	defaultTop    = entity.GarmentRef{Name: "推荐白色上衣", Color: "#FFFFFF"}
	defaultBottom = entity.GarmentRef{Name: "推荐黑色下装", Color: "#333333"}
	defaultShoes  = entity.GarmentRef{Name: "推荐黑色鞋子", Color: "#333333"}
)

var policies = map[constants.Slot]slotPolicy{
	constants.Top: {
		mandatory:   true,
		fallback:    defaultTop,
		labelRe:     regexp.MustCompile(`(?i)(?:上衣|\btops?\b)\s*[：:][ \t]*([^\n]+)`),
		defaultHue:  "灰色",
		defaultName: "推荐上衣",
	},
	constants.Bottom: {
		mandatory:   true,
		fallback:    defaultBottom,
		labelRe:     regexp.MustCompile(`(?i)(?:下装|\bbottoms?\b)\s*[：:][ \t]*([^\n]+)`),
		defaultHue:  "黑色",
		defaultName: "推荐下装",
	},
	constants.Outerwear: {
		labelRe:     regexp.MustCompile(`(?i)(?:外套|\bouterwear\b)\s*[：:][ \t]*([^\n]+)`),
		defaultHue:  "灰色",
		defaultName: "推荐外套",
	},
	constants.Shoes: {
		mandatory:   true,
		fallback:    defaultShoes,
		labelRe:     regexp.MustCompile(`(?i)(?:鞋子|\bshoes?\b)\s*[：:][ \t]*([^\n]+)`),
		defaultHue:  "灰色",
		defaultName: "推荐鞋子",
	},
	constants.Accessories: {
		labelRe:     regexp.MustCompile(`(?i)(?:配饰|\baccessor(?:y|ies)\b)\s*[：:][ \t]*([^\n]+)`),
		defaultHue:  "黑色",
		defaultName: "推荐配饰",
	},
}

// absent applies the absence policy for slot.
func absent(slot constants.Slot) *entity.GarmentRef {
	p := policies[slot]
	if !p.mandatory {
		return nil
	}
	g := p.fallback
	return &g
}

// GarmentsBySlot indexes user garments by canonical slot. Later garments
// win; garments whose type names no known slot are dropped.
func GarmentsBySlot(garments []entity.UserGarment) map[constants.Slot]entity.UserGarment {
	out := make(map[constants.Slot]entity.UserGarment, len(garments))
	for _, g := range garments {
		if slot, ok := constants.CanonicalizeSlot(g.Type); ok {
			out[slot] = g
		}
	}
	return out
}

// resolved converts a user garment into a GarmentRef with a canonical color.
func resolved(g entity.UserGarment) *entity.GarmentRef {
	return &entity.GarmentRef{Name: g.Name, Color: ResolveColor(g.Color)}
}
