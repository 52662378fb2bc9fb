package scheme

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

var referenceMarkers = []string{
	"使用用户提供的",
	"用户提供的",
	"user-provided",
	"user-supplied",
	"user provided",
	"user supplied",
}

var (
	reLeadingNone = regexp.MustCompile(`^\s*无`)
	reNoneMarker  = regexp.MustCompile(`(?i)不需要|无需|可选|\bnone\b|\bnot needed\b|\boptional\b`)
	rePunct       = regexp.MustCompile(`[，,、。;；]`)
	reSeparator   = regexp.MustCompile(`[，,、]`)
	reHueChar     = regexp.MustCompile(`[黑白灰红蓝绿黄粉紫橙棕]`)
)

// colorPhrases are tried in order; the first pattern with a match wins.
var colorPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?:深|浅)?(?:红|橙|黄|绿|蓝|紫|粉|黑|白|灰|棕|卡其|米|驼|咖啡|藏青|藏蓝|天蓝|海军|军绿|炭灰)(?:色|蓝|红|黑|白)?色?`),
	regexp.MustCompile(`(?i)\b(?:(?:dark|light)\s+)?(?:navy blue|sky blue|charcoal gr[ae]y|red|orange|yellow|green|blue|purple|pink|black|white|gr[ae]y|brown|khaki|beige|camel|coffee|navy|olive|charcoal)\b`),
	regexp.MustCompile(`黑色|白色|灰色|红色|蓝色|绿色|黄色|粉色|紫色|橙色|棕色|米色|驼色|卡其色|咖啡色|藏青色`),
	regexp.MustCompile(`(?i)\b(?:black|white|gr[ae]y|red|blue|green|yellow|pink|purple|orange|brown|beige|khaki|navy)\b`),
	regexp.MustCompile(`(?:深|浅)(?:灰|蓝|绿|红|粉|棕)色?`),
}

// ExtractSlot reads the garment for one slot out of a scheme block.
// Mandatory slots never come back nil.
func ExtractSlot(slot constants.Slot, block string, bySlot map[constants.Slot]entity.UserGarment) *entity.GarmentRef {
	p, ok := policies[slot]
	if !ok {
		return nil
	}
	user, hasUser := bySlot[slot]

	m := p.labelRe.FindStringSubmatch(block)
	if m == nil {
		if hasUser {
			return resolved(user)
		}
		return absent(slot)
	}
	rest := strings.TrimSpace(m[1])

	if hasReferenceMarker(rest) {
		if hasUser {
			return resolved(user)
		}
		return absent(slot)
	}

	if reLeadingNone.MatchString(rest) || reNoneMarker.MatchString(rest) {
		if !p.mandatory {
			return nil
		}
		// a bare marker leaves nothing to parse
		if strings.TrimSpace(reNoneMarker.ReplaceAllString(reLeadingNone.ReplaceAllString(rest, ""), "")) == "" {
			rest = ""
		}
	}

	return proposedGarment(p, rest)
}

func hasReferenceMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, m := range referenceMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// proposedGarment parses "<color> <name>" free text written by the model.
func proposedGarment(p slotPolicy, text string) *entity.GarmentRef {
	var phrase string
	var colorSpans []Span
	for _, re := range colorPhrases {
		if loc := re.FindStringIndex(text); loc != nil {
			phrase = text[loc[0]:loc[1]]
			colorSpans = matchSpans(re, text)
			break
		}
	}
	if phrase == "" {
		if loc := reHueChar.FindStringIndex(text); loc != nil {
			phrase = text[loc[0]:loc[1]] + "色"
			colorSpans = []Span{{Start: loc[0], End: loc[1]}}
		} else {
			phrase = p.defaultHue
		}
	}

	spans := append(colorSpans, matchSpans(rePunct, text)...)
	name := strings.Join(strings.Fields(StripSpans(text, spans)), " ")
	if utf8.RuneCountInString(name) < 2 {
		first := strings.TrimSpace(reSeparator.Split(text, 2)[0])
		if first != "" {
			name = first
		} else {
			name = p.defaultName
		}
	}

	return &entity.GarmentRef{Name: name, Color: ResolveColor(phrase)}
}
