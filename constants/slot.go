package constants

import (
	"strings"
)

// Slot is one garment position in an outfit.
type Slot string

const (
	Top         Slot = "top"
	Bottom      Slot = "bottom"
	Outerwear   Slot = "outerwear"
	Shoes       Slot = "shoes"
	Accessories Slot = "accessories"
)

// AllSlots is the fixed slot order used for scheme keys and iteration.
var AllSlots = []Slot{
	Top,
	Bottom,
	Shoes,
	Outerwear,
	Accessories,
}

// Label returns the Chinese display label for the slot.
func (s Slot) Label() string {
	switch s {
	case Top:
		return "上衣"
	case Bottom:
		return "下装"
	case Outerwear:
		return "外套"
	case Shoes:
		return "鞋子"
	case Accessories:
		return "配饰"
	}
	return string(s)
}

func AsStringSlice() []string {
	result := make([]string, len(AllSlots))
	for i, s := range AllSlots {
		result[i] = string(s)
	}
	return result
}

// CanonicalizeSlot maps a caller-supplied garment type onto a Slot.
func CanonicalizeSlot(input string) (Slot, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	synonyms := map[string]Slot{
		"上衣":          Top,
		"上装":          Top,
		"tops":        Top,
		"下装":          Bottom,
		"裤子":          Bottom,
		"bottoms":     Bottom,
		"外套":          Outerwear,
		"outer":       Outerwear,
		"jacket":      Outerwear,
		"鞋子":          Shoes,
		"鞋":           Shoes,
		"shoe":        Shoes,
		"配饰":          Accessories,
		"accessory":   Accessories,
		"accessories": Accessories,
	}
	if s, ok := synonyms[normalized]; ok {
		return s, true
	}

	for _, s := range AllSlots {
		if normalized == string(s) {
			return s, true
		}
	}
	return "", false
}
