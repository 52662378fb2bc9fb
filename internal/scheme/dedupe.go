package scheme

import (
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

// MinSchemes is how many distinct schemes a response aims to carry.
const MinSchemes = 3

// Key identifies a scheme by its garments, ignoring the description.
func Key(s entity.OutfitScheme) string {
	parts := make([]string, 0, len(constants.AllSlots))
	for _, slot := range constants.AllSlots {
		if g := s.Get(slot); g != nil {
			parts = append(parts, string(slot)+":"+g.Color+":"+g.Name)
		}
	}
	return strings.Join(parts, "|")
}

// Dedupe keeps the first scheme for each key, preserving order.
func Dedupe(schemes []entity.OutfitScheme, logger *slog.Logger) []entity.OutfitScheme {
	if logger == nil {
		logger = slog.Default()
	}
	seen := make(map[string]struct{}, len(schemes))
	out := make([]entity.OutfitScheme, 0, len(schemes))
	for i, s := range schemes {
		k := Key(s)
		if _, dup := seen[k]; dup {
			logger.Warn("scheme.dedupe.duplicate", "index", i, "description", s.Description)
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	if len(out) < MinSchemes {
		logger.Info("scheme.dedupe.few", "unique", len(out), "input", len(schemes))
	}
	return out
}

// TopUp appends synthesized variations with unseen keys until the slice
// holds want schemes or the variations run out.
func TopUp(schemes []entity.OutfitScheme, bySlot map[constants.Slot]entity.UserGarment, want int) []entity.OutfitScheme {
	if len(schemes) >= want {
		return schemes
	}
	seen := make(map[string]struct{}, len(schemes))
	for _, s := range schemes {
		seen[Key(s)] = struct{}{}
	}
	for i := range variations {
		if len(schemes) >= want {
			break
		}
		s := synthesizeOne(bySlot, i)
		k := Key(s)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		schemes = append(schemes, s)
	}
	return schemes
}
