package scheme

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

var reRationale = regexp.MustCompile(`(?i)(?:搭配说明|rationale)\s*[：:][ \t]*([^\n]+)`)

// Extractor turns a completion into outfit schemes.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract never returns an empty slice. When the text yields fewer than two
// schemes the result is synthesized from the user's garments instead.
func (e *Extractor) Extract(text string, garments []entity.UserGarment) []entity.OutfitScheme {
	bySlot := GarmentsBySlot(garments)
	blocks := Segment(text)

	schemes := make([]entity.OutfitScheme, 0, len(blocks))
	for i, b := range blocks {
		if b.Label == "" {
			b.Label = "方案" + strconv.Itoa(i+1)
		}
		s := entity.OutfitScheme{Description: b.Label}
		for _, slot := range constants.AllSlots {
			s.Set(slot, ExtractSlot(slot, b.Body, bySlot))
		}
		if m := reRationale.FindStringSubmatch(b.Body); m != nil {
			if r := strings.TrimSpace(m[1]); r != "" {
				s.Description = b.Label + " - " + r
			}
		}
		schemes = append(schemes, s)
	}

	if len(schemes) <= 1 {
		e.logger.Info("scheme.extract.synthesized",
			"blocks", len(blocks),
			"user_garments", len(bySlot),
		)
		return Synthesize(bySlot, 3)
	}

	e.logger.Debug("scheme.extract.ok", "schemes", len(schemes))
	return schemes
}
