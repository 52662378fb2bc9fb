package scheme

import (
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

// BuildImageConfig places each user garment in its slot for the avatar
// preview. Garments of unknown type are skipped; later garments win.
func BuildImageConfig(garments []entity.UserGarment) entity.ImageConfig {
	var cfg entity.ImageConfig
	for slot, g := range GarmentsBySlot(garments) {
		cfg.Set(slot, &entity.ImageSlot{Color: ResolveColor(g.Color), Type: g.Name})
	}
	return cfg
}
