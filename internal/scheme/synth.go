package scheme

import (
	"fmt"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

type variation struct {
	bottom entity.GarmentRef
	shoes  entity.GarmentRef
	suffix string
}

var variations = []variation{
	{
		bottom: entity.GarmentRef{Name: "黑色下装", Color: "#333333"},
		shoes:  entity.GarmentRef{Name: "黑色鞋子", Color: "#333333"},
		suffix: "经典黑色系",
	},
	{
		bottom: entity.GarmentRef{Name: "灰色下装", Color: "#888888"},
		shoes:  entity.GarmentRef{Name: "黑色鞋子", Color: "#333333"},
		suffix: "简约灰色系",
	},
	{
		bottom: entity.GarmentRef{Name: "深蓝色下装", Color: "#000080"},
		shoes:  entity.GarmentRef{Name: "白色鞋子", Color: "#FFFFFF"},
		suffix: "清新蓝白系",
	},
}

// Synthesize builds count schemes (clamped to [2, 3]) from the user's
// garments and the fixed variations.
func Synthesize(bySlot map[constants.Slot]entity.UserGarment, count int) []entity.OutfitScheme {
	if count < 2 {
		count = 2
	}
	if count > len(variations) {
		count = len(variations)
	}
	out := make([]entity.OutfitScheme, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, synthesizeOne(bySlot, i))
	}
	return out
}

func synthesizeOne(bySlot map[constants.Slot]entity.UserGarment, i int) entity.OutfitScheme {
	v := variations[i]
	s := entity.OutfitScheme{Description: fmt.Sprintf("方案%d - %s", i+1, v.suffix)}
	for _, slot := range constants.AllSlots {
		if g, ok := bySlot[slot]; ok {
			s.Set(slot, resolved(g))
		}
	}
	if s.Bottom == nil {
		b := v.bottom
		s.Bottom = &b
	}
	if s.Top == nil {
		t := defaultTop
		s.Top = &t
	}
	if s.Shoes == nil || *s.Shoes == defaultShoes {
		sh := v.shoes
		s.Shoes = &sh
	}
	return s
}
