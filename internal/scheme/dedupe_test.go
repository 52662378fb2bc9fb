package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

func scheme(desc, top, bottom, shoes string) entity.OutfitScheme {
	return entity.OutfitScheme{
		Top:         &entity.GarmentRef{Name: top, Color: "#FFFFFF"},
		Bottom:      &entity.GarmentRef{Name: bottom, Color: "#333333"},
		Shoes:       &entity.GarmentRef{Name: shoes, Color: "#333333"},
		Description: desc,
	}
}

func descriptions(schemes []entity.OutfitScheme) []string {
	out := make([]string, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, s.Description)
	}
	return out
}

func TestKey(t *testing.T) {
	s := scheme("x", "衬衫", "西裤", "皮鞋")
	s.Accessories = &entity.GarmentRef{Name: "手表", Color: "#888888"}

	assert.Equal(t, "top:#FFFFFF:衬衫|bottom:#333333:西裤|shoes:#333333:皮鞋|accessories:#888888:手表", Key(s))
}

func TestDedupe(t *testing.T) {
	in := []entity.OutfitScheme{
		scheme("A", "衬衫", "西裤", "皮鞋"),
		scheme("B", "T恤", "牛仔裤", "运动鞋"),
		scheme("A again", "衬衫", "西裤", "皮鞋"),
		scheme("C", "毛衣", "西裤", "皮鞋"),
		scheme("B again", "T恤", "牛仔裤", "运动鞋"),
	}

	got := Dedupe(in, testLogger())
	assert.Equal(t, []string{"A", "B", "C"}, descriptions(got))
	assert.Equal(t, got, Dedupe(got, testLogger()))
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil, nil))
}

func TestTopUp(t *testing.T) {
	first := Synthesize(nil, 2)[:1]

	got := TopUp(first, nil, MinSchemes)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"方案1 - 经典黑色系", "方案2 - 简约灰色系", "方案3 - 清新蓝白系"}, descriptions(got))
	assert.Equal(t, got, Dedupe(got, testLogger()))
}

func TestTopUpSkipsExistingKeys(t *testing.T) {
	in := []entity.OutfitScheme{scheme("A", "衬衫", "西裤", "皮鞋")}
	bySlot := map[constants.Slot]entity.UserGarment{
		constants.Top: {Name: "衬衫", Type: "top", Color: "#FFFFFF"},
	}

	got := TopUp(in, bySlot, MinSchemes)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Description)
	assert.Len(t, Dedupe(got, testLogger()), 3)
}

func TestTopUpNoop(t *testing.T) {
	in := []entity.OutfitScheme{
		scheme("A", "a", "b", "c"),
		scheme("B", "d", "e", "f"),
		scheme("C", "g", "h", "i"),
	}
	assert.Equal(t, in, TopUp(in, nil, MinSchemes))
}
