package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

func TestBuildImageConfig(t *testing.T) {
	got := BuildImageConfig([]entity.UserGarment{
		{Name: "白T", Type: "top", Color: "白色"},
		{Name: "牛仔裤", Type: "裤子", Color: "蓝色"},
		{Name: "帽子", Type: "hat", Color: "红色"},
		{Name: "手表", Type: "accessories", Color: "#C0C0C0"},
	})

	assert.Equal(t, &entity.ImageSlot{Color: "#FFFFFF", Type: "白T"}, got.Top)
	assert.Equal(t, &entity.ImageSlot{Color: "#4444FF", Type: "牛仔裤"}, got.Bottom)
	assert.Equal(t, &entity.ImageSlot{Color: "#C0C0C0", Type: "手表"}, got.Accessories)
	assert.Nil(t, got.Outerwear)
	assert.Nil(t, got.Shoes)
}
