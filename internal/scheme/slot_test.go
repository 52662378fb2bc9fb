package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

const businessBlock = "上衣：白色衬衫\n下装：黑色西裤\n鞋子：黑色皮鞋\n搭配说明：干练"

func TestExtractSlotProposed(t *testing.T) {
	tests := []struct {
		name  string
		slot  constants.Slot
		block string
		want  *entity.GarmentRef
	}{
		{"top", constants.Top, businessBlock, &entity.GarmentRef{Name: "衬衫", Color: "#FFFFFF"}},
		{"bottom", constants.Bottom, businessBlock, &entity.GarmentRef{Name: "西裤", Color: "#333333"}},
		{"shoes", constants.Shoes, businessBlock, &entity.GarmentRef{Name: "皮鞋", Color: "#333333"}},
		{"optional missing", constants.Outerwear, businessBlock, nil},
		{"english label", constants.Top, "Top: navy blue blazer", &entity.GarmentRef{Name: "blazer", Color: "#000080"}},
		{"ascii colon and compound", constants.Bottom, "下装: 卡其色休闲裤", &entity.GarmentRef{Name: "休闲裤", Color: "#F0E68C"}},
		{"unknown intensity", constants.Top, "上衣：深紫色卫衣", &entity.GarmentRef{Name: "卫衣", Color: DefaultColor}},
		{"unknown compound with suffix", constants.Top, "上衣：米白色针织衫", &entity.GarmentRef{Name: "针织衫", Color: DefaultColor}},
		{"two hues", constants.Top, "上衣：红黑格子衬衫", &entity.GarmentRef{Name: "格子衬衫", Color: DefaultColor}},
		{"default hue shoes", constants.Shoes, "鞋子：运动鞋", &entity.GarmentRef{Name: "运动鞋", Color: "#888888"}},
		{"default hue bottom", constants.Bottom, "下装：牛仔裤", &entity.GarmentRef{Name: "牛仔裤", Color: "#333333"}},
		{"short residue", constants.Top, "上衣：白色T", &entity.GarmentRef{Name: "白色T", Color: "#FFFFFF"}},
		{"punctuation stripped", constants.Outerwear, "外套：灰色风衣，可叠穿", &entity.GarmentRef{Name: "风衣可叠穿", Color: "#888888"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSlot(tt.slot, tt.block, nil))
		})
	}
}

func TestExtractSlotReference(t *testing.T) {
	bySlot := map[constants.Slot]entity.UserGarment{
		constants.Top: {Name: "T恤", Type: "上衣", Color: "白色"},
	}

	got := ExtractSlot(constants.Top, "上衣：使用用户提供的T恤", bySlot)
	assert.Equal(t, &entity.GarmentRef{Name: "T恤", Color: "#FFFFFF"}, got)

	got = ExtractSlot(constants.Top, "Top: user-provided tee", bySlot)
	assert.Equal(t, &entity.GarmentRef{Name: "T恤", Color: "#FFFFFF"}, got)

	// no matching user garment: mandatory falls back, optional is absent
	got = ExtractSlot(constants.Shoes, "鞋子：用户提供的鞋子", bySlot)
	assert.Equal(t, &defaultShoes, got)
	assert.Nil(t, ExtractSlot(constants.Outerwear, "外套：使用用户提供的外套", bySlot))
}

func TestExtractSlotMissingLineUsesUserGarment(t *testing.T) {
	bySlot := map[constants.Slot]entity.UserGarment{
		constants.Top: {Name: "T-shirt", Type: "top", Color: "black"},
	}

	assert.Equal(t, &entity.GarmentRef{Name: "T-shirt", Color: "#333333"}, ExtractSlot(constants.Top, "", bySlot))
	assert.Equal(t, &defaultBottom, ExtractSlot(constants.Bottom, "", bySlot))
	assert.Nil(t, ExtractSlot(constants.Accessories, "", bySlot))
}

func TestExtractSlotNoneMarker(t *testing.T) {
	assert.Nil(t, ExtractSlot(constants.Outerwear, "外套：无", nil))
	assert.Nil(t, ExtractSlot(constants.Outerwear, "外套：无需外套", nil))
	assert.Nil(t, ExtractSlot(constants.Accessories, "配饰：不需要", nil))
	assert.Nil(t, ExtractSlot(constants.Accessories, "Accessories: none", nil))

	got := ExtractSlot(constants.Top, "上衣：无", nil)
	require.NotNil(t, got)
	assert.Equal(t, entity.GarmentRef{Name: "推荐上衣", Color: "#888888"}, *got)
}

func TestExtractSlotMarkerWordsInsideGarment(t *testing.T) {
	tests := []struct {
		name  string
		slot  constants.Slot
		block string
		want  entity.GarmentRef
	}{
		{"leading 无 in name", constants.Top, "上衣：无袖白色背心", entity.GarmentRef{Name: "无袖背心", Color: "#FFFFFF"}},
		{"无需 in remark", constants.Bottom, "下装：黑色九分裤，无需搭配腰带", entity.GarmentRef{Name: "九分裤无需搭配腰带", Color: "#333333"}},
		{"可选 in remark", constants.Shoes, "鞋子：白色运动鞋（可选帆布鞋）", entity.GarmentRef{Name: "运动鞋（可选帆布鞋）", Color: "#FFFFFF"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSlot(tt.slot, tt.block, nil)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractSlotMandatoryNeverNil(t *testing.T) {
	blocks := []string{"", "上衣：", "上衣：无\n下装：不需要\n鞋子：可选", "garbage", "鞋子：使用用户提供的"}
	for _, b := range blocks {
		for _, slot := range []constants.Slot{constants.Top, constants.Bottom, constants.Shoes} {
			got := ExtractSlot(slot, b, nil)
			require.NotNil(t, got, "%s in %q", slot, b)
			assert.True(t, IsHexColor(got.Color))
			assert.NotEmpty(t, got.Name)
		}
	}
}
