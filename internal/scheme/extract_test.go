package scheme

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireMandatory(t *testing.T, schemes []entity.OutfitScheme) {
	t.Helper()
	require.NotEmpty(t, schemes)
	for i, s := range schemes {
		require.NotNil(t, s.Top, "scheme %d top", i)
		require.NotNil(t, s.Bottom, "scheme %d bottom", i)
		require.NotNil(t, s.Shoes, "scheme %d shoes", i)
	}
}

func TestExtractHeadingCompletion(t *testing.T) {
	got := NewExtractor(testLogger()).Extract(headingCompletion, nil)
	require.Len(t, got, 2)
	requireMandatory(t, got)

	assert.Equal(t, "休闲风 - 适合周末出行", got[0].Description)
	assert.Equal(t, &entity.GarmentRef{Name: "T恤", Color: "#FFFFFF"}, got[0].Top)
	assert.Equal(t, &entity.GarmentRef{Name: "牛仔裤", Color: "#4444FF"}, got[0].Bottom)
	assert.Equal(t, &entity.GarmentRef{Name: "运动鞋", Color: "#FFFFFF"}, got[0].Shoes)
	assert.Nil(t, got[0].Outerwear)

	assert.Equal(t, "商务风", got[1].Description)
	assert.Equal(t, &entity.GarmentRef{Name: "西裤", Color: "#333333"}, got[1].Bottom)
}

func TestExtractUntitledSchemes(t *testing.T) {
	text := "### 方案一：\n- 上衣：白色衬衫\n- 下装：黑色西裤\n- 鞋子：黑色皮鞋\n" +
		"### 方案二：\n- 上衣：灰色卫衣\n- 下装：蓝色牛仔裤\n- 鞋子：白色运动鞋\n"

	got := NewExtractor(testLogger()).Extract(text, nil)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"方案1", "方案2"}, descriptions(got))
	assert.Equal(t, &entity.GarmentRef{Name: "衬衫", Color: "#FFFFFF"}, got[0].Top)
	assert.Equal(t, &entity.GarmentRef{Name: "牛仔裤", Color: "#4444FF"}, got[1].Bottom)
}

func TestExtractExplicitReference(t *testing.T) {
	text := "### 方案一：A\n上衣：使用用户提供的T恤\n下装：黑色西裤\n鞋子：白色运动鞋\n" +
		"### 方案二：B\n上衣：使用用户提供的T恤\n下装：卡其色休闲裤\n鞋子：棕色皮鞋\n"
	garments := []entity.UserGarment{{Name: "T恤", Type: "上衣", Color: "白色"}}

	got := NewExtractor(testLogger()).Extract(text, garments)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, &entity.GarmentRef{Name: "T恤", Color: "#FFFFFF"}, s.Top)
	}
	assert.Equal(t, &entity.GarmentRef{Name: "休闲裤", Color: "#F0E68C"}, got[1].Bottom)
	assert.Equal(t, &entity.GarmentRef{Name: "皮鞋", Color: "#8B4513"}, got[1].Shoes)
}

func TestExtractDegenerateFallback(t *testing.T) {
	garments := []entity.UserGarment{{Name: "T-shirt", Type: "top", Color: "black"}}

	got := NewExtractor(testLogger()).Extract("抱歉，我无法给出具体方案。", garments)
	require.Len(t, got, 3)
	requireMandatory(t, got)
	for _, s := range got {
		assert.Equal(t, &entity.GarmentRef{Name: "T-shirt", Color: "#333333"}, s.Top)
	}
}

func TestExtractSingleBlockIsSynthesized(t *testing.T) {
	text := "### 方案一：唯一\n上衣：红色毛衣\n下装：黑色长裤\n鞋子：黑色靴子\n"

	got := NewExtractor(nil).Extract(text, nil)
	require.Len(t, got, 3)
	assert.Equal(t, "方案1 - 经典黑色系", got[0].Description)
}

func TestExtractIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"###",
		"### 方案一：\n",
		"方案一：x\n方案二：y\n",
		"【方案一】\n【方案二】\n",
		"上衣：无\n下装：无\n鞋子：无",
		"##########",
		"### 方案一：A\n上衣：#ZZZZZZ 奇怪\n### 方案二：B\n配饰：用户提供的\n",
	}
	garments := []entity.UserGarment{
		{Name: "围巾", Type: "accessories", Color: "not-a-color"},
		{Name: "帽子", Type: "hat", Color: "红色"},
	}

	ex := NewExtractor(testLogger())
	for _, in := range inputs {
		got := ex.Extract(in, garments)
		requireMandatory(t, got)
		for _, s := range got {
			assert.True(t, IsHexColor(s.Top.Color), in)
			assert.True(t, IsHexColor(s.Bottom.Color), in)
			assert.True(t, IsHexColor(s.Shoes.Color), in)
		}
	}
}
