package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

func TestWeatherPrompt(t *testing.T) {
	msgs := WeatherPrompt(entity.WeatherReading{
		Temperature: 18, WeatherType: "晴", Humidity: 40, Description: "晴朗",
	})
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "- 温度：18°C")
	assert.Contains(t, msgs[1].Content, "- 湿度：40%")
	assert.Contains(t, msgs[1].Content, "- 描述：晴朗")

	msgs = WeatherPrompt(entity.WeatherReading{Temperature: -2.5})
	assert.Contains(t, msgs[1].Content, "- 温度：-2.5°C")
}

func TestClothesPromptMissingSlots(t *testing.T) {
	msgs := ClothesPrompt([]entity.UserGarment{{Name: "T恤", Type: "top", Color: "白色"}}, "")
	require.Len(t, msgs, 2)
	user := msgs[1].Content

	assert.Contains(t, user, "用户提供的衣物：T恤（top，颜色：白色）")
	assert.Contains(t, user, "用户未提供下装、鞋子、外套（可选）、配饰（可选）")
	assert.Contains(t, user, "使用用户提供的：T恤]")
	assert.Contains(t, user, "如：白色运动鞋 或 使用用户提供的：无]")
	assert.Contains(t, user, "请在开头询问用户希望用于什么场景")
}

func TestClothesPromptWithScene(t *testing.T) {
	garments := []entity.UserGarment{
		{Name: "衬衫", Type: "上衣", Color: "白色"},
		{Name: "西裤", Type: "bottom", Color: "黑色"},
		{Name: "皮鞋", Type: "shoes", Color: "棕色"},
		{Name: "大衣", Type: "outerwear", Color: "驼色"},
		{Name: "手表", Type: "accessories", Color: "银色"},
	}
	user := ClothesPrompt(garments, "商务会议")[1].Content

	assert.Contains(t, user, "，场景：商务会议")
	assert.NotContains(t, user, "用户未提供")
	assert.Contains(t, user, "说明色彩如何适应商务会议场景。")
	assert.NotContains(t, user, "请在开头询问")
}
