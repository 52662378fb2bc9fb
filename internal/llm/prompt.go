package llm

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

const (
	weatherSystemPrompt = "你是一个专业的穿搭顾问，能够根据天气情况给出合适的穿衣建议。"
	clothesSystemPrompt = "你是专业穿搭顾问，根据用户衣物提供搭配建议、理由和色彩分析。回答简洁专业。"
)

// WeatherPrompt builds the conversation asking for weather-driven advice.
func WeatherPrompt(w entity.WeatherReading) []Message {
	user := fmt.Sprintf(`根据以下天气信息，给出合适的穿衣建议：
- 温度：%s°C
- 天气：%s
- 湿度：%d%%
- 描述：%s

请提供详细的穿衣建议，包括：
1. 上衣建议
2. 下装建议
3. 外套建议（如需要）
4. 配饰建议（如需要）
5. 注意事项

请用中文回答，语言要友好、实用。`,
		formatTemp(w.Temperature), w.WeatherType, w.Humidity, w.Description)

	return []Message{
		{Role: RoleSystem, Content: weatherSystemPrompt},
		{Role: RoleUser, Content: user},
	}
}

// ClothesPrompt builds the conversation asking for two or three outfit
// schemes around the user's garments. Missing mandatory slots are called
// out so the model fills them in.
func ClothesPrompt(garments []entity.UserGarment, scene string) []Message {
	provided := make(map[constants.Slot]entity.UserGarment, len(garments))
	described := make([]string, 0, len(garments))
	for _, g := range garments {
		if slot, ok := constants.CanonicalizeSlot(g.Type); ok {
			provided[slot] = g
		}
		described = append(described, fmt.Sprintf("%s（%s，颜色：%s）", g.Name, g.Type, g.Color))
	}

	var missing []string
	for _, slot := range []constants.Slot{constants.Top, constants.Bottom, constants.Shoes} {
		if _, ok := provided[slot]; !ok {
			missing = append(missing, slot.Label())
		}
	}
	for _, slot := range []constants.Slot{constants.Outerwear, constants.Accessories} {
		if _, ok := provided[slot]; !ok {
			missing = append(missing, slot.Label()+"（可选）")
		}
	}

	scene = strings.TrimSpace(scene)
	var b strings.Builder
	b.WriteString("用户提供的衣物：")
	b.WriteString(strings.Join(described, "、"))
	if scene != "" {
		b.WriteString("，场景：" + scene)
	}
	if len(missing) > 0 {
		b.WriteString("\n注意：用户未提供" + strings.Join(missing, "、") + "，请为每个方案补全这些缺失部分，并说明推荐的颜色和款式。")
	}

	b.WriteString(`

请提供2-3个不同的穿搭方案，每个方案必须包含完整的搭配（上衣、下装、鞋子，以及可选的外套和配饰）。

重要：每个方案必须明确指定颜色，格式为"颜色+款式名称"，例如："黑色长袖"、"深灰色运动裤"、"白色运动鞋"。

请按以下格式回答：

## 一、搭配方案（提供2-3个方案）
### 方案一：[方案名称]
`)
	fmt.Fprintf(&b, "- 上衣：[颜色+款式，如：黑色长袖T恤 或 使用用户提供的：%s]\n", providedName(provided, constants.Top))
	fmt.Fprintf(&b, "- 下装：[颜色+款式，如：深灰色运动紧身裤 或 使用用户提供的：%s]\n", providedName(provided, constants.Bottom))
	fmt.Fprintf(&b, "- 鞋子：[颜色+款式，如：白色运动鞋 或 使用用户提供的：%s]\n", providedName(provided, constants.Shoes))
	b.WriteString(`- 外套：[颜色+款式，如：黑色轻薄运动夹克 或 无]
- 配饰：[颜色+款式，如：红色运动发带 或 无]
- 搭配说明：[简要说明这个方案的特色]

### 方案二：[方案名称]
- 上衣：[颜色+款式]
- 下装：[颜色+款式]
- 鞋子：[颜色+款式]
- 外套：[颜色+款式 或 无]
- 配饰：[颜色+款式 或 无]
- 搭配说明：[简要说明]

### 方案三：[方案名称]（可选）
- 上衣：[颜色+款式]
- 下装：[颜色+款式]
- 鞋子：[颜色+款式]
- 外套：[颜色+款式 或 无]
- 配饰：[颜色+款式 或 无]
- 搭配说明：[简要说明]

## 二、搭配理由和目的
解释为什么这样搭配（色彩原理、风格统一性），目的是什么（突出什么、适合场合、达到效果），搭配亮点。

## 三、全身色彩搭配分析
说明整体色彩方案（主色、辅色、点缀色），色彩协调关系，视觉效果和情感表达。`)
	if scene != "" {
		b.WriteString("说明色彩如何适应" + scene + "场景。")
	}
	b.WriteString(`

## 四、场景适配性
说明适合的场景和调整建议。

`)
	if scene == "" {
		b.WriteString("注意：如果未提供场景，请在开头询问用户希望用于什么场景。")
	}
	b.WriteString("用中文回答，专业友好。")

	return []Message{
		{Role: RoleSystem, Content: clothesSystemPrompt},
		{Role: RoleUser, Content: b.String()},
	}
}

func providedName(provided map[constants.Slot]entity.UserGarment, slot constants.Slot) string {
	if g, ok := provided[slot]; ok && g.Name != "" {
		return g.Name
	}
	return "无"
}

// formatTemp prints whole degrees without a trailing ".0".
func formatTemp(t float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", t), ".0")
}
