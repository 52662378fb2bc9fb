package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headingCompletion = `## 一、推荐搭配
### 方案一：休闲风
上衣：白色T恤
下装：蓝色牛仔裤
鞋子：白色运动鞋
搭配说明：适合周末出行

### 方案二：商务风
上衣：白色衬衫
下装：黑色西裤
鞋子：黑色皮鞋

## 二、搭配理由和目的
天气凉爽，适合叠穿。
`

func TestSegmentHeading(t *testing.T) {
	blocks := Segment(headingCompletion)
	require.Len(t, blocks, 2)

	assert.Equal(t, "休闲风", blocks[0].Label)
	assert.Equal(t, "上衣：白色T恤\n下装：蓝色牛仔裤\n鞋子：白色运动鞋\n搭配说明：适合周末出行", blocks[0].Body)
	assert.Equal(t, "商务风", blocks[1].Label)
	assert.Equal(t, "上衣：白色衬衫\n下装：黑色西裤\n鞋子：黑色皮鞋", blocks[1].Body)
}

func TestSegmentStrategies(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		labels []string
	}{
		{
			name:   "plain",
			text:   "方案一：休闲\n上衣：白色T恤\n方案二：正式\n上衣：黑色衬衫\n",
			labels: []string{"休闲", "正式"},
		},
		{
			name:   "bracket",
			text:   "【方案一】清新\n上衣：白色T恤\n【方案二】沉稳\n上衣：灰色毛衣\n",
			labels: []string{"清新", "沉稳"},
		},
		{
			name:   "loose",
			text:   "搭配一：简约\n上衣：白色衬衫\n搭配二：运动\n上衣：灰色卫衣\n",
			labels: []string{"简约", "运动"},
		},
		{
			name:   "english",
			text:   "Scheme 1: Casual\nTop: white tee\nScheme 2: Smart\nTop: navy shirt\n",
			labels: []string{"Casual", "Smart"},
		},
		{
			name:   "arabic ordinals",
			text:   "### 方案1：A\n上衣：白色T恤\n### 方案2：B\n上衣：黑色T恤\n### 方案3：C\n上衣：灰色T恤\n",
			labels: []string{"A", "B", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Segment(tt.text)
			labels := make([]string, 0, len(blocks))
			for _, b := range blocks {
				labels = append(labels, b.Label)
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestSegmentHeadingTakesPriority(t *testing.T) {
	text := "### 方案一：A\n上衣：白色T恤\n方案二：B\n上衣：黑色T恤\n"

	blocks := Segment(text)
	require.Len(t, blocks, 1)
	assert.Equal(t, "A", blocks[0].Label)
	assert.Contains(t, blocks[0].Body, "方案二：B")
}

func TestSegmentUntitledHeading(t *testing.T) {
	text := "### 方案一：\n- 上衣：白色T恤\n- 下装：黑色西裤\n### 方案二：\n- 上衣：灰色卫衣\n"

	blocks := Segment(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Label: "", Body: "- 上衣：白色T恤\n- 下装：黑色西裤"}, blocks[0])
	assert.Equal(t, Block{Label: "", Body: "- 上衣：灰色卫衣"}, blocks[1])
}

func TestSegmentNoBlocks(t *testing.T) {
	for _, text := range []string{"", "今天天气不错", "方案一：休闲", "## 二、搭配理由和目的\n保暖"} {
		assert.Empty(t, Segment(text), text)
	}
}
