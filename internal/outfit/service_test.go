package outfit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/outfit-advisor/internal/async"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/llm"
	"github.com/joseph-ayodele/outfit-advisor/internal/metrics"
	"github.com/joseph-ayodele/outfit-advisor/internal/weather"
)

const threeSchemes = `## 一、推荐搭配
### 方案一：休闲风
上衣：白色T恤
下装：蓝色牛仔裤
鞋子：白色运动鞋

### 方案二：商务风
上衣：白色衬衫
下装：黑色西裤
鞋子：黑色皮鞋

### 方案三：运动风
上衣：灰色卫衣
下装：黑色运动裤
鞋子：白色跑鞋

## 二、搭配理由和目的
天气凉爽，适合叠穿。

## 三、全身色彩搭配分析
黑白灰经典配色。
`

type fakeWeather struct {
	reading  entity.WeatherReading
	err      error
	location string
}

func (f *fakeWeather) Fetch(_ context.Context, location string) (entity.WeatherReading, error) {
	f.location = location
	return f.reading, f.err
}

type fakeChat struct {
	text     string
	err      error
	messages []llm.Message
}

func (f *fakeChat) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.messages = messages
	return f.text, f.err
}

type fakeQueue struct {
	jobs []async.Job
	err  error
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

var sunny = entity.WeatherReading{
	Temperature: 18.5,
	WeatherType: "晴",
	Humidity:    40,
	WindSpeed:   2.5,
	Description: "晴朗",
}

func newTestService(w WeatherFetcher, chat llm.ChatClient, opts ...Option) *Service {
	s := NewService(w, chat, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err), err.Error())
}

func TestWeatherDefaultsLocationAndQueuesRecord(t *testing.T) {
	w := &fakeWeather{reading: sunny}
	q := &fakeQueue{}
	svc := newTestService(w, &fakeChat{}, WithRecordQueue(q), WithDefaultLocation("上海"))

	res, err := svc.Weather(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, "上海", w.location)
	assert.Equal(t, "上海", res.Location)
	assert.Equal(t, "2024-03-01", res.Date)
	assert.Equal(t, sunny, res.WeatherReading)

	require.Len(t, q.jobs, 1)
	assert.Equal(t, "上海", q.jobs[0].Record.Location)
	assert.Equal(t, "2024-03-01", q.jobs[0].Record.Date)
	assert.Equal(t, 18.5, q.jobs[0].Record.Temperature)
}

func TestWeatherQueueFailureIsNotFatal(t *testing.T) {
	svc := newTestService(&fakeWeather{reading: sunny}, &fakeChat{}, WithRecordQueue(&fakeQueue{err: async.ErrClosed}))

	res, err := svc.Weather(context.Background(), "北京")
	require.NoError(t, err)
	assert.Equal(t, "北京", res.Location)
}

func TestWeatherUnavailable(t *testing.T) {
	w := &fakeWeather{err: fmt.Errorf("%w: %w", weather.ErrUnavailable, errors.New("timeout"))}
	svc := newTestService(w, &fakeChat{})

	_, err := svc.Weather(context.Background(), "北京")
	requireCode(t, err, codes.Unavailable)
	assert.Contains(t, status.Convert(err).Message(), "获取天气数据失败")
}

func TestGenerateByWeather(t *testing.T) {
	chat := &fakeChat{text: "今天穿T恤"}
	svc := newTestService(&fakeWeather{reading: sunny}, chat)

	_, err := svc.GenerateByWeather(context.Background(), "")
	requireCode(t, err, codes.InvalidArgument)
	assert.Equal(t, msgLocationRequired, status.Convert(err).Message())

	advice, err := svc.GenerateByWeather(context.Background(), "北京")
	require.NoError(t, err)
	assert.Equal(t, "今天穿T恤", advice.Suggestion)
	assert.Equal(t, WeatherInfo{Temperature: 18.5, WeatherType: "晴", Humidity: 40, Description: "晴朗"}, advice.WeatherInfo)
	require.Len(t, chat.messages, 2)
	assert.Equal(t, llm.RoleSystem, chat.messages[0].Role)
	assert.Contains(t, chat.messages[1].Content, "18.5")
}

func TestGenerateByWeatherLLMErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not configured", llm.ErrNotConfigured, codes.FailedPrecondition},
		{"upstream", errors.New("502 bad gateway"), codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeWeather{reading: sunny}, &fakeChat{err: tt.err})
			_, err := svc.GenerateByWeather(context.Background(), "北京")
			requireCode(t, err, tt.code)
		})
	}
}

func TestGenerateByClothes(t *testing.T) {
	reg := metrics.NewRegistry()
	chat := &fakeChat{text: threeSchemes}
	svc := newTestService(&fakeWeather{}, chat, WithMetrics(reg))
	garments := []entity.UserGarment{{Name: "牛仔裤", Type: "bottom", Color: "蓝色"}}

	advice, err := svc.GenerateByClothes(context.Background(), garments, " 通勤 ")
	require.NoError(t, err)

	require.Len(t, advice.Schemes, 3)
	assert.Equal(t, "休闲风", advice.Schemes[0].Description)
	assert.Equal(t, "商务风", advice.Schemes[1].Description)
	assert.Equal(t, "运动风", advice.Schemes[2].Description)
	assert.Equal(t, "天气凉爽，适合叠穿。", advice.Reasoning)
	assert.Equal(t, "黑白灰经典配色。", advice.ColorScheme)
	require.NotNil(t, advice.Scene)
	assert.Equal(t, "通勤", *advice.Scene)
	assert.Equal(t, garments, advice.Clothes)
	assert.Equal(t, &entity.ImageSlot{Color: "#4444FF", Type: "牛仔裤"}, advice.ImageConfig.Bottom)
	assert.Equal(t, threeSchemes, advice.Suggestion)

	assert.Equal(t, int64(3), reg.Snapshot()[metrics.SchemesExtracted])
	assert.Equal(t, int64(1), reg.Snapshot()["llm_completions_total{kind=clothes,outcome=ok}"])
}

func TestGenerateByClothesTopsUpDuplicates(t *testing.T) {
	text := "### 方案一：A\n上衣：白色衬衫\n下装：黑色西裤\n鞋子：黑色皮鞋\n" +
		"### 方案二：B\n上衣：白色衬衫\n下装：黑色西裤\n鞋子：黑色皮鞋\n"
	reg := metrics.NewRegistry()
	svc := newTestService(&fakeWeather{}, &fakeChat{text: text}, WithMetrics(reg))

	advice, err := svc.GenerateByClothes(context.Background(), []entity.UserGarment{{Name: "衬衫", Type: "top", Color: "白色"}}, "")
	require.NoError(t, err)

	require.Len(t, advice.Schemes, 3)
	assert.Equal(t, "A", advice.Schemes[0].Description)
	assert.Nil(t, advice.Scene)

	snap := reg.Snapshot()
	assert.Equal(t, int64(2), snap[metrics.SchemesExtracted])
	assert.Equal(t, int64(1), snap[metrics.SchemesDuplicate])
	assert.Equal(t, int64(2), snap[metrics.SchemesSynthesized])
}

func TestGenerateByClothesFallback(t *testing.T) {
	svc := newTestService(&fakeWeather{}, &fakeChat{text: "抱歉，无法给出方案。"})
	garments := []entity.UserGarment{{Name: "T-shirt", Type: "top", Color: "black"}}

	advice, err := svc.GenerateByClothes(context.Background(), garments, "")
	require.NoError(t, err)
	require.Len(t, advice.Schemes, 3)
	for _, s := range advice.Schemes {
		assert.Equal(t, &entity.GarmentRef{Name: "T-shirt", Color: "#333333"}, s.Top)
		assert.NotNil(t, s.Bottom)
		assert.NotNil(t, s.Shoes)
	}
	assert.Empty(t, advice.Reasoning)
}

func TestGenerateByClothesValidation(t *testing.T) {
	chat := &fakeChat{text: threeSchemes}
	svc := newTestService(&fakeWeather{}, chat)

	_, err := svc.GenerateByClothes(context.Background(), nil, "")
	requireCode(t, err, codes.InvalidArgument)
	assert.Equal(t, msgClothesRequired, status.Convert(err).Message())
	assert.Nil(t, chat.messages)

	svc = newTestService(&fakeWeather{}, &fakeChat{err: llm.ErrNotConfigured})
	_, err = svc.GenerateByClothes(context.Background(), []entity.UserGarment{{Name: "T恤", Type: "top", Color: "白色"}}, "")
	requireCode(t, err, codes.FailedPrecondition)
}

func TestImageConfig(t *testing.T) {
	svc := newTestService(&fakeWeather{}, &fakeChat{})

	_, err := svc.ImageConfig(nil)
	requireCode(t, err, codes.InvalidArgument)

	cfg, err := svc.ImageConfig([]entity.UserGarment{{Name: "风衣", Type: "outerwear", Color: "卡其色"}})
	require.NoError(t, err)
	assert.Equal(t, &entity.ImageSlot{Color: "#F0E68C", Type: "风衣"}, cfg.Outerwear)
}

func TestWeatherRecordsNotStored(t *testing.T) {
	svc := newTestService(&fakeWeather{}, &fakeChat{})
	_, err := svc.WeatherRecords(context.Background(), "北京", 10)
	requireCode(t, err, codes.FailedPrecondition)
}
