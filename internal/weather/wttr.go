package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/fetch"
)

const unknownWeather = "未知"

// Wttr queries wttr.in, which needs no API key and accepts Chinese city names.
type Wttr struct {
	BaseURL string
	Client  *http.Client
	Logger  *slog.Logger
}

type wttrText struct {
	Value string `json:"value"`
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC         string     `json:"temp_C"`
		Humidity      string     `json:"humidity"`
		WindspeedKmph string     `json:"windspeedKmph"`
		WeatherDesc   []wttrText `json:"weatherDesc"`
		LangZh        []wttrText `json:"lang_zh"`
	} `json:"current_condition"`
	Weather []struct {
		Hourly []struct {
			WeatherDesc []wttrText `json:"weatherDesc"`
		} `json:"hourly"`
	} `json:"weather"`
}

func (p *Wttr) Name() string { return "wttr" }

func (p *Wttr) Fetch(ctx context.Context, location string) (entity.WeatherReading, error) {
	endpoint := strings.TrimRight(p.BaseURL, "/") + "/" + url.PathEscape(location)
	q := url.Values{"format": {"j1"}, "lang": {"zh"}}
	headers := map[string]string{"User-Agent": "Mozilla/5.0"}

	raw, _, err := fetch.GetJSON(ctx, p.Client, endpoint, q, headers, p.Logger)
	if err != nil {
		return entity.WeatherReading{}, fmt.Errorf("wttr: %w", err)
	}

	var resp wttrResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entity.WeatherReading{}, fmt.Errorf("wttr: decode: %w", err)
	}
	if len(resp.CurrentCondition) == 0 {
		return entity.WeatherReading{}, errors.New("wttr: 天气数据格式错误")
	}
	cur := resp.CurrentCondition[0]

	desc := firstText(cur.LangZh, cur.WeatherDesc)
	if desc == "" && len(resp.Weather) > 0 && len(resp.Weather[0].Hourly) > 0 {
		desc = firstText(resp.Weather[0].Hourly[0].WeatherDesc)
	}
	if desc == "" {
		desc = unknownWeather
	}

	return entity.WeatherReading{
		Temperature: parseFloat(cur.TempC),
		WeatherType: desc,
		Humidity:    int(parseFloat(cur.Humidity)),
		WindSpeed:   parseFloat(cur.WindspeedKmph) / 3.6,
		Description: desc,
	}, nil
}

func firstText(lists ...[]wttrText) string {
	for _, l := range lists {
		if len(l) > 0 {
			if v := strings.TrimSpace(l[0].Value); v != "" {
				return v
			}
		}
	}
	return ""
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
