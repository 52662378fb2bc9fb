package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/fetch"
)

// OpenWeatherMap queries the current-weather endpoint with metric units.
type OpenWeatherMap struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Logger  *slog.Logger
}

type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (p *OpenWeatherMap) Name() string { return "openweathermap" }

func (p *OpenWeatherMap) Fetch(ctx context.Context, location string) (entity.WeatherReading, error) {
	if p.APIKey == "" || p.APIKey == constants.PlaceholderWeatherKey {
		return entity.WeatherReading{}, ErrSkipped
	}

	q := url.Values{
		"q":     {location},
		"appid": {p.APIKey},
		"units": {"metric"},
		"lang":  {"zh_cn"},
	}
	raw, _, err := fetch.GetJSON(ctx, p.Client, p.BaseURL, q, nil, p.Logger)
	if err != nil {
		return entity.WeatherReading{}, fmt.Errorf("openweathermap: %w", err)
	}

	var resp owmResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return entity.WeatherReading{}, fmt.Errorf("openweathermap: decode: %w", err)
	}
	if len(resp.Weather) == 0 {
		return entity.WeatherReading{}, fmt.Errorf("openweathermap: response has no weather entries")
	}

	reading := entity.WeatherReading{
		Temperature: resp.Main.Temp,
		WeatherType: resp.Weather[0].Main,
		Humidity:    resp.Main.Humidity,
		Description: resp.Weather[0].Description,
	}
	if resp.Wind != nil {
		reading.WindSpeed = resp.Wind.Speed
	}
	return reading, nil
}
