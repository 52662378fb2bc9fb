package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeatherReading is one normalized observation from a weather provider.
type WeatherReading struct {
	Temperature float64 `json:"temperature"` // °C
	WeatherType string  `json:"weatherType"`
	Humidity    int     `json:"humidity"`  // %
	WindSpeed   float64 `json:"windSpeed"` // m/s
	Description string  `json:"description"`
}

// WeatherRecord is a stored reading, unique per (Date, Location).
type WeatherRecord struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Location  string    `json:"location"`
	WeatherReading
	CreatedAt time.Time `json:"createdAt"`
}
