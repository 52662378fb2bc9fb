package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is a saved outfit together with the weather it was chosen for.
type HistoryRecord struct {
	ID          uuid.UUID       `json:"id"`
	UserID      *int64          `json:"userId,omitempty"`
	Date        string          `json:"date"` // YYYY-MM-DD
	OutfitData  json.RawMessage `json:"outfitData"`
	WeatherInfo json.RawMessage `json:"weatherInfo"`
	CreatedAt   time.Time       `json:"createdAt"`
}
