// Package weather looks up current conditions from third-party providers.
package weather

import (
	"context"
	"errors"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

// ErrSkipped is returned by a provider that is not usable in the current
// configuration, for example because no API key is set.
var ErrSkipped = errors.New("weather provider skipped")

// Provider fetches the current reading for a free-text location.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, location string) (entity.WeatherReading, error)
}
