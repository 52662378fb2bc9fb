package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

// timeLayout is how created_at is stored; it sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000Z"

const defaultWeatherLimit = 30

var weatherColumns = []string{
	"id", "date", "location", "temperature", "weather_type",
	"humidity", "wind_speed", "description", "created_at",
}

type WeatherRepository interface {
	// Upsert stores rec, replacing the reading already stored for the same
	// date and location. rec.ID and rec.CreatedAt reflect the stored row.
	Upsert(ctx context.Context, rec *entity.WeatherRecord) error
	ListByLocation(ctx context.Context, location string, limit int) ([]entity.WeatherRecord, error)
}

type weatherRepository struct {
	store  *Store
	logger *slog.Logger
}

func NewWeatherRepository(store *Store, logger *slog.Logger) WeatherRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &weatherRepository{store: store, logger: logger}
}

func (r *weatherRepository) Upsert(ctx context.Context, rec *entity.WeatherRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query, args := entsql.Dialect(r.store.Dialect()).
		Insert(weatherTable).
		Columns(weatherColumns...).
		Values(
			rec.ID.String(), rec.Date, rec.Location, rec.Temperature, rec.WeatherType,
			rec.Humidity, rec.WindSpeed, rec.Description, rec.CreatedAt.UTC().Format(timeLayout),
		).
		OnConflict(
			entsql.ConflictColumns("date", "location"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("temperature").
					SetExcluded("weather_type").
					SetExcluded("humidity").
					SetExcluded("wind_speed").
					SetExcluded("description")
			}),
		).
		Query()

	if _, err := r.store.DB().ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to upsert weather record", "date", rec.Date, "location", rec.Location, "error", err)
		return fmt.Errorf("upsert weather record: %w", err)
	}

	stored, err := r.get(ctx, rec.Date, rec.Location)
	if err != nil {
		return err
	}
	rec.ID = stored.ID
	rec.CreatedAt = stored.CreatedAt
	return nil
}

func (r *weatherRepository) get(ctx context.Context, date, location string) (*entity.WeatherRecord, error) {
	b := entsql.Dialect(r.store.Dialect())
	query, args := b.Select(weatherColumns...).
		From(b.Table(weatherTable)).
		Where(entsql.And(entsql.EQ("date", date), entsql.EQ("location", location))).
		Query()

	rec, err := scanWeather(r.store.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		r.logger.Error("failed to load weather record", "date", date, "location", location, "error", err)
		return nil, fmt.Errorf("load weather record: %w", err)
	}
	return rec, nil
}

func (r *weatherRepository) ListByLocation(ctx context.Context, location string, limit int) ([]entity.WeatherRecord, error) {
	if limit <= 0 {
		limit = defaultWeatherLimit
	}
	b := entsql.Dialect(r.store.Dialect())
	sel := b.Select(weatherColumns...).From(b.Table(weatherTable))
	if location != "" {
		sel.Where(entsql.EQ("location", location))
	}
	query, args := sel.OrderBy(entsql.Desc("date"), entsql.Desc("created_at")).Limit(limit).Query()

	rows, err := r.store.DB().QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list weather records", "location", location, "error", err)
		return nil, fmt.Errorf("list weather records: %w", err)
	}
	defer rows.Close()

	out := make([]entity.WeatherRecord, 0)
	for rows.Next() {
		rec, err := scanWeather(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weather record: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeather(row rowScanner) (*entity.WeatherRecord, error) {
	var (
		rec       entity.WeatherRecord
		createdAt string
	)
	err := row.Scan(
		&rec.ID, &rec.Date, &rec.Location, &rec.Temperature, &rec.WeatherType,
		&rec.Humidity, &rec.WindSpeed, &rec.Description, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", s, err)
	}
	return t, nil
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
