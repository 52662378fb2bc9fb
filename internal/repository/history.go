package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
)

var historyColumns = []string{"id", "user_id", "date", "outfit_data", "weather_info", "created_at"}

// HistoryFilter narrows a history listing. Zero values match everything.
type HistoryFilter struct {
	UserID    *int64
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // inclusive, YYYY-MM-DD
	Limit     int
}

type HistoryRepository interface {
	Save(ctx context.Context, rec *entity.HistoryRecord) error
	List(ctx context.Context, filter HistoryFilter) ([]entity.HistoryRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HistoryRecord, error)
}

type historyRepository struct {
	store  *Store
	logger *slog.Logger
}

func NewHistoryRepository(store *Store, logger *slog.Logger) HistoryRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &historyRepository{store: store, logger: logger}
}

func (r *historyRepository) Save(ctx context.Context, rec *entity.HistoryRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Date == "" {
		rec.Date = rec.CreatedAt.Format(constants.DateLayout)
	}

	var userID, weather any
	if rec.UserID != nil {
		userID = *rec.UserID
	}
	if len(rec.WeatherInfo) > 0 && string(rec.WeatherInfo) != "null" {
		weather = string(rec.WeatherInfo)
	}

	query, args := entsql.Dialect(r.store.Dialect()).
		Insert(historyTable).
		Columns(historyColumns...).
		Values(rec.ID.String(), userID, rec.Date, string(rec.OutfitData), weather, rec.CreatedAt.UTC().Format(timeLayout)).
		Query()

	if _, err := r.store.DB().ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to save outfit history", "history_id", rec.ID, "error", err)
		return fmt.Errorf("save outfit history: %w", err)
	}
	r.logger.Debug("outfit history saved", "history_id", rec.ID)
	return nil
}

func (r *historyRepository) List(ctx context.Context, filter HistoryFilter) ([]entity.HistoryRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = constants.HistoryListLimit
	}

	b := entsql.Dialect(r.store.Dialect())
	sel := b.Select(historyColumns...).From(b.Table(historyTable))
	if filter.UserID != nil {
		sel.Where(entsql.EQ("user_id", *filter.UserID))
	}
	if filter.StartDate != "" {
		sel.Where(entsql.GTE("date", filter.StartDate))
	}
	if filter.EndDate != "" {
		sel.Where(entsql.LTE("date", filter.EndDate))
	}
	query, args := sel.OrderBy(entsql.Desc("created_at")).Limit(limit).Query()

	rows, err := r.store.DB().QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list outfit history", "error", err)
		return nil, fmt.Errorf("list outfit history: %w", err)
	}
	defer rows.Close()

	out := make([]entity.HistoryRecord, 0)
	for rows.Next() {
		rec, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outfit history: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *historyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HistoryRecord, error) {
	b := entsql.Dialect(r.store.Dialect())
	query, args := b.Select(historyColumns...).
		From(b.Table(historyTable)).
		Where(entsql.EQ("id", id.String())).
		Query()

	rec, err := scanHistory(r.store.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		if !IsNotFound(err) {
			r.logger.Error("failed to get outfit history", "history_id", id, "error", err)
		}
		return nil, err
	}
	return rec, nil
}

func scanHistory(row rowScanner) (*entity.HistoryRecord, error) {
	var (
		rec       entity.HistoryRecord
		userID    sql.NullInt64
		outfit    string
		weather   sql.NullString
		createdAt string
	)
	if err := row.Scan(&rec.ID, &userID, &rec.Date, &outfit, &weather, &createdAt); err != nil {
		return nil, err
	}
	if userID.Valid {
		v := userID.Int64
		rec.UserID = &v
	}
	rec.OutfitData = json.RawMessage(outfit)
	if weather.Valid {
		rec.WeatherInfo = json.RawMessage(weather.String)
	}
	var err error
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &rec, nil
}
