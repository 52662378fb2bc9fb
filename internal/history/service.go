package history

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/repository"
)

// exportLimit caps the rows written to one workbook.
const exportLimit = 1000

// Exporter renders history rows to a spreadsheet.
type Exporter interface {
	ExportHistoryXLSX(ctx context.Context, filter repository.HistoryFilter) ([]byte, error)
}

// Service handles saved outfit history.
type Service struct {
	historyRepo repository.HistoryRepository
	exporter    Exporter
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a new history service. exporter may be nil when
// spreadsheet export is not offered.
func NewService(historyRepo repository.HistoryRepository, exporter Exporter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		historyRepo: historyRepo,
		exporter:    exporter,
		logger:      logger,
		now:         time.Now,
	}
}

// SaveRequest is the payload of a history save.
type SaveRequest struct {
	UserID      *int64
	OutfitData  json.RawMessage
	WeatherInfo json.RawMessage
}

// ListRequest filters history queries. Dates are inclusive YYYY-MM-DD.
type ListRequest struct {
	UserID    *int64
	StartDate string
	EndDate   string
}

// Save stores an outfit under today's date.
func (s *Service) Save(ctx context.Context, req SaveRequest) (*entity.HistoryRecord, error) {
	if isBlankJSON(req.OutfitData) {
		return nil, common.InvalidArgumentError("请提供搭配数据")
	}
	if !json.Valid(req.OutfitData) || (!isBlankJSON(req.WeatherInfo) && !json.Valid(req.WeatherInfo)) {
		return nil, common.InvalidArgumentError("invalid JSON payload")
	}

	now := s.now()
	rec := &entity.HistoryRecord{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Date:       now.Format(constants.DateLayout),
		OutfitData: req.OutfitData,
		CreatedAt:  now.UTC(),
	}
	if !isBlankJSON(req.WeatherInfo) {
		rec.WeatherInfo = req.WeatherInfo
	}

	if err := s.historyRepo.Save(ctx, rec); err != nil {
		return nil, common.InternalErrorf("save outfit history: %v", err)
	}

	s.logger.Info("history saved", "history_id", rec.ID, "date", rec.Date)
	return rec, nil
}

// List returns the newest matching records.
func (s *Service) List(ctx context.Context, req ListRequest) ([]entity.HistoryRecord, error) {
	filter, err := toFilter(req)
	if err != nil {
		return nil, err
	}

	recs, err := s.historyRepo.List(ctx, filter)
	if err != nil {
		// DB error already logged in repository layer
		return nil, common.InternalErrorf("list outfit history: %v", err)
	}

	s.logger.Debug("history listed", "count", len(recs))
	return recs, nil
}

// Get looks a record up by its id.
func (s *Service) Get(ctx context.Context, id string) (*entity.HistoryRecord, error) {
	validator := common.NewValidator()
	validator.Field("id", id, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	rec, err := s.historyRepo.GetByID(ctx, uuid.MustParse(id))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, common.NotFoundError("历史记录不存在")
		}
		return nil, common.InternalErrorf("get outfit history: %v", err)
	}
	return rec, nil
}

// Export renders the matching records as an XLSX workbook.
func (s *Service) Export(ctx context.Context, req ListRequest) ([]byte, error) {
	if s.exporter == nil {
		return nil, common.FailedPreconditionError("export is not configured")
	}
	filter, err := toFilter(req)
	if err != nil {
		return nil, err
	}
	filter.Limit = exportLimit

	data, err := s.exporter.ExportHistoryXLSX(ctx, filter)
	if err != nil {
		return nil, common.InternalErrorf("export outfit history: %v", err)
	}
	return data, nil
}

func toFilter(req ListRequest) (repository.HistoryFilter, error) {
	start := strings.TrimSpace(req.StartDate)
	end := strings.TrimSpace(req.EndDate)

	validator := common.NewValidator()
	validator.Field("startDate", start, common.Date)
	validator.Field("endDate", end, common.Date)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return repository.HistoryFilter{}, err
	}
	// YYYY-MM-DD compares lexically
	if start != "" && end != "" && start > end {
		return repository.HistoryFilter{}, common.InvalidArgumentError("startDate must not be after endDate")
	}

	return repository.HistoryFilter{UserID: req.UserID, StartDate: start, EndDate: end}, nil
}

func isBlankJSON(raw json.RawMessage) bool {
	t := strings.TrimSpace(string(raw))
	return t == "" || t == "null"
}
