package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/repository"
)

const sheet = "History"

var headers = []string{
	"Date",
	"Saved At",
	"User",
	"Outfit",
	"Top",
	"Bottom",
	"Outerwear",
	"Shoes",
	"Accessories",
	"Weather",
	"Record ID",
}

// Service renders saved outfit history as an XLSX workbook.
type Service struct {
	historyRepo repository.HistoryRepository
	logger      *slog.Logger
}

func NewService(repo repository.HistoryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{historyRepo: repo, logger: logger}
}

// ExportHistoryXLSX returns the workbook bytes for the records matching
// filter. Rows follow the repository order, newest first.
func (s *Service) ExportHistoryXLSX(ctx context.Context, filter repository.HistoryFilter) ([]byte, error) {
	start := time.Now()

	recs, err := s.historyRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	buf, err := Workbook(recs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// Workbook lays out one row per record under a header row.
func Workbook(recs []entity.HistoryRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range recs {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Date)
		write(2, r.CreatedAt.UTC().Format(time.RFC3339))
		if r.UserID != nil {
			write(3, strconv.FormatInt(*r.UserID, 10))
		}

		outfit, ok := decodeScheme(r.OutfitData)
		if ok {
			write(4, truncate(outfit.Description, 140))
			for j, slot := range constants.AllSlots {
				write(5+j, garmentCell(outfit.Get(slot)))
			}
		} else {
			write(4, truncate(string(r.OutfitData), 140))
		}

		write(10, weatherCell(r.WeatherInfo))
		write(11, r.ID.String())
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 22) // saved at
	_ = f.SetColWidth(sheet, "C", "C", 10) // user
	_ = f.SetColWidth(sheet, "D", "D", 40) // outfit
	_ = f.SetColWidth(sheet, "E", "I", 24) // slots
	_ = f.SetColWidth(sheet, "J", "J", 28) // weather
	_ = f.SetColWidth(sheet, "K", "K", 38) // id

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf, nil
}

// decodeScheme reads outfit data saved in the OutfitScheme shape. Anything
// else is exported as raw JSON.
func decodeScheme(raw json.RawMessage) (entity.OutfitScheme, bool) {
	var s entity.OutfitScheme
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return s, false
	}
	if s.Top == nil && s.Bottom == nil && s.Shoes == nil && s.Description == "" {
		return s, false
	}
	return s, true
}

func garmentCell(g *entity.GarmentRef) string {
	if g == nil {
		return ""
	}
	return g.Name + " (" + g.Color + ")"
}

func weatherCell(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var w entity.WeatherReading
	if err := json.Unmarshal(raw, &w); err != nil {
		return truncate(string(raw), 140)
	}
	if w.WeatherType == "" && w.Description == "" {
		return strconv.FormatFloat(w.Temperature, 'f', 1, 64) + "°C"
	}
	return fmt.Sprintf("%s %.1f°C", w.WeatherType, w.Temperature)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
