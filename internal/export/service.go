// Package export produces CSV and XLSX snapshots of a dataset's current
// values.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/entity"
	"github.com/data-alchemy/backend/internal/repository"
)

// pageSize bounds how many rows are held in memory per fetch.
const pageSize = 1000

// Service walks a dataset page by page and writes it out in the requested
// format.
type Service struct {
	columns repository.ColumnRepository
	rows    repository.RowRepository
	dir     string
	logger  *slog.Logger
}

func NewService(columns repository.ColumnRepository, rows repository.RowRepository, dir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{columns: columns, rows: rows, dir: dir, logger: logger}
}

// Export writes the dataset to a file in the export directory and returns
// its path. Values come out exactly as stored; the empty string stands for
// null in both formats.
func (s *Service) Export(ctx context.Context, dataset *entity.Dataset, format constants.FileType) (string, error) {
	start := time.Now()

	columns, err := s.columns.ListByDataset(ctx, dataset.ID)
	if err != nil {
		return "", fmt.Errorf("loading columns: %w", err)
	}
	if len(columns) == 0 {
		return "", fmt.Errorf("dataset %s has no columns", dataset.ID)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	var path string
	var rows int
	switch format {
	case constants.FileTypeExcel:
		path = s.exportPath(dataset, "xlsx")
		rows, err = s.writeXLSX(ctx, dataset, columns, path)
	default:
		path = s.exportPath(dataset, "csv")
		rows, err = s.writeCSV(ctx, dataset, columns, path)
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}

	s.logger.Info("export.ok",
		"dataset_id", dataset.ID.String(),
		"format", string(format),
		"rows", rows,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}

func (s *Service) exportPath(dataset *entity.Dataset, ext string) string {
	name := fmt.Sprintf("%s-%s.%s", dataset.Name, dataset.ID.String()[:8], ext)
	return filepath.Join(s.dir, name)
}

// eachPage walks all rows of the dataset in index order, invoking fn with
// each rendered record.
func (s *Service) eachPage(ctx context.Context, dataset *entity.Dataset, columns []*entity.Column, fn func(record []string) error) (int, error) {
	total := 0
	for offset := 0; ; offset += pageSize {
		page, err := s.rows.Page(ctx, dataset.ID, offset, pageSize)
		if err != nil {
			return total, fmt.Errorf("loading rows at %d: %w", offset, err)
		}
		if len(page.Rows) == 0 {
			return total, nil
		}

		for _, row := range page.Rows {
			record := make([]string, len(columns))
			cells := page.Values[row.ID]
			for i, col := range columns {
				record[i] = cells[col.ID]
			}
			if err := fn(record); err != nil {
				return total, err
			}
			total++
		}

		if len(page.Rows) < pageSize {
			return total, nil
		}
	}
}

func (s *Service) writeCSV(ctx context.Context, dataset *entity.Dataset, columns []*entity.Column, path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	rows, err := s.eachPage(ctx, dataset, columns, w.Write)
	if err != nil {
		return rows, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return rows, fmt.Errorf("flushing csv: %w", err)
	}
	return rows, f.Close()
}

func (s *Service) writeXLSX(ctx context.Context, dataset *entity.Dataset, columns []*entity.Column, path string) (int, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col.Name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	line := 2
	rows, err := s.eachPage(ctx, dataset, columns, func(record []string) error {
		values := make([]any, len(record))
		for i, v := range record {
			values[i] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, line)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		line++
		return nil
	})
	if err != nil {
		return rows, err
	}

	if err := f.SaveAs(path); err != nil {
		return rows, fmt.Errorf("xlsx write: %w", err)
	}
	return rows, nil
}
