package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/data-alchemy/backend/internal/common"
)

type excelTable struct {
	header []string
	rows   [][]string
	cursor int
}

// openExcel loads the first sheet of a workbook in full. Spreadsheets have
// no streaming parser here; the interface isolates that trade-off so a
// streaming implementation can replace this one without touching callers.
func openExcel(path string) (*excelTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedSource, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", common.ErrMalformedSource)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", common.ErrMalformedSource, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file is empty", common.ErrMalformedSource)
	}

	header := rows[0]
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	width := len(header)
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		data = append(data, normalizeRow(row, width))
	}

	return &excelTable{
		header: trimHeader(header),
		rows:   data,
	}, nil
}

func (t *excelTable) Header() []string { return t.header }

func (t *excelTable) TotalRows() int64 { return int64(len(t.rows)) }

func (t *excelTable) Next(max int) ([][]string, error) {
	if t.cursor >= len(t.rows) || max <= 0 {
		return nil, nil
	}
	end := t.cursor + max
	if end > len(t.rows) {
		end = len(t.rows)
	}
	chunk := t.rows[t.cursor:end]
	t.cursor = end
	return chunk, nil
}

func (t *excelTable) Close() error { return nil }
