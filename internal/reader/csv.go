package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/data-alchemy/backend/internal/common"
)

type csvTable struct {
	file   *os.File
	reader *csv.Reader
	header []string
	total  int64
	done   bool
}

// openCSV streams a CSV file. The file is scanned once up front to learn
// the data row count (progress reporting needs a total), then reopened for
// the streaming pass.
func openCSV(path string) (*csvTable, error) {
	total, header, err := scanCSV(path)
	if err != nil {
		return nil, err
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedSource, err)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	// Skip the header row; scanCSV already captured it.
	if _, err := r.Read(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: reading header: %v", common.ErrMalformedSource, err)
	}

	return &csvTable{
		file:   f,
		reader: r,
		header: trimHeader(header),
		total:  total,
	}, nil
}

// scanCSV counts data rows and captures the header in one cheap pass.
func scanCSV(path string) (int64, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", common.ErrMalformedSource, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil, fmt.Errorf("%w: file is empty", common.ErrMalformedSource)
		}
		return 0, nil, fmt.Errorf("%w: %v", common.ErrMalformedSource, err)
	}
	captured := make([]string, len(header))
	copy(captured, header)

	var total int64
	for {
		if _, err := r.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, nil, fmt.Errorf("%w: row %d: %v", common.ErrMalformedSource, total+1, err)
		}
		total++
	}
	return total, captured, nil
}

func (t *csvTable) Header() []string { return t.header }

func (t *csvTable) TotalRows() int64 { return t.total }

func (t *csvTable) Next(max int) ([][]string, error) {
	if t.done || max <= 0 {
		return nil, nil
	}
	rows := make([][]string, 0, max)
	for len(rows) < max {
		record, err := t.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.done = true
				break
			}
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedSource, err)
		}
		rows = append(rows, normalizeRow(record, len(t.header)))
	}
	return rows, nil
}

func (t *csvTable) Close() error {
	return t.file.Close()
}
