// Package reader opens tabular source files and yields their rows in
// original order, chunkable at an arbitrary row count. CSV sources stream;
// spreadsheet sources load in full behind the same interface.
package reader

import (
	"fmt"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/common"
)

// Table is an open tabular source. Header is available immediately after
// Open; Next yields up to max data rows per call, in file order, returning
// an empty slice once the source is exhausted. Rows are padded or truncated
// to the header width.
type Table interface {
	Header() []string
	Next(max int) ([][]string, error)
	TotalRows() int64
	Close() error
}

// Open dispatches on the declared file kind. Unsupported kinds fail fast
// before any column metadata is created.
func Open(path string, fileType constants.FileType) (Table, error) {
	switch fileType {
	case constants.FileTypeCSV:
		return openCSV(path)
	case constants.FileTypeExcel:
		return openExcel(path)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFileType, string(fileType))
	}
}

// normalizeRow pads or truncates a raw row to the header width.
func normalizeRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
