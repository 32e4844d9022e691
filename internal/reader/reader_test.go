package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/common"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenCSV(t *testing.T) {
	t.Parallel()

	path := writeTempCSV(t, "id,name,score\n1,alice,90\n2,bob,85\n3,carol,\n")
	table, err := Open(path, constants.FileTypeCSV)
	require.NoError(t, err)
	defer func() { _ = table.Close() }()

	assert.Equal(t, []string{"id", "name", "score"}, table.Header())
	assert.Equal(t, int64(3), table.TotalRows())

	rows, err := table.Next(2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "alice", "90"}, rows[0])

	rows, err = table.Next(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"3", "carol", ""}, rows[0])

	rows, err = table.Next(10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOpenCSVChunking(t *testing.T) {
	t.Parallel()

	content := "n\n"
	for i := 0; i < 25; i++ {
		content += fmt.Sprintf("%d\n", i)
	}
	table, err := Open(writeTempCSV(t, content), constants.FileTypeCSV)
	require.NoError(t, err)
	defer func() { _ = table.Close() }()

	assert.Equal(t, int64(25), table.TotalRows())

	var seen int
	for {
		rows, err := table.Next(10)
		require.NoError(t, err)
		if len(rows) == 0 {
			break
		}
		seen += len(rows)
	}
	assert.Equal(t, 25, seen)
}

func TestOpenCSVRaggedRows(t *testing.T) {
	t.Parallel()

	path := writeTempCSV(t, "a,b,c\n1,2\n4,5,6,7\n")
	table, err := Open(path, constants.FileTypeCSV)
	require.NoError(t, err)
	defer func() { _ = table.Close() }()

	rows, err := table.Next(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "2", ""}, rows[0])
	assert.Equal(t, []string{"4", "5", "6"}, rows[1])
}

func TestOpenCSVHeaderValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"empty column name", "a,,c\n1,2,3\n"},
		{"duplicate column names", "a,b,a\n1,2,3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Open(writeTempCSV(t, tt.content), constants.FileTypeCSV)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMalformedSource)
		})
	}
}

func TestOpenUnsupportedKind(t *testing.T) {
	t.Parallel()

	_, err := Open("whatever.parquet", constants.FileType("PARQUET"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFileType)
}

func TestOpenExcel(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]any{
		{"id", "city"},
		{1, "london"},
		{2, "paris"},
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := Open(path, constants.FileTypeExcel)
	require.NoError(t, err)
	defer func() { _ = table.Close() }()

	assert.Equal(t, []string{"id", "city"}, table.Header())
	assert.Equal(t, int64(2), table.TotalRows())

	rows, err := table.Next(10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "london"}, rows[0])
	assert.Equal(t, []string{"2", "paris"}, rows[1])
}
