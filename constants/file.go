package constants

import (
	"path/filepath"
	"strings"
)

// FileType is the declared source kind stored on a dataset.
type FileType string

const (
	FileTypeCSV   FileType = "CSV"
	FileTypeExcel FileType = "EXCEL"
)

// FileTypes holds the allowed values for the dataset file_type field.
var FileTypes = []string{string(FileTypeCSV), string(FileTypeExcel)}

// AllowedExtensions holds the file extensions accepted for dataset uploads.
var AllowedExtensions = map[string]struct{}{
	"csv":  {},
	"xlsx": {},
	"xls":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FileTypeForPath maps a source path to its FileType.
// Returns false for extensions outside AllowedExtensions.
func FileTypeForPath(path string) (FileType, bool) {
	switch NormalizeExt(filepath.Ext(path)) {
	case "csv":
		return FileTypeCSV, true
	case "xlsx", "xls":
		return FileTypeExcel, true
	default:
		return "", false
	}
}
