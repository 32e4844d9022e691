package constants

import "strings"

// DataType is the semantic type vocabulary for dataset columns.
type DataType string

const (
	TypeText     DataType = "TEXT"
	TypeInteger  DataType = "INTEGER"
	TypeFloat    DataType = "FLOAT"
	TypeBoolean  DataType = "BOOLEAN"
	TypeDatetime DataType = "DATETIME"
	TypeCategory DataType = "CATEGORY"
)

var allDataTypes = []DataType{
	TypeText,
	TypeInteger,
	TypeFloat,
	TypeBoolean,
	TypeDatetime,
	TypeCategory,
}

// DataTypes holds the allowed values for column type fields.
var DataTypes = func() []string {
	result := make([]string, len(allDataTypes))
	for i, t := range allDataTypes {
		result[i] = string(t)
	}
	return result
}()

// ParseDataType canonicalizes a user-supplied type name.
// Accepts any casing; returns false for unknown names.
func ParseDataType(input string) (DataType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, t := range allDataTypes {
		if normalized == string(t) {
			return t, true
		}
	}
	return "", false
}
