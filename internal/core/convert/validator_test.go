package convert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/data-alchemy/backend/constants"
)

func TestValidateEmptyColumn(t *testing.T) {
	t.Parallel()

	targets := []constants.DataType{
		constants.TypeText,
		constants.TypeInteger,
		constants.TypeFloat,
		constants.TypeBoolean,
		constants.TypeDatetime,
		constants.TypeCategory,
	}
	for _, target := range targets {
		feasible, reason := Validate(nil, target)
		assert.True(t, feasible, "empty column should convert to %s", target)
		assert.Empty(t, reason)

		feasible, _ = Validate([]string{"", "  ", ""}, target)
		assert.True(t, feasible, "all-null column should convert to %s", target)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		values       []string
		target       constants.DataType
		wantFeasible bool
		wantInReason string
	}{
		{
			name:         "integers with thousands separators",
			values:       []string{"1,000", "2,000", "3"},
			target:       constants.TypeInteger,
			wantFeasible: true,
		},
		{
			name:         "fractional value blocks integer",
			values:       []string{"1", "2.5"},
			target:       constants.TypeInteger,
			wantFeasible: false,
			wantInReason: `"2.5"`,
		},
		{
			name:         "floats accept exponent notation",
			values:       []string{"1.5", "2e3", "-0.25"},
			target:       constants.TypeFloat,
			wantFeasible: true,
		},
		{
			name:         "float overflow rejected",
			values:       []string{"1.5", "1e400"},
			target:       constants.TypeFloat,
			wantFeasible: false,
			wantInReason: `"1e400"`,
		},
		{
			name:         "boolean vocabulary",
			values:       []string{"true", "NO", " on ", "0"},
			target:       constants.TypeBoolean,
			wantFeasible: true,
		},
		{
			name:         "unrecognized boolean word",
			values:       []string{"true", "maybe"},
			target:       constants.TypeBoolean,
			wantFeasible: false,
			wantInReason: `"maybe"`,
		},
		{
			name:         "datetimes in range",
			values:       []string{"2023-01-15", "1/15/2023 10:30:00"},
			target:       constants.TypeDatetime,
			wantFeasible: true,
		},
		{
			name:         "datetime below year range",
			values:       []string{"0999-01-01"},
			target:       constants.TypeDatetime,
			wantFeasible: false,
			wantInReason: "year 999",
		},
		{
			name:         "unparseable datetime",
			values:       []string{"2023-01-15", "someday"},
			target:       constants.TypeDatetime,
			wantFeasible: false,
			wantInReason: `"someday"`,
		},
		{
			name:         "text always feasible",
			values:       []string{"anything", "at", "all"},
			target:       constants.TypeText,
			wantFeasible: true,
		},
		{
			name:         "unsupported target type",
			values:       []string{"x"},
			target:       constants.DataType("BLOB"),
			wantFeasible: false,
			wantInReason: "unsupported target type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			feasible, reason := Validate(tt.values, tt.target)
			assert.Equal(t, tt.wantFeasible, feasible)
			if tt.wantInReason != "" {
				assert.Contains(t, reason, tt.wantInReason)
			}
		})
	}
}

func TestValidateReasonNamesAtMostFiveValues(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b", "c", "d", "e", "f", "g"}
	feasible, reason := Validate(values, constants.TypeInteger)
	assert.False(t, feasible)
	assert.Contains(t, reason, `"e"`)
	assert.NotContains(t, reason, `"f"`)
	assert.NotContains(t, reason, `"g"`)
}

func TestValidateCategoryDistinctCeiling(t *testing.T) {
	t.Parallel()

	values := make([]string, 0, 101)
	for i := 0; i < 101; i++ {
		values = append(values, fmt.Sprintf("cat-%03d", i))
	}
	feasible, reason := Validate(values, constants.TypeCategory)
	assert.False(t, feasible)
	assert.Contains(t, reason, "101 distinct values")
}

func TestValidateCategoryRareValues(t *testing.T) {
	t.Parallel()

	// 200 rows: two categories at 49.75% each, one lone value at 0.5%.
	values := make([]string, 0, 200)
	for i := 0; i < 199; i++ {
		values = append(values, []string{"red", "blue"}[i%2])
	}
	values = append(values, "once")

	feasible, reason := Validate(values, constants.TypeCategory)
	assert.False(t, feasible)
	assert.Contains(t, reason, `"once"`)

	// Without the rare value the split is clean.
	feasible, _ = Validate(values[:198], constants.TypeCategory)
	assert.True(t, feasible)
}
