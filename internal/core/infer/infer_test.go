package infer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/data-alchemy/backend/constants"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		values     []string
		incoming   constants.DataType
		wantType   constants.DataType
		wantValues []string
	}{
		{
			name:       "all integers",
			values:     []string{"123", "456", "789"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeInteger,
			wantValues: []string{"123", "456", "789"},
		},
		{
			name:       "integers with thousands separators",
			values:     []string{"1,000", "2,000", "3"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeInteger,
			wantValues: []string{"1000", "2000", "3"},
		},
		{
			name:       "integral floats count as integers",
			values:     []string{"5.0", "6.0", "7"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeInteger,
			wantValues: []string{"5", "6", "7"},
		},
		{
			name:       "one fractional value makes the batch float",
			values:     []string{"123", "45.6", "789"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeFloat,
			wantValues: []string{"123", "45.6", "789"},
		},
		{
			name:       "scientific notation",
			values:     []string{"1e10", "2.5e-3", "3.14e2"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeFloat,
			wantValues: []string{"1e+10", "0.0025", "314"},
		},
		{
			name:       "boolean words",
			values:     []string{"yes", "no", "YES", " no "},
			incoming:   constants.TypeText,
			wantType:   constants.TypeBoolean,
			wantValues: []string{"true", "false", "true", "false"},
		},
		{
			name:       "numeric booleans",
			values:     []string{"1", "0", "1"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeBoolean,
			wantValues: []string{"true", "false", "true"},
		},
		{
			name:       "three distinct boolean words fall through",
			values:     []string{"yes", "no", "on"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeText,
			wantValues: []string{"yes", "no", "on"},
		},
		{
			name:       "ISO dates",
			values:     []string{"2023-01-15", "2023-02-20"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeDatetime,
			wantValues: []string{"2023-01-15 00:00:00", "2023-02-20 00:00:00"},
		},
		{
			name:       "datetimes with time component",
			values:     []string{"2023-01-15 10:30:00", "2023-02-20 14:45:30"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeDatetime,
			wantValues: []string{"2023-01-15 10:30:00", "2023-02-20 14:45:30"},
		},
		{
			name:       "mixed numbers and text",
			values:     []string{"123", "hello", "789"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeText,
			wantValues: []string{"123", "hello", "789"},
		},
		{
			name:       "entirely null batch is text",
			values:     []string{"", "  ", ""},
			incoming:   constants.TypeInteger,
			wantType:   constants.TypeText,
			wantValues: []string{"", "", ""},
		},
		{
			name:       "nulls store as empty markers",
			values:     []string{"1", "", "3"},
			incoming:   constants.TypeText,
			wantType:   constants.TypeInteger,
			wantValues: []string{"1", "", "3"},
		},
		{
			name:       "all-text chunk overrides numeric incoming type",
			values:     []string{"alpha", "beta"},
			incoming:   constants.TypeInteger,
			wantType:   constants.TypeText,
			wantValues: []string{"alpha", "beta"},
		},
		{
			name:       "integral batch keeps incoming float type",
			values:     []string{"1", "2", "3"},
			incoming:   constants.TypeFloat,
			wantType:   constants.TypeFloat,
			wantValues: []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, gotType := Chunk(tt.values, tt.incoming)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantValues, got)
		})
	}
}

func TestChunkCategorical(t *testing.T) {
	t.Parallel()

	// 36 non-null values, 3 distinct: unique <= 10, unique < 0.2*36, n >= 30.
	values := make([]string, 0, 36)
	for i := 0; i < 36; i++ {
		values = append(values, []string{"red", "green", "blue"}[i%3])
	}
	got, gotType := Chunk(values, constants.TypeText)
	assert.Equal(t, constants.TypeCategory, gotType)
	assert.Equal(t, values, got, "categorical classification must not rewrite values")

	// Too few samples for the ratio to mean anything.
	_, gotType = Chunk(values[:12], constants.TypeText)
	assert.Equal(t, constants.TypeText, gotType)
}

func TestChunkIntegerRoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{"1,234,567", "-42", "9223372036854775807", "0"}
	canonical, gotType := Chunk(values, constants.TypeText)
	require.Equal(t, constants.TypeInteger, gotType)

	// Canonical values parse and render back to themselves.
	again, againType := Chunk(canonical, gotType)
	assert.Equal(t, constants.TypeInteger, againType)
	assert.Equal(t, canonical, again)
}

func TestChunkLastChunkWins(t *testing.T) {
	t.Parallel()

	// A numeric first chunk settles Integer, but an all-text final chunk
	// re-resolves the column to Text.
	_, first := Chunk([]string{"1", "2", "3"}, constants.TypeText)
	require.Equal(t, constants.TypeInteger, first)

	_, second := Chunk([]string{"one", "two"}, first)
	assert.Equal(t, constants.TypeText, second)
}

func TestParseInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{"1,000", 1000, true},
		{" 7 ", 7, true},
		{"5.0", 5, true},
		{"5.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"9223372036854775807", 9223372036854775807, true},
		{"1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			t.Parallel()
			got, ok := ParseInteger(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDatetime(t *testing.T) {
	t.Parallel()

	valid := []string{
		"2023-01-15",
		"2023-01-15T10:30:00",
		"2023-01-15T10:30:00Z",
		"2023-01-15 10:30:00",
		"1/15/2023",
		"15.01.2023",
	}
	for _, v := range valid {
		_, ok := ParseDatetime(v)
		assert.True(t, ok, "expected %q to parse", v)
	}

	invalid := []string{"", "hello", "2023", "123456", "13.45"}
	for _, v := range invalid {
		_, ok := ParseDatetime(v)
		assert.False(t, ok, "expected %q to be rejected", v)
	}
}
