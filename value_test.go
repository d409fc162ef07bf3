package bcftab_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/bcftab"
)

func TestFormatCoordinate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"nil pointer", (*float64)(nil), ""},
		{"pointer", fp(1.23456), "1.235"},
		{"float64", 1.23456, "1.235"},
		{"float32", float32(2.5), "2.500"},
		{"int", 7, "7.000"},
		{"int64", int64(-3), "-3.000"},
		{"zero", 0.0, "0.000"},
		{"numeric string", "1.23456", "1.235"},
		{"padded numeric string", "  4.2  ", "4.200"},
		{"empty string", "", ""},
		{"blank string", "   ", ""},
		{"non-numeric string", "north", ""},
		{"nan", math.NaN(), ""},
		{"inf", math.Inf(1), ""},
		{"bool", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bcftab.FormatCoordinate(tt.in))
		})
	}
}

// Formatting an already-formatted coordinate must not change it.
func TestFormatCoordinateIdempotent(t *testing.T) {
	t.Parallel()
	once := bcftab.FormatCoordinate(1.23456)
	assert.Equal(t, once, bcftab.FormatCoordinate(once))
}

func TestFormatDateISO(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339", "2024-01-02T15:04:05Z", "2024-01-02"},
		{"rfc3339 offset", "2024-01-02T15:04:05+02:00", "2024-01-02"},
		{"no zone", "2024-01-02T15:04:05", "2024-01-02"},
		{"space separated", "2024-01-02 15:04:05", "2024-01-02"},
		{"date only", "2024-01-02", "2024-01-02"},
		{"empty", "", ""},
		{"unparseable passes through", "sometime last week", "sometime last week"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bcftab.FormatDateISO(tt.in))
		})
	}
}
