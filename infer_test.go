package argmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0", int64(0)},
		{"3.14", 3.14},
		{"-0.5", -0.5},
		// Floats without a fractional part narrow to integers.
		{"3.0", int64(3)},
		{"1e3", int64(1000)},
		{"1.5e-2", 0.015},
		{"None", nil},
		{"null", nil},
		{"~", nil},
		{"True", true},
		{"true", true},
		{"FALSE", false},
		{"False", false},
		// yes/no/on/off are literal strings in this domain, never booleans.
		{"yes", "yes"},
		{"Yes", "Yes"},
		{"no", "no"},
		{"on", "on"},
		{"off", "off"},
		{"OFF", "OFF"},
		{"hello", "hello"},
		{"0x10", "0x10"},
		{"1.2.3", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.raw))
		})
	}
}
