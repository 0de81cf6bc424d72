package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCuidGenerator_NewIDIsCUID(t *testing.T) {
	gen := NewIDGenerator()

	first := gen.NewID()
	second := gen.NewID()

	assert.True(t, IsCUID(first), first)
	assert.True(t, IsCUID(second), second)
	assert.NotEqual(t, first, second)
}

func TestIsCUID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "cm5i6f2w800020cjyfyeacpc9", want: true},
		{in: "CM5I6F2W800020CJYFYEACPC9", want: true},
		{in: "c12345678", want: true},
		{in: "c1234567", want: false},
		{in: "x5i6f2w800020cjyfyeacpc9", want: false},
		{in: "cm5i6f2w8-0020cjyfyeacpc9", want: false},
		{in: "cm5i6f2w8 0020cjyfyeacpc9", want: false},
		{in: "", want: false},
		{in: "salah", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCUID(tt.in))
		})
	}
}
