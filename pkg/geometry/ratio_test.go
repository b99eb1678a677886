package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantWidth  int
		wantHeight int
		wantRatio  float64
	}{
		{name: "landscape", id: "9x6", wantWidth: 9, wantHeight: 6, wantRatio: 1.5},
		{name: "portrait", id: "6x9", wantWidth: 6, wantHeight: 9, wantRatio: 6.0 / 9.0},
		{name: "square", id: "10x10", wantWidth: 10, wantHeight: 10, wantRatio: 1.0},
		{name: "uppercase separator", id: "4X6", wantWidth: 4, wantHeight: 6, wantRatio: 4.0 / 6.0},
		{name: "multi digit", id: "13x18", wantWidth: 13, wantHeight: 18, wantRatio: 13.0 / 18.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := ParseSize(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, size.Width)
			assert.Equal(t, tt.wantHeight, size.Height)
			assert.InDelta(t, tt.wantRatio, size.Ratio(), 1e-12)
		})
	}
}

func TestParseSizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "empty", id: "", wantErr: ErrInvalidFormat},
		{name: "missing height", id: "9x", wantErr: ErrInvalidFormat},
		{name: "missing width", id: "x6", wantErr: ErrInvalidFormat},
		{name: "negative", id: "-9x6", wantErr: ErrInvalidFormat},
		{name: "decimal", id: "9.5x6", wantErr: ErrInvalidFormat},
		{name: "words", id: "ninexsix", wantErr: ErrInvalidFormat},
		{name: "trailing junk", id: "9x6 ", wantErr: ErrInvalidFormat},
		{name: "zero height", id: "9x0", wantErr: ErrDegenerateRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSize(tt.id)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSizeRoundTrip(t *testing.T) {
	for w := 1; w <= 20; w++ {
		for h := 1; h <= 20; h++ {
			id := fmt.Sprintf("%dx%d", w, h)
			size, err := ParseSize(id)
			require.NoError(t, err, id)
			assert.Equal(t, id, size.String())
			assert.InDelta(t, float64(w)/float64(h), size.Ratio(), 1e-12, id)
		}
	}
}

func TestValidateSize(t *testing.T) {
	assert.True(t, ValidateSize("9x6"))
	assert.True(t, ValidateSize("4X6"))
	assert.False(t, ValidateSize("9x0"))
	assert.False(t, ValidateSize("9×6")) // unicode multiplication sign
	assert.False(t, ValidateSize(""))
	assert.False(t, ValidateSize("a4"))
}
