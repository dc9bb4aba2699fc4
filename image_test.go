package ruff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tables := []struct {
		name    string
		width   uint32
		height  uint32
		pixels  int
		invalid bool
	}{
		{"zero size", 0, 0, 0, false},
		{"single pixel", 1, 1, 1, false},
		{"rectangular", 3, 2, 6, false},
		{"too few pixels", 10, 10, 0, true},
		{"too many pixels", 1, 1, 2, true},
		{"zero width", 0, 5, 1, true},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			m, err := New(table.width, table.height, make([]Pixel, table.pixels))
			if table.invalid {
				assert.Equal(t, ErrDimensions, err)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, table.width, m.Width())
			assert.Equal(t, table.height, m.Height())
			assert.Len(t, m.Pixels(), table.pixels)
		})
	}
}

func TestNewNilPixels(t *testing.T) {
	m, err := New(0, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, m.Pixels())
}

// The product of the dimensions must not be truncated to 32 bits before
// comparing it against the pixel count.
func TestNewOverflow(t *testing.T) {
	_, err := New(1<<16, 1<<16, nil)
	assert.Equal(t, ErrDimensions, err)
}

func TestRow(t *testing.T) {
	pixels := []Pixel{
		NewPixel(1, 0, 0, 0), NewPixel(2, 0, 0, 0),
		NewPixel(3, 0, 0, 0), NewPixel(4, 0, 0, 0),
	}
	m, err := New(2, 2, pixels)
	require.NoError(t, err)

	assert.Equal(t, pixels[0:2], m.Row(0))
	assert.Equal(t, pixels[2:4], m.Row(1))
	assert.Nil(t, m.Row(2))
}

func TestRowZeroHeight(t *testing.T) {
	m, err := New(0, 0, nil)
	require.NoError(t, err)
	assert.Nil(t, m.Row(0))
}

func TestRowSharesStorage(t *testing.T) {
	m, err := New(2, 2, make([]Pixel, 4))
	require.NoError(t, err)

	m.Row(1)[0].G = 42
	assert.Equal(t, uint16(42), m.At(2).G)
}

func TestPixelsMutation(t *testing.T) {
	m, err := New(2, 1, make([]Pixel, 2))
	require.NoError(t, err)

	m.Pixels()[1].R = 7
	assert.Equal(t, NewPixel(7, 0, 0, 0), m.At(1))
}

func TestAtOutOfRange(t *testing.T) {
	m, err := New(1, 1, make([]Pixel, 1))
	require.NoError(t, err)

	assert.Panics(t, func() { m.At(1) })
	assert.Panics(t, func() { _ = m.Pixels()[2:] })
}
