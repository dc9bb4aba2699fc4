package ff

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themadprofessor/ruff"
)

// 2x1 image; an opaque red pixel then a half transparent green one
var twoPixel = []byte{
	'f', 'a', 'r', 'b', 'f', 'e', 'l', 'd',
	0, 0, 0, 2,
	0, 0, 0, 1,
	0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff,
	0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0x7f, 0xff,
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(twoPixel))
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA64)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 2, 1), nrgba.Bounds())

	assert.Equal(t, color.NRGBA64{R: 0xffff, A: 0xffff}, nrgba.NRGBA64At(0, 0))
	assert.Equal(t, color.NRGBA64{G: 0xffff, A: 0x7fff}, nrgba.NRGBA64At(1, 0))
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a farbfeld image")))
	assert.Equal(t, ruff.ErrFormat, err)
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(bytes.NewReader(twoPixel[:16]))
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA64Model, cfg.ColorModel)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 1, cfg.Height)
}

func TestDecodeConfigShort(t *testing.T) {
	_, err := DecodeConfig(bytes.NewReader(twoPixel[:10]))

	var incomplete *ruff.IncompleteError
	require.True(t, errors.As(err, &incomplete), "got %v", err)
	assert.Equal(t, 6, incomplete.Needed)
}

func TestEncode(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	img.SetNRGBA64(0, 0, color.NRGBA64{R: 0xffff, A: 0xffff})
	img.SetNRGBA64(1, 0, color.NRGBA64{G: 0xffff, A: 0x7fff})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	assert.Equal(t, twoPixel, buf.Bytes())
}

// Images in other color models are converted without premultiplying, with
// 8-bit channels widened to 16 bits.
func TestEncodeConverts(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xab, G: 0x01, B: 0x00, A: 0x80})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))

	m, err := ruff.DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, ruff.NewPixel(0xabab, 0x0101, 0x0000, 0x8080), m.At(0))
}

// A subimage not anchored at the origin still encodes its own bounds only.
func TestEncodeSubImage(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 4, 4))
	img.SetNRGBA64(2, 2, color.NRGBA64{B: 0xffff, A: 0xffff})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img.SubImage(image.Rect(2, 2, 4, 4))))

	m, err := ruff.DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint32(2), m.Width())
	assert.Equal(t, uint32(2), m.Height())
	assert.Equal(t, ruff.NewPixel(0, 0, 0xffff, 0xffff), m.At(0))
}

func TestRegistered(t *testing.T) {
	img, format, err := image.Decode(bytes.NewReader(twoPixel))
	require.NoError(t, err)
	assert.Equal(t, "farbfeld", format)
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())

	cfg, format, err := image.DecodeConfig(bytes.NewReader(twoPixel))
	require.NoError(t, err)
	assert.Equal(t, "farbfeld", format)
	assert.Equal(t, 2, cfg.Width)
}

func TestRoundTrip(t *testing.T) {
	img, err := Decode(bytes.NewReader(twoPixel))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	assert.Equal(t, twoPixel, buf.Bytes())
}
