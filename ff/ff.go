/*
Package ff registers the farbfeld format with the standard library image
package and converts between farbfeld images and image.Image.

Farbfeld stores four 16-bit channels per pixel with the alpha channel not
premultiplied, so images decode to *image.NRGBA64 whose Pix layout is
byte-identical to the farbfeld pixel array.
*/
package ff

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/themadprofessor/ruff"
)

// Decode reads a farbfeld image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	m, err := ruff.Decode(r)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA64(image.Rect(0, 0, int(m.Width()), int(m.Height())))
	for i, p := range m.Pixels() {
		off := i * 8
		binary.BigEndian.PutUint16(img.Pix[off:], p.R)
		binary.BigEndian.PutUint16(img.Pix[off+2:], p.G)
		binary.BigEndian.PutUint16(img.Pix[off+4:], p.B)
		binary.BigEndian.PutUint16(img.Pix[off+6:], p.A)
	}

	return img, nil
}

// DecodeConfig returns the color model and dimensions of a farbfeld image
// without decoding any pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var tmp [16]byte
	n, err := io.ReadFull(r, tmp[:])
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return image.Config{}, &ruff.IncompleteError{Needed: len(tmp) - n}
	}
	if err != nil {
		return image.Config{}, err
	}
	if string(tmp[:len(ruff.Magic)]) != ruff.Magic {
		return image.Config{}, ruff.ErrFormat
	}
	return image.Config{
		ColorModel: color.NRGBA64Model,
		Width:      int(binary.BigEndian.Uint32(tmp[8:12])),
		Height:     int(binary.BigEndian.Uint32(tmp[12:16])),
	}, nil
}

// Encode writes the image m to w in farbfeld format. Colors are converted
// through the NRGBA64 color model.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	pixels := make([]ruff.Pixel, 0, b.Dx()*b.Dy())

	if src, ok := m.(*image.NRGBA64); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := src.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				pixels = append(pixels, ruff.Pixel{
					R: binary.BigEndian.Uint16(src.Pix[off:]),
					G: binary.BigEndian.Uint16(src.Pix[off+2:]),
					B: binary.BigEndian.Uint16(src.Pix[off+4:]),
					A: binary.BigEndian.Uint16(src.Pix[off+6:]),
				})
				off += 8
			}
		}
	} else {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBA64Model.Convert(m.At(x, y)).(color.NRGBA64)
				pixels = append(pixels, ruff.NewPixel(c.R, c.G, c.B, c.A))
			}
		}
	}

	img, err := ruff.New(uint32(b.Dx()), uint32(b.Dy()), pixels)
	if err != nil {
		return err
	}
	return img.Encode(w)
}

func init() {
	image.RegisterFormat("farbfeld", ruff.Magic, Decode, DecodeConfig)
}
