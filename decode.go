package ruff

import (
	"encoding/binary"
	"io"
	"os"
)

// DecodeBytes decodes a complete farbfeld image from data. It is
// all-or-nothing; no partial image is ever returned.
//
// Trailing bytes that do not form a complete final pixel are dropped, after
// which the pixel count must still match the dimensions declared in the
// header or ErrDimensions is returned.
func DecodeBytes(data []byte) (*Image, error) {
	if len(data) < len(Magic) {
		return nil, &IncompleteError{Needed: len(Magic) - len(data)}
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, ErrFormat
	}
	rest := data[len(Magic):]

	if len(rest) < 4 {
		return nil, &IncompleteError{Needed: 4 - len(rest)}
	}
	width := binary.BigEndian.Uint32(rest)
	rest = rest[4:]

	if len(rest) < 4 {
		return nil, &IncompleteError{Needed: 4 - len(rest)}
	}
	height := binary.BigEndian.Uint32(rest)
	rest = rest[4:]

	n := len(rest) / pixelSize
	if n == 0 && width > 0 && height > 0 {
		// Not even the first pixel is complete.
		return nil, &IncompleteError{Needed: pixelSize - len(rest)}
	}

	pixels := make([]Pixel, n)
	for i := range pixels {
		off := i * pixelSize
		pixels[i] = Pixel{
			R: binary.BigEndian.Uint16(rest[off:]),
			G: binary.BigEndian.Uint16(rest[off+2:]),
			B: binary.BigEndian.Uint16(rest[off+4:]),
			A: binary.BigEndian.Uint16(rest[off+6:]),
		}
	}

	return New(width, height, pixels)
}

// Decode reads r to completion and decodes the contents as a farbfeld
// image. Errors from r are returned verbatim.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeFile decodes the farbfeld image in the file at path.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
