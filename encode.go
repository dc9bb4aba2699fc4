package ruff

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

// Encode writes the image to w in farbfeld format. Encoding is the exact
// inverse of decoding; re-encoding a decoded image reproduces the original
// bytes apart from any dropped trailing partial pixel. Errors from w are
// returned verbatim.
func (m *Image) Encode(w io.Writer) error {
	var hdr [headerSize]byte
	copy(hdr[:], Magic)
	binary.BigEndian.PutUint32(hdr[8:], m.width)
	binary.BigEndian.PutUint32(hdr[12:], m.height)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	var tmp [pixelSize]byte
	for i := range m.pixels {
		it := m.pixels[i].Channels()
		for off := 0; ; off += 2 {
			v, ok := it.Next()
			if !ok {
				break
			}
			binary.BigEndian.PutUint16(tmp[off:], v)
		}
		if _, err := w.Write(tmp[:]); err != nil {
			return err
		}
	}

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the image in
// farbfeld format.
func (m *Image) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(m.pixels)*pixelSize))
	if err := m.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, replacing the
// image with the one decoded from data.
func (m *Image) UnmarshalBinary(data []byte) error {
	img, err := DecodeBytes(data)
	if err != nil {
		return err
	}
	*m = *img
	return nil
}

// WriteFile writes the image in farbfeld format to the file at path,
// creating it if necessary or truncating it if it already exists.
func (m *Image) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := m.Encode(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
