package ruff

// An Image is an in-memory farbfeld image; a width, a height and
// width * height pixels in row-major order. The pixel at (row, col) is at
// index row*width + col.
//
// The pixel count invariant is established by New or by decoding and is
// never re-checked; individual pixels may be modified in place through
// Pixels or Row but the slice must not be grown or shrunk.
type Image struct {
	pixels []Pixel
	width  uint32
	height uint32
}

// New returns an Image with the given dimensions and pixels. It returns
// ErrDimensions if len(pixels) does not equal width * height. A zero-size
// image, New(0, 0, nil), is valid.
func New(width, height uint32, pixels []Pixel) (*Image, error) {
	if uint64(width)*uint64(height) != uint64(len(pixels)) {
		return nil, ErrDimensions
	}
	return &Image{
		pixels: pixels,
		width:  width,
		height: height,
	}, nil
}

// Width returns the width of the image in pixels.
func (m *Image) Width() uint32 {
	return m.width
}

// Height returns the height of the image in pixels.
func (m *Image) Height() uint32 {
	return m.height
}

// Pixels returns the backing pixel slice in row-major order. Indexing and
// slicing it follows normal slice semantics, including panicking on
// out-of-range access, and writing through it modifies the image in place.
func (m *Image) Pixels() []Pixel {
	return m.pixels
}

// At returns the pixel at index i in the row-major pixel sequence. It
// panics if i is out of range.
func (m *Image) At(i int) Pixel {
	return m.pixels[i]
}

// Row returns the pixels of row n, or nil if n is not less than the image
// height. The returned slice shares storage with the image.
func (m *Image) Row(n uint32) []Pixel {
	if n >= m.height {
		return nil
	}
	off := int(n) * int(m.width)
	return m.pixels[off : off+int(m.width)]
}
