/*
Package ruff implements a decoder and encoder for the farbfeld image format
defined by suckless (https://tools.suckless.org/farbfeld/).

A farbfeld file is a 16 byte header followed by the raw pixel data; the
8 byte magic "farbfeld", the width and height as big-endian 32-bit unsigned
integers, then width * height pixels in row-major order where each pixel is
four big-endian 16-bit unsigned integers in red, green, blue, alpha order.
There is no compression, padding or trailing metadata.
*/
package ruff

// Magic is the byte sequence identifying a farbfeld file.
const Magic = "farbfeld"

const (
	headerSize = len(Magic) + 8
	pixelSize  = 8
)
