package ruff

// A Pixel is a single pixel in a farbfeld image; four 16-bit channels in
// red, green, blue, alpha order. The alpha channel is not premultiplied.
// Pixel is a comparable value type so two pixels are equal exactly when all
// four channels are equal.
type Pixel struct {
	R, G, B, A uint16
}

// NewPixel returns a Pixel with the given channel values.
func NewPixel(r, g, b, a uint16) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// PixelFromArray returns the Pixel whose channels are ch in red, green,
// blue, alpha order.
func PixelFromArray(ch [4]uint16) Pixel {
	return Pixel{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

// Array returns the channels of p in red, green, blue, alpha order.
func (p Pixel) Array() [4]uint16 {
	return [4]uint16{p.R, p.G, p.B, p.A}
}

// Channels returns an iterator over the channel values of p in red, green,
// blue, alpha order. The iterator yields exactly four values and then stays
// exhausted; call Channels again to iterate from the start.
func (p Pixel) Channels() ChannelIter {
	return ChannelIter{ch: p.Array()}
}

// MutableChannels returns an iterator over pointers to the channels of p in
// red, green, blue, alpha order, allowing each channel to be modified in
// place. Like Channels it yields exactly four values and then stays
// exhausted.
func (p *Pixel) MutableChannels() MutableChannelIter {
	return MutableChannelIter{p: p}
}

// A ChannelIter iterates over the four channel values of a Pixel.
type ChannelIter struct {
	ch [4]uint16
	i  int
}

// Next returns the next channel value. The second return value is false
// once all four channels have been yielded.
func (it *ChannelIter) Next() (uint16, bool) {
	if it.i >= len(it.ch) {
		return 0, false
	}
	v := it.ch[it.i]
	it.i++
	return v, true
}

// Len returns the number of channels not yet yielded.
func (it *ChannelIter) Len() int {
	return len(it.ch) - it.i
}

// A MutableChannelIter iterates over pointers to the four channels of a
// Pixel.
type MutableChannelIter struct {
	p *Pixel
	i int
}

// Next returns a pointer to the next channel. The second return value is
// false once all four channels have been yielded.
func (it *MutableChannelIter) Next() (*uint16, bool) {
	if it.i >= 4 {
		return nil, false
	}
	it.i++
	switch it.i {
	case 1:
		return &it.p.R, true
	case 2:
		return &it.p.G, true
	case 3:
		return &it.p.B, true
	default:
		return &it.p.A, true
	}
}

// Len returns the number of channels not yet yielded.
func (it *MutableChannelIter) Len() int {
	return 4 - it.i
}
