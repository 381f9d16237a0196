// Package bitstream provides a wrapper for io.Writer that emits octets
// assembled from bits, following the MSB pattern, where most-significant bits
// come first.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Shift returns the octet mask of bit at position pos (0 thru 7), MSB first.
func (b Bit) Shift(pos uint8) byte {
	if !b {
		return 0
	}
	return 1 << (7 - pos)
}
