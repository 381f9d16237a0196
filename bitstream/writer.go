package bitstream

import (
	"hash"
	"io"

	"github.com/spacemeshos/sha256-simd"

	"github.com/spacemeshos/bin2bit/shared"
)

// Writer writes octets to an io.Writer, one at a time, keeping count and a
// running digest of everything written.
type Writer struct {
	stream  io.Writer
	pending [1]byte
	octets  uint64
	digest  hash.Hash
}

// NewWriter returns a new instance of Writer.
func NewWriter(w io.Writer) *Writer {
	bw := new(Writer)
	bw.stream = w
	bw.digest = sha256.New()
	return bw
}

// WriteByte writes a single octet to the stream. A write that doesn't accept
// the octet fails with shared.ErrWriteFailure.
func (bw *Writer) WriteByte(octet byte) error {
	bw.pending[0] = octet
	n, err := bw.stream.Write(bw.pending[:])
	if n != 1 || err != nil {
		if err == nil {
			err = io.ErrShortWrite
		}
		return shared.WriteFailure("", err)
	}

	bw.octets++
	bw.digest.Write(bw.pending[:])
	return nil
}

// Octets returns the number of octets written.
func (bw *Writer) Octets() uint64 {
	return bw.octets
}

// Sum returns the SHA-256 digest of the octets written so far.
func (bw *Writer) Sum() []byte {
	return bw.digest.Sum(nil)
}
