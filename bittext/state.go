// Package bittext parses bit text, the readable ASCII form of binary data:
// 0/1 digits, blanks and placeholders, ; and # comments, and line breaks.
package bittext

import (
	"io"

	"github.com/spacemeshos/bin2bit/bitstream"
	"github.com/spacemeshos/bin2bit/shared"
)

// Outcome is the result of classifying a single character.
type Outcome int

const (
	Ignored Outcome = iota
	Accepted
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Accepted:
		return "accepted"
	default:
		return "rejected"
	}
}

// OctetWriter receives assembled octets.
type OctetWriter = io.ByteWriter

// State is the parser state of a single encode run.
type State struct {
	Horizontal  int    // 1-based column of the next character
	Vertical    int    // 1-based line
	Octets      uint64 // number of octets written
	InComment   bool
	AtWordStart bool
	BitCount    uint8 // bits in Current, 0 thru 8
	Current     byte  // octet being assembled, MSB first
}

// NewState returns the state at the start of input.
func NewState() *State {
	return &State{
		Horizontal:  1,
		Vertical:    1,
		AtWordStart: true,
	}
}

// Classify consumes c. Rejected characters come with a *shared.StructuralError
// and leave the position on the offending character.
func (st *State) Classify(c byte) (Outcome, error) {
	switch c {
	case '\t', ' ', '\r', '.', '_':
		st.AtWordStart = true
		return Ignored, nil
	case '\n':
		st.AtWordStart = true
		st.InComment = false
		st.Vertical++
		st.Horizontal = 0 // Advance moves onto column 1.
		return Ignored, nil
	}

	if st.InComment {
		return Ignored, nil
	}

	// Every word has to be preceded by a boundary. This catches two
	// instructions mixed on one line.
	if st.atWordBoundary() && !st.AtWordStart {
		return Rejected, &shared.StructuralError{Message: shared.MsgUnseparatedWord}
	}

	switch c {
	case ';', '#':
		st.InComment = true
		return Ignored, nil
	case '0', '1':
		st.Current |= bitstream.Bit(c == '1').Shift(st.BitCount)
		st.BitCount++
		st.AtWordStart = false
		return Accepted, nil
	}

	return Rejected, shared.NewStructuralError(shared.MsgInvalidChar, Escape(c))
}

// Advance moves past a character that was not rejected.
func (st *State) Advance() {
	st.Horizontal++
}

// MaybeEmit writes the current octet once all of its bits are in.
func (st *State) MaybeEmit(w OctetWriter) error {
	if st.InComment || st.BitCount < shared.OctetBits {
		return nil
	}

	if err := w.WriteByte(st.Current); err != nil {
		return err
	}
	st.Octets++
	st.Current = 0
	st.BitCount = 0
	return nil
}

// Bits returns the number of bits consumed so far.
func (st *State) Bits() uint64 {
	return st.Octets*shared.OctetBits + uint64(st.BitCount)
}

func (st *State) atWordBoundary() bool {
	return st.BitCount == 0 && st.Bits()%shared.WordBits == 0
}
