package bittext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bin2bit/shared"
)

// feed runs s through a fresh state the way the encoder does.
func feed(s string) (*State, []byte, error) {
	st := NewState()
	buf := bytes.NewBuffer(nil)
	for i := 0; i < len(s); i++ {
		if _, err := st.Classify(s[i]); err != nil {
			return st, buf.Bytes(), err
		}
		st.Advance()
		if err := st.MaybeEmit(buf); err != nil {
			return st, buf.Bytes(), err
		}
	}
	return st, buf.Bytes(), nil
}

func TestNewState(t *testing.T) {
	req := require.New(t)

	st := NewState()
	req.Equal(1, st.Horizontal)
	req.Equal(1, st.Vertical)
	req.True(st.AtWordStart)
	req.False(st.InComment)
	req.Zero(st.BitCount)
	req.Zero(st.Current)
	req.Zero(st.Octets)
}

func TestPacking(t *testing.T) {
	req := require.New(t)

	st, out, err := feed("01001000")
	req.NoError(err)
	req.Equal([]byte{0x48}, out)
	req.Equal(uint64(1), st.Octets)
	req.Zero(st.BitCount)
	req.Zero(st.Current)
}

func TestPackingWithPlaceholders(t *testing.T) {
	req := require.New(t)

	_, out, err := feed("0100.1000 1111_0000\r\n1010\t1010\n")
	req.NoError(err)
	req.Equal([]byte{0x48, 0xF0, 0xAA}, out)
}

func TestClassifyOutcomes(t *testing.T) {
	req := require.New(t)

	st := NewState()
	o, err := st.Classify('1')
	req.NoError(err)
	req.Equal(Accepted, o)
	req.Equal(uint8(1), st.BitCount)
	req.Equal(byte(0x80), st.Current)
	req.False(st.AtWordStart)

	o, err = st.Classify('.')
	req.NoError(err)
	req.Equal(Ignored, o)
	req.True(st.AtWordStart)

	o, err = st.Classify('#')
	req.NoError(err)
	req.Equal(Ignored, o)
	req.True(st.InComment)

	o, err = st.Classify('$')
	req.NoError(err)
	req.Equal(Ignored, o)

	o, err = st.Classify('\n')
	req.NoError(err)
	req.Equal(Ignored, o)
	req.False(st.InComment)

	o, err = st.Classify('$')
	req.Error(err)
	req.Equal(Rejected, o)
	req.Equal("rejected", o.String())
}

func TestCommentSuppression(t *testing.T) {
	req := require.New(t)

	// The 0000 inside the comment doesn't count.
	st, out, err := feed("0110;0000\n0001\n")
	req.NoError(err)
	req.Equal([]byte{0x61}, out)
	req.Equal(3, st.Vertical)

	// Nor is it checked for alignment.
	_, out, err = feed("0000000011111111 ; 0101010101010101010101\n")
	req.NoError(err)
	req.Equal([]byte{0x00, 0xFF}, out)
}

func TestCommentEndsOnlyAtLineTerminator(t *testing.T) {
	req := require.New(t)

	st, out, err := feed("# 0000 \r 1111 ; 11111111")
	req.NoError(err)
	req.Empty(out)
	req.True(st.InComment)
	req.Zero(st.BitCount)
}

func TestAlignment(t *testing.T) {
	req := require.New(t)

	// The first word may run its two octets together.
	_, out, err := feed("0100000101000010")
	req.NoError(err)
	req.Equal([]byte{0x41, 0x42}, out)

	// The next word needs a boundary.
	st, out, err := feed("010000010100001001000011")
	req.EqualError(err, shared.MsgUnseparatedWord)
	req.Equal([]byte{0x41, 0x42}, out)
	req.Equal(1, st.Vertical)
	req.Equal(17, st.Horizontal)

	_, out, err = feed("0100000101000010 01000011")
	req.NoError(err)
	req.Equal([]byte{0x41, 0x42, 0x43}, out)

	_, out, err = feed("0100000101000010\n01000011")
	req.NoError(err)
	req.Equal([]byte{0x41, 0x42, 0x43}, out)
}

func TestAlignmentCheckPrecedesComments(t *testing.T) {
	req := require.New(t)

	st, _, err := feed("0000000000000000; comment")
	req.EqualError(err, shared.MsgUnseparatedWord)
	req.Equal(17, st.Horizontal)

	// An unseparated invalid character is an alignment error first.
	st, _, err = feed("0000000000000000$")
	req.EqualError(err, shared.MsgUnseparatedWord)
	req.Equal(17, st.Horizontal)
}

func TestIdempotentIgnoring(t *testing.T) {
	req := require.New(t)

	st, out, err := feed(" \t\r._\n\n. _ \n")
	req.NoError(err)
	req.Empty(out)
	req.Zero(st.Octets)
	req.Equal(4, st.Vertical)
}

func TestInvalidCharacter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		msg    string
		line   int
		column int
	}{
		{name: "dollar", input: "$", msg: "error: invalid character: `$'", line: 1, column: 1},
		{name: "digit", input: "0102", msg: "error: invalid character: `2'", line: 1, column: 4},
		{name: "second line", input: "01\n  x", msg: "error: invalid character: `x'", line: 2, column: 3},
		{name: "quote", input: "1'", msg: "error: invalid character: `\\''", line: 1, column: 2},
		{name: "vertical tab", input: "\v", msg: "error: invalid character: `\\v'", line: 1, column: 1},
		{name: "high bit", input: "\n\n0\xe9", msg: "error: invalid character: `\\xe9'", line: 3, column: 2},
		{name: "nul", input: ". \x00", msg: "error: invalid character: `\\x00'", line: 1, column: 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			st, _, err := feed(tc.input)
			req.EqualError(err, tc.msg)
			req.IsType(&shared.StructuralError{}, err)
			req.Equal(tc.line, st.Vertical)
			req.Equal(tc.column, st.Horizontal)
		})
	}
}

func TestIncompleteOctetIsNotEmitted(t *testing.T) {
	req := require.New(t)

	st, out, err := feed("11111111 1010")
	req.NoError(err)
	req.Equal([]byte{0xFF}, out)
	req.Equal(uint8(4), st.BitCount)
	req.Equal(byte(0xA0), st.Current)
	req.Equal(uint64(12), st.Bits())
}

func TestMaybeEmitIsNoopInComment(t *testing.T) {
	req := require.New(t)

	st := NewState()
	st.BitCount = 8
	st.Current = 0x5A
	st.InComment = true

	buf := bytes.NewBuffer(nil)
	req.NoError(st.MaybeEmit(buf))
	req.Zero(buf.Len())

	st.InComment = false
	req.NoError(st.MaybeEmit(buf))
	req.Equal([]byte{0x5A}, buf.Bytes())
	req.Zero(st.BitCount)
	req.Zero(st.Current)
}
