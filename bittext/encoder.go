package bittext

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/bin2bit/shared"
)

// TraceEvent describes the state as a character is about to be classified.
type TraceEvent struct {
	Line        int
	Column      int
	InComment   bool
	AtWordStart bool
	Index       int // within the chunk
	Chunk       int // chunk length
	BitCount    uint8
	Char        byte
	Current     byte
}

// Tracer receives a TraceEvent for every character examined.
type Tracer func(TraceEvent)

// Encoder reads bit text and writes the octets it describes.
type Encoder struct {
	r      io.Reader
	w      OctetWriter
	opts   *option
	logger *zap.Logger
}

// NewEncoder returns an Encoder reading bit text from r and writing octets to w.
func NewEncoder(r io.Reader, w OctetWriter, opts ...OptionFunc) (*Encoder, error) {
	options := &option{
		chunkSize: DefaultChunkSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	return &Encoder{
		r:      r,
		w:      w,
		opts:   options,
		logger: options.logger,
	}, nil
}

// Encode runs until the input is exhausted or the first error. The returned
// state is never nil; its position is that of the offending character on a
// structural error. Octets written before a failure stay written.
func (e *Encoder) Encode() (*State, error) {
	st := NewState()
	buf := make([]byte, e.opts.chunkSize)

	for {
		n, rerr := e.r.Read(buf)
		for i := 0; i < n; i++ {
			if e.opts.tracer != nil {
				e.opts.tracer(TraceEvent{
					Line:        st.Vertical,
					Column:      st.Horizontal,
					InComment:   st.InComment,
					AtWordStart: st.AtWordStart,
					Index:       i,
					Chunk:       n,
					BitCount:    st.BitCount,
					Char:        buf[i],
					Current:     st.Current,
				})
			}

			if _, err := st.Classify(buf[i]); err != nil {
				e.logger.Debug("rejected character",
					zap.Int("line", st.Vertical),
					zap.Int("column", st.Horizontal),
					zap.Error(err),
				)
				return st, err
			}
			st.Advance()

			if err := st.MaybeEmit(e.w); err != nil {
				return st, e.writeFailure(err)
			}
		}

		if rerr == io.EOF {
			if st.BitCount > 0 {
				e.logger.Debug("dropping incomplete octet at end of input", zap.Uint8("bits", st.BitCount))
			}
			return st, nil
		}
		if rerr != nil {
			return st, &shared.SystemError{Err: rerr}
		}
	}
}

func (e *Encoder) writeFailure(err error) error {
	var sysErr *shared.SystemError
	if errors.As(err, &sysErr) {
		sysErr.Label = e.opts.sinkName
		return sysErr
	}
	return shared.WriteFailure(e.opts.sinkName, err)
}
