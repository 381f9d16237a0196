// Package bin2bit assembles bit text into a packed binary object.
package bin2bit

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"go.uber.org/zap"

	"github.com/spacemeshos/bin2bit/bitstream"
	"github.com/spacemeshos/bin2bit/bittext"
	"github.com/spacemeshos/bin2bit/diag"
	"github.com/spacemeshos/bin2bit/persistence"
	"github.com/spacemeshos/bin2bit/shared"
)

// Result is what survives a run, successful or not.
type Result struct {
	Input  string // input name for diagnostics
	Output string

	// Octets handed to the output. They are buffered, so after a failed
	// flush some of them may never have reached the file.
	Octets uint64

	// Last position examined; zero when parsing never started.
	Line   int
	Column int

	// SHA-256 of the octets written.
	Digest []byte
}

// Encode assembles the input into the output. Both are closed on every path,
// except for std streams. Octets written before a failure are kept.
//
// Returned errors are *shared.StructuralError for malformed input and
// *shared.SystemError for environment failures; see shared.ExitCode.
func Encode(opts ...OptionFunc) (*Result, error) {
	options := &option{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		chunkSize: bittext.DefaultChunkSize,
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

	logger := options.logger
	res := &Result{Output: options.output}

	in, err := persistence.NewFileReader(options.input, options.stdin)
	if err != nil {
		return res, &shared.SystemError{Label: options.input, Err: err}
	}
	defer in.Close()
	res.Input = in.Name()

	out, err := persistence.NewFileWriter(options.output, options.stdout)
	if err != nil {
		return res, &shared.SystemError{Label: options.output, Err: err}
	}

	sink := bitstream.NewWriter(out)
	enc, err := bittext.NewEncoder(in, sink,
		bittext.WithChunkSize(options.chunkSize),
		bittext.WithSinkName(out.Label()),
		bittext.WithTracer(options.tracer),
		bittext.WithLogger(logger),
	)
	if err != nil {
		_, _ = out.Close()
		return res, err
	}

	logger.Info("encoding", zap.String("input", res.Input), zap.String("output", options.output))

	st, err := enc.Encode()
	res.Octets = sink.Octets()
	res.Line = st.Vertical
	res.Column = st.Horizontal

	info, cerr := out.Close()
	if cerr != nil && err == nil {
		err = shared.WriteFailure(out.Label(), cerr)
	}
	res.Digest = sink.Sum()

	if info != nil {
		logger.Debug("closed output",
			zap.String("filename", info.Name()),
			zap.String("size", bytefmt.ByteSize(uint64(info.Size()))),
		)
	}
	if err != nil {
		logger.Info("encoding failed", zap.Uint64("octets", res.Octets), zap.Error(err))
		return res, err
	}

	logger.Info("encoding completed",
		zap.Uint64("octets", res.Octets),
		zap.String("size", bytefmt.ByteSize(res.Octets)),
		zap.String("sha256", hex.EncodeToString(res.Digest)),
	)
	return res, nil
}

// Report writes the diagnostic line for err, if any, followed by the octet
// summary, which is always written.
func Report(w io.Writer, res *Result, err error, width int) {
	if err != nil {
		var (
			input        string
			line, column int
		)
		if res != nil {
			input, line, column = res.Input, res.Line, res.Column
		}
		label, message := blame(err)
		fmt.Fprintln(w, diag.Diagnostic(input, line, column, label, message, width))
	}

	var octets uint64
	if res != nil {
		octets = res.Octets
	}
	fmt.Fprintln(w, diag.Summary(octets))
}

func blame(err error) (label, message string) {
	var structural *shared.StructuralError
	if errors.As(err, &structural) {
		return "", structural.Message
	}
	var sysErr *shared.SystemError
	if errors.As(err, &sysErr) {
		return sysErr.Label, sysErr.Description()
	}
	return "", err.Error()
}
