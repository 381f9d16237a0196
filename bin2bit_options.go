package bin2bit

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/spacemeshos/bin2bit/bittext"
)

type option struct {
	input     string
	output    string
	stdin     io.Reader
	stdout    io.Writer
	chunkSize int
	tracer    bittext.Tracer
	logger    *zap.Logger
}

func (o *option) validate() error {
	if o.input == "" {
		return errors.New("`input` is required")
	}
	if o.output == "" {
		return errors.New("`output` is required")
	}
	return nil
}

// OptionFunc configures Encode.
type OptionFunc func(*option) error

// WithInput sets the bit text path; "-" reads stdin.
func WithInput(path string) OptionFunc {
	return func(o *option) error {
		o.input = path
		return nil
	}
}

// WithOutput sets the object path; "-" writes stdout.
func WithOutput(path string) OptionFunc {
	return func(o *option) error {
		o.output = path
		return nil
	}
}

// WithStdio replaces the streams "-" stands for.
func WithStdio(stdin io.Reader, stdout io.Writer) OptionFunc {
	return func(o *option) error {
		if stdin == nil || stdout == nil {
			return errors.New("std streams are nil")
		}
		o.stdin = stdin
		o.stdout = stdout
		return nil
	}
}

// WithChunkSize sets the number of bytes read at a time.
func WithChunkSize(size int) OptionFunc {
	return func(o *option) error {
		o.chunkSize = size
		return nil
	}
}

// WithTracer sets a hook called for every character examined.
func WithTracer(tracer bittext.Tracer) OptionFunc {
	return func(o *option) error {
		o.tracer = tracer
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		o.logger = logger
		return nil
	}
}
