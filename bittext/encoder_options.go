package bittext

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultChunkSize is the read size, the width of a historic terminal line.
const DefaultChunkSize = 80

type option struct {
	chunkSize int
	sinkName  string
	tracer    Tracer
	logger    *zap.Logger
}

func (o *option) validate() error {
	if o.chunkSize <= 0 {
		return errors.New("`chunkSize` must be greater than 0")
	}
	return nil
}

// OptionFunc configures an Encoder.
type OptionFunc func(*option) error

// WithChunkSize sets the number of bytes read from the input at a time.
func WithChunkSize(size int) OptionFunc {
	return func(o *option) error {
		o.chunkSize = size
		return nil
	}
}

// WithSinkName sets the label write failures are blamed on.
func WithSinkName(name string) OptionFunc {
	return func(o *option) error {
		o.sinkName = name
		return nil
	}
}

// WithTracer sets a hook called for every character examined.
func WithTracer(tracer Tracer) OptionFunc {
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
