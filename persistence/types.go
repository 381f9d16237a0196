package persistence

import (
	"io"
	"os"
)

type Reader interface {
	io.Reader
	// Name is the input name shown in diagnostics.
	Name() string
	// Label is the path blamed for failures; empty for std streams.
	Label() string
	Close() error
}

type Writer interface {
	io.Writer
	Label() string
	Close() (os.FileInfo, error)
}
