package persistence

import (
	"io"
	"os"

	"github.com/spacemeshos/bin2bit/shared"
)

type FileReader struct {
	path  string
	file  *os.File
	input io.Reader
}

// A compile time check to ensure that FileReader fully implements the Reader interface.
var _ Reader = (*FileReader)(nil)

// NewFileReader opens path for reading. The path "-" reads from std, which is
// never closed.
func NewFileReader(path string, std io.Reader) (*FileReader, error) {
	if IsStd(path) {
		return &FileReader{input: std}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileReader{
		path:  path,
		file:  f,
		input: f,
	}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.input.Read(p)
}

func (r *FileReader) Name() string {
	if r.file == nil {
		return shared.StdinName
	}
	return r.path
}

func (r *FileReader) Label() string {
	return r.path
}

func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
