package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spacemeshos/bin2bit/shared"
)

type FileWriter struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

// A compile time check to ensure that FileWriter fully implements the Writer interface.
var _ Writer = (*FileWriter)(nil)

// NewFileWriter creates or truncates path for writing. The path "-" writes to
// std, which is flushed but never closed.
func NewFileWriter(path string, std io.Writer) (*FileWriter, error) {
	if IsStd(path) {
		return &FileWriter{buf: bufio.NewWriter(std)}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, shared.ObjectFilePerm)
	if err != nil {
		return nil, err
	}
	return &FileWriter{
		path: path,
		file: f,
		buf:  bufio.NewWriter(f),
	}, nil
}

func (w *FileWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *FileWriter) Label() string {
	return w.path
}

func (w *FileWriter) flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}

	return nil
}

// Close flushes pending octets and closes the file. It returns the file info
// of a closed file, nil for std streams.
func (w *FileWriter) Close() (os.FileInfo, error) {
	if err := w.flush(); err != nil {
		if w.file != nil {
			_ = w.file.Close()
			w.file = nil
		}
		return nil, err
	}
	if w.file == nil {
		return nil, nil
	}

	info, err := w.file.Stat()
	if err != nil {
		_ = w.file.Close()
		w.file = nil
		return nil, err
	}

	err = w.file.Close()
	w.file = nil
	if err != nil {
		return nil, err
	}

	return info, nil
}
