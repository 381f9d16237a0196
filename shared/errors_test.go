package shared

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	req := require.New(t)

	req.Equal(ExitOK, ExitCode(nil))
	req.Equal(ExitCroak, ExitCode(&StructuralError{Message: MsgUnseparatedWord}))
	req.Equal(ExitCroak, ExitCode(fmt.Errorf("line 3: %w", NewStructuralError(MsgInvalidChar, "$"))))
	req.Equal(ExitDeath, ExitCode(&SystemError{Err: io.ErrUnexpectedEOF}))
	req.Equal(ExitDeath, ExitCode(WriteFailure("out.obj", io.ErrShortWrite)))
	req.Equal(ExitDeath, ExitCode(ErrUsage))
}

func TestStructuralError(t *testing.T) {
	req := require.New(t)

	err := NewStructuralError(MsgInvalidChar, `\x00`)
	req.EqualError(err, "error: invalid character: `\\x00'")
}

func TestSystemError(t *testing.T) {
	req := require.New(t)

	_, openErr := os.Open(filepath.Join(t.TempDir(), "missing.bin"))
	err := &SystemError{Label: "missing.bin", Err: openErr}
	req.Equal("no such file or directory", err.Description())
	req.EqualError(err, "missing.bin: no such file or directory")
	req.True(errors.Is(err, os.ErrNotExist))

	err = &SystemError{Err: io.ErrUnexpectedEOF}
	req.EqualError(err, "unexpected EOF")

	wf := WriteFailure("out.obj", io.ErrShortWrite)
	req.EqualError(wf, "out.obj: write failure")
	req.ErrorIs(wf, ErrWriteFailure)
	req.ErrorIs(wf, io.ErrShortWrite)
}
