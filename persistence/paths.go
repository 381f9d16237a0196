package persistence

import (
	"path/filepath"
	"strings"

	"github.com/spacemeshos/bin2bit/shared"
)

// ObjectPath derives the output path for in by replacing its final suffix
// with ".obj". Directory components are kept; a path already ending in ".obj"
// is returned unchanged.
func ObjectPath(in string) string {
	ext := filepath.Ext(in)
	if ext == shared.ObjectSuffix {
		return in
	}
	return strings.TrimSuffix(in, ext) + shared.ObjectSuffix
}

// IsStd reports whether path stands for stdin or stdout.
func IsStd(path string) bool {
	return path == shared.StdStream
}
