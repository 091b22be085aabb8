package agents

import (
	"embed"
	"io/fs"

	"github.com/pkg/errors"
)

//go:embed library
var builtinFS embed.FS

// BuiltinLibrary returns the embedded curated agent library rooted at its
// category directories.
func BuiltinLibrary() (fs.FS, error) {
	lib, err := fs.Sub(builtinFS, "library")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open builtin agent library")
	}
	return lib, nil
}
