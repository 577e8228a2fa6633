package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// DefaultRuntimeImport is used when the output directory is not inside a
// module that carries its own copy of the runtime package.
const DefaultRuntimeImport = "d2d-enumgen/enum"

// RuntimeImportFor returns the import path of the runtime package as seen
// from dir. It walks up to the enclosing go.mod; if that module has an
// enum/ directory at its root, the runtime is "<module>/enum".
func RuntimeImportFor(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		data, err := os.ReadFile(filepath.Join(abs, "go.mod"))
		switch {
		case err == nil:
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", fmt.Errorf("%s: no module path", filepath.Join(abs, "go.mod"))
			}

			if info, err := os.Stat(filepath.Join(abs, runtimePkg)); err == nil && info.IsDir() {
				return path.Join(modPath, runtimePkg), nil
			}

			return DefaultRuntimeImport, nil

		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("reading go.mod: %w", err)
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return DefaultRuntimeImport, nil
		}

		abs = parent
	}
}
