package gen

import (
	"os"
	"path/filepath"
)

// unformattedName is the sidecar name for code that failed to format. It has
// no .go suffix so the broken code never becomes part of the package.
func unformattedName(filename string) string {
	return filename + ".unformatted"
}

// writeDebugUnformatted writes code that failed to format to a sidecar file
// next to the intended output, so the template bug can be inspected.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, unformattedName(filename)), content, filePerm)
}
