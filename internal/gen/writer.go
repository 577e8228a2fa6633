package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Stale returns the generated file names in outputDir that the current
// declaration no longer produces, e.g. flags_gen.go after all flag sets were
// removed, and leftover sidecars of code that once failed to format.
func Stale(files []GeneratedFile, outputDir string) []string {
	produced := map[string]struct{}{}
	for _, f := range files {
		produced[f.Filename] = struct{}{}
	}

	var stale []string

	for _, name := range []string{EnumsFilename, FlagsFilename} {
		candidates := []string{unformattedName(name)}
		if _, ok := produced[name]; !ok {
			candidates = append([]string{name}, candidates...)
		}

		for _, c := range candidates {
			if _, err := os.Stat(filepath.Join(outputDir, c)); err == nil {
				stale = append(stale, c)
			}
		}
	}

	return stale
}
