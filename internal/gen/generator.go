package gen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"text/template"

	"golang.org/x/mod/module"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"d2d-enumgen/internal/decl"
	"d2d-enumgen/internal/ident"
)

// Output file names.
const (
	EnumsFilename = "enums_gen.go"
	FlagsFilename = "flags_gen.go"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName overrides the package of the declaration file.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// RuntimeImport overrides the import path of the enum runtime package.
	RuntimeImport string
	// Source is the declaration file name quoted in the generated header.
	Source string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
	// KeepUnformatted writes code that fails to format to a sidecar file in
	// OutputDir. Off for dry runs.
	KeepUnformatted bool
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		OutputDir:        ".",
		Source:           "enums.yaml",
		GenerateComments: true,
		KeepUnformatted:  true,
	}
}

// Generator generates Go code from a declaration file.
type Generator struct {
	config Config
	log    *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	log := config.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "enums_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

type job struct {
	filename string
	tmpl     *template.Template
}

// Generate validates f and renders its enums and flag sets.
// Files are rendered concurrently; the result order is stable.
func (g *Generator) Generate(ctx context.Context, f *decl.File) ([]GeneratedFile, error) {
	diags := decl.Validate(f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid declaration: %w", diags.Error())
	}

	pkgName, err := g.packageName(f)
	if err != nil {
		return nil, err
	}

	runtimeImport, err := g.runtimeImport(f)
	if err != nil {
		return nil, err
	}

	data, err := g.buildTemplateData(f, pkgName, runtimeImport)
	if err != nil {
		return nil, err
	}

	var jobs []job
	if len(data.Enums) > 0 {
		jobs = append(jobs, job{EnumsFilename, enumsTemplate})
	}

	if len(data.Flags) > 0 {
		jobs = append(jobs, job{FlagsFilename, flagsTemplate})
	}

	files := make([]GeneratedFile, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := g.render(j, data)
			if err != nil {
				return fmt.Errorf("generating %s: %w", j.filename, err)
			}

			files[i] = *file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.log.Debug("generated declarations",
		"package", pkgName,
		"runtime", runtimeImport,
		"types", f.TypeNames(),
		"files", len(files))

	return files, nil
}

// render executes one template and formats the result.
func (g *Generator) render(j job, data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := j.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(j.filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if g.config.KeepUnformatted && g.config.OutputDir != "" {
			if debugErr := writeDebugUnformatted(g.config.OutputDir, j.filename, buf.Bytes()); debugErr != nil {
				g.log.Warn("writing unformatted sidecar", "file", j.filename, "err", debugErr)
			}
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	g.log.Debug("rendered file", "file", j.filename, "bytes", len(formatted))

	return &GeneratedFile{
		Filename: j.filename,
		Content:  formatted,
	}, nil
}

// packageName picks the generated package: config, then file, then the
// output directory name.
func (g *Generator) packageName(f *decl.File) (string, error) {
	name := g.config.PackageName
	if name == "" {
		name = f.Package
	}

	if name == "" {
		dir, err := filepath.Abs(g.config.OutputDir)
		if err != nil {
			return "", fmt.Errorf("resolving output directory: %w", err)
		}

		name = filepath.Base(dir)
	}

	if !ident.IsIdentifier(name) {
		return "", fmt.Errorf("package name %q is not an identifier", name)
	}

	return name, nil
}

// runtimeImport picks the runtime import path: config, then file, then the
// enclosing module.
func (g *Generator) runtimeImport(f *decl.File) (string, error) {
	if g.config.RuntimeImport != "" {
		if err := module.CheckImportPath(g.config.RuntimeImport); err != nil {
			return "", fmt.Errorf("runtime import: %w", err)
		}

		return g.config.RuntimeImport, nil
	}

	if f.Runtime != "" {
		return f.Runtime, nil
	}

	return RuntimeImportFor(g.config.OutputDir)
}
