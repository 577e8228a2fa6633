// Package main provides the CLI entrypoint for enumgen.
//
// enumgen reads a YAML declaration of native enumerations and flag sets and
// writes one Go file per kind:
//   - enums_gen.go with the closed enumerations
//   - flags_gen.go with the bit flag sets
//
// It is normally run through go:generate next to the declaration.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"d2d-enumgen/internal/decl"
	"d2d-enumgen/internal/diagnostic"
	"d2d-enumgen/internal/gen"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	in       string
	out      string
	pkg      string
	runtime  string
	check    bool
	dump     bool
	tidy     bool
	comments bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("enumgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "enums.yaml", "declaration file")
	fs.StringVar(&opts.out, "out", "", "output directory (default: directory of -in)")
	fs.StringVar(&opts.pkg, "pkg", "", "package name override")
	fs.StringVar(&opts.runtime, "runtime", "", "import path of the enum runtime package")
	fs.BoolVar(&opts.check, "check", false, "report out-of-date files instead of writing them")
	fs.BoolVar(&opts.dump, "dump", false, "print the parsed declaration and exit")
	fs.BoolVar(&opts.tidy, "tidy", false, "rewrite the declaration file in canonical form")
	fs.BoolVar(&opts.comments, "comments", true, "emit doc comments on generated functions")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(stderr, err)

		return opts, err
	}

	if opts.tidy && opts.check {
		err := errors.New("-tidy rewrites the declaration and cannot be combined with -check")
		fmt.Fprintln(stderr, err)

		return opts, err
	}

	if opts.out == "" {
		opts.out = filepath.Dir(opts.in)
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := decl.LoadFile(opts.in)
	if err != nil {
		log.Error("loading declaration", "err", err)
		return 1
	}

	if opts.dump {
		spew.Fdump(stdout, f)
		return 0
	}

	diags := decl.Validate(f)
	report(stderr, diags)

	if diags.HasErrors() {
		return 1
	}

	if opts.tidy {
		if err := decl.WriteFile(f, opts.in); err != nil {
			log.Error("rewriting declaration", "err", err)
			return 1
		}

		log.Info("declaration rewritten", "path", opts.in)
	}

	cfg := gen.DefaultConfig()
	cfg.OutputDir = opts.out
	cfg.PackageName = opts.pkg
	cfg.RuntimeImport = opts.runtime
	cfg.Source = filepath.Base(opts.in)
	cfg.GenerateComments = opts.comments
	cfg.KeepUnformatted = !opts.check
	cfg.Logger = log

	files, err := gen.NewGenerator(cfg).Generate(ctx, f)
	if err != nil {
		log.Error("generating code", "err", err)
		return 1
	}

	if opts.check {
		return check(stdout, files, opts.out)
	}

	if err := gen.WriteFiles(files, opts.out); err != nil {
		log.Error("writing files", "err", err)
		return 1
	}

	for _, name := range gen.Stale(files, opts.out) {
		log.Warn("stale generated file, remove it", "file", filepath.Join(opts.out, name))
	}

	for _, file := range files {
		log.Debug("wrote", "file", filepath.Join(opts.out, file.Filename), "bytes", len(file.Content))
	}

	return 0
}

// check compares the rendered files with those on disk and lists every
// file that differs or no longer belongs.
func check(stdout io.Writer, files []gen.GeneratedFile, dir string) int {
	code := 0

	for _, file := range files {
		onDisk, err := os.ReadFile(filepath.Join(dir, file.Filename))
		if err != nil || !bytes.Equal(onDisk, file.Content) {
			fmt.Fprintf(stdout, "%s: out of date\n", filepath.Join(dir, file.Filename))

			code = 1
		}
	}

	for _, name := range gen.Stale(files, dir) {
		fmt.Fprintf(stdout, "%s: stale\n", filepath.Join(dir, name))

		code = 1
	}

	return code
}

func report(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
