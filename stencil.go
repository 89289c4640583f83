// Package stencil drives build-time source generation. Given a root
// directory, a target file extension, and a Processor, it discovers matching
// input files, decides which outputs are stale by modification time,
// regenerates them safely, and reports failures with source-position
// diagnostics.
//
// For every input file name.ext a sibling name.<generated-ext> is produced
// and left read-only. A clean pass prints nothing; the first failure of any
// kind ends the pass after exactly one diagnostic.
package stencil

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Text is the loaded content of an input file together with its
// byte-offset position mapping. Implemented by filetext.FileText.
type Text interface {
	// Path returns the path the content was loaded from.
	Path() string

	// Text returns the raw content.
	Text() string

	// LineCol maps a byte offset to a zero-based (line, column) pair.
	LineCol(offset int) (line, col int)

	// Highlight writes a human-readable excerpt of the given byte range:
	// the spanned source line(s) with a marker under the spanned columns.
	Highlight(start, end int, w io.Writer) error
}

// Processor is the transformation capability. Implementations either
// populate the output fully and return nil, or fail: a *SourceError for
// semantic problems in the input, any other error for environmental ones.
type Processor interface {
	Process(input Text, output io.Writer) error
}

// ProcessorFunc adapts an ordinary function to the Processor interface.
type ProcessorFunc func(input Text, output io.Writer) error

// Process calls f(input, output).
func (f ProcessorFunc) Process(input Text, output io.Writer) error {
	return f(input, output)
}

// Process runs one pass over the current working directory.
// It is shorthand for ProcessDir with the working directory as root.
func Process(extension string, p Processor, opts ...Option) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("stencil: cannot determine working directory: %w", err)
	}
	return ProcessDir(wd, extension, p, opts...)
}

// ProcessDir runs one pass over the tree rooted at dir: every regular file
// with the given extension (without leading dot) is regenerated when stale.
// The first failure ends the pass, is rendered through the reporter, and is
// returned; the caller decides whether it terminates the process.
func ProcessDir(dir, extension string, p Processor, opts ...Option) error {
	r, err := NewRunner(dir, extension, p, opts...)
	if err != nil {
		return err
	}
	return r.Run(context.Background())
}

// Runner drives processing passes over a fixed root, extension, and
// processor. It holds no state across runs: each Run is a fresh pass over
// the current filesystem snapshot.
type Runner struct {
	root      string
	extension string
	processor Processor
	config    *Config
	reporter  *Reporter
}

// NewRunner validates the inputs and builds a Runner.
func NewRunner(root, extension string, p Processor, opts ...Option) (*Runner, error) {
	if root == "" {
		return nil, NewConfigError("Root", nil, "root directory cannot be empty")
	}
	if extension == "" {
		return nil, NewConfigError("Extension", nil, "extension cannot be empty")
	}
	if p == nil {
		return nil, NewConfigError("Processor", nil, "processor cannot be nil")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	// An output extension equal to the input extension would map every
	// output onto its own source, and the rewrite's removal step would then
	// delete the source before reading it.
	if strings.TrimPrefix(extension, ".") == cfg.GeneratedExtension {
		return nil, NewConfigError("GeneratedExtension", cfg.GeneratedExtension,
			"generated extension must differ from the input extension")
	}
	return &Runner{
		root:      root,
		extension: extension,
		processor: p,
		config:    cfg,
		reporter:  NewReporter(cfg.Out, cfg.Color),
	}, nil
}

// Run performs one sequential pass: discover, decide, rewrite. Files are
// handled one at a time; the first non-nil outcome is reported and returned,
// leaving files not yet reached untouched. ctx is consulted between files.
func (r *Runner) Run(ctx context.Context) error {
	err := r.run(ctx)
	if err != nil {
		r.reporter.Report(err)
	}
	return err
}

func (r *Runner) run(ctx context.Context) error {
	files, err := scanFiles(r.root, r.extension)
	if err != nil {
		return fmt.Errorf("stencil: scan %s: %w", r.root, err)
	}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		out := outputPath(file, r.config.GeneratedExtension)
		rebuild, err := needsRebuild(file, out, r.config.ForceRebuild)
		if err != nil {
			return err
		}
		if !rebuild {
			if r.config.Verbose {
				fmt.Fprintf(r.config.Out, "skip %s\n", file)
			}
			continue
		}
		if r.config.Verbose {
			fmt.Fprintf(r.config.Out, "generate %s\n", out)
		}
		if err := rewrite(r.processor, file, out); err != nil {
			return err
		}
	}
	return nil
}
