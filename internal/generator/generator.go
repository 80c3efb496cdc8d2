// Package generator runs the manifest → artifacts pipeline.
//
// Records are processed strictly in manifest order. Malformed lines are
// reported and skipped; any render or write failure aborts the run.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wasilibs/go-re2"

	"github.com/aatumaykin/crabgen/internal/config"
	"github.com/aatumaykin/crabgen/internal/logger"
	"github.com/aatumaykin/crabgen/internal/manifest"
	"github.com/aatumaykin/crabgen/internal/naming"
	"github.com/aatumaykin/crabgen/internal/render"
	"github.com/aatumaykin/crabgen/internal/workspace"
)

// Options tune a generation run.
type Options struct {
	// Match is an RE2 pattern; when set only records whose name matches it
	// are generated.
	Match string
	// DryRun renders everything but writes nothing.
	DryRun bool
}

// Summary describes a finished run.
type Summary struct {
	RunID     string
	Records   int // valid records read from the manifest
	Generated int // records whose artifacts were written
	Malformed int // skipped lines
	Filtered  int // records excluded by Options.Match
	Files     int // artifact files written
}

// Generator renders and writes artifacts for every manifest record.
type Generator struct {
	renderer *render.Renderer
	reporter Reporter
	logger   *logger.Logger
	match    *re2.Regexp
	dryRun   bool
}

// New creates a Generator. A nil logger disables logging.
func New(cfg *config.Config, opts Options, reporter Reporter, log *logger.Logger) (*Generator, error) {
	r, err := render.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	var match *re2.Regexp
	if opts.Match != "" {
		match, err = re2.Compile(opts.Match)
		if err != nil {
			return nil, fmt.Errorf("invalid match pattern %q: %w", opts.Match, err)
		}
	}

	if log == nil {
		log = logger.Nop()
	}

	return &Generator{
		renderer: r,
		reporter: reporter,
		logger:   log,
		match:    match,
		dryRun:   opts.DryRun,
	}, nil
}

// Run processes the manifest at manifestPath into outputRoot.
// A missing manifest yields manifest.ErrManifestNotFound and no artifacts.
func (g *Generator) Run(ctx context.Context, manifestPath, outputRoot string) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	log := g.logger.With(logger.Field{Key: "run_id", Value: summary.RunID})

	entries, err := manifest.Open(manifestPath)
	if err != nil {
		return summary, err
	}

	log.InfoCtx(ctx, "manifest loaded",
		logger.Field{Key: "manifest", Value: manifestPath},
		logger.Field{Key: "entries", Value: len(entries)},
		logger.Field{Key: "output_root", Value: outputRoot},
		logger.Field{Key: "dry_run", Value: g.dryRun},
	)

	ws := workspace.New(outputRoot, g.dryRun)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if entry.Err != nil {
			var lineErr *manifest.MalformedLineError
			if !errors.As(entry.Err, &lineErr) {
				return summary, entry.Err
			}
			summary.Malformed++
			g.reporter.Skipped(lineErr)
			log.DebugCtx(ctx, "manifest line skipped", logger.Field{Key: "line", Value: entry.Line}, logger.Field{Key: "reason", Value: lineErr.Reason.Error()})
			continue
		}

		rec := entry.Record
		summary.Records++

		if g.match != nil && !g.match.MatchString(rec.Name) {
			summary.Filtered++
			g.reporter.Filtered(rec)
			continue
		}

		files, err := g.Generate(ws, rec)
		summary.Files += files
		if err != nil {
			log.Error("generation aborted", err, logger.Field{Key: "record", Value: rec.Name}, logger.Field{Key: "line", Value: rec.Line})
			return summary, fmt.Errorf("record %q (line %d): %w", rec.Name, rec.Line, err)
		}
		summary.Generated++

		log.DebugCtx(ctx, "record generated",
			logger.Field{Key: "record", Value: rec.Name},
			logger.Field{Key: "data", Value: g.renderer.IsData(rec.Name)},
			logger.Field{Key: "lumi_masks", Value: len(g.renderer.LumiMasks(rec.Name))},
		)
	}

	log.InfoCtx(ctx, "generation finished",
		logger.Field{Key: "records", Value: summary.Records},
		logger.Field{Key: "generated", Value: summary.Generated},
		logger.Field{Key: "malformed", Value: summary.Malformed},
		logger.Field{Key: "filtered", Value: summary.Filtered},
		logger.Field{Key: "files", Value: summary.Files},
	)

	return summary, nil
}

// Generate renders and writes the artifacts of one record. It returns the
// number of files written, which may be non-zero on error.
func (g *Generator) Generate(ws *workspace.Workspace, rec manifest.Record) (int, error) {
	artifacts, err := g.renderer.Render(rec, ws.Root())
	if err != nil {
		return 0, err
	}

	dir, err := ws.EnsureDatasetDir(naming.ProcessBaseName(rec.Name))
	if err != nil {
		return 0, err
	}

	written := 0
	err = ws.WriteArtifacts(dir, artifacts, func(path string) {
		written++
		g.reporter.Generated(path)
	})
	return written, err
}
