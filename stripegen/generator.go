package stripegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/broady/stripe/stripegen/golang"
	"github.com/broady/stripe/stripegen/ir"
	"github.com/broady/stripe/stripegen/provider"
	"github.com/broady/stripe/stripegen/sink"
)

// Result reports what a generation run produced.
type Result struct {
	// Schema is the IR the output was generated from.
	Schema *ir.Schema

	// Files lists the generated files.
	Files []golang.OutputFile

	// Warnings are the non-fatal issues found in the description.
	Warnings []ir.Warning
}

// Generate builds the IR from cfg.Spec, validates it and writes the Go
// package to out. Description warnings are logged to logger, or fail the run
// when cfg.Strict is set.
func Generate(ctx context.Context, cfg *Config, out sink.OutputSink, logger *slog.Logger) (*Result, error) {
	if cfg.Spec == "" {
		return nil, errors.New("Spec is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg = applyConfigDefaults(cfg)

	schema, err := BuildSchema(ctx, cfg)
	if err != nil {
		return nil, err
	}
	for _, w := range schema.Warnings {
		logger.WarnContext(ctx, w.Message, "code", w.Code, "name", w.Name)
	}
	if cfg.Strict && len(schema.Warnings) > 0 {
		return nil, fmt.Errorf("%d warnings in %s (strict mode)", len(schema.Warnings), cfg.Spec)
	}

	gen := &golang.GoGenerator{}
	res, err := gen.Generate(ctx, schema, golang.GenerateOptions{
		Sink: out,
		Config: golang.GeneratorConfig{
			Package: cfg.Package,
			Runtime: cfg.Runtime,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate Go: %w", err)
	}
	logger.InfoContext(ctx, "generated package",
		"package", cfg.Package,
		"files", len(res.Files),
		"types", res.TypesGenerated,
		"builders", res.BuildersGenerated,
	)
	return &Result{
		Schema:   schema,
		Files:    res.Files,
		Warnings: append(schema.Warnings, res.Warnings...),
	}, nil
}

// BuildSchema loads and validates the IR for cfg without generating code.
func BuildSchema(ctx context.Context, cfg *Config) (*ir.Schema, error) {
	p := &provider.OpenAPIProvider{}
	schema, err := p.BuildSchema(ctx, provider.OpenAPIInputOptions{
		Path:  cfg.Spec,
		Names: cfg.Names,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	if errs := schema.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid schema: %w", errors.Join(errs...))
	}
	return schema, nil
}

// Generator provides a fluent API over Generate.
//
//	res, err := stripegen.FromSpec("spec3.json").Package("stripeapi").ToDir(ctx, "out")
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

// FromSpec starts a Generator for the OpenAPI description at path.
func FromSpec(path string) *Generator {
	return &Generator{cfg: Config{Spec: path}}
}

// FromConfig starts a Generator from a loaded config.
func FromConfig(cfg *Config) *Generator {
	return &Generator{cfg: *cfg}
}

// Package sets the Go package name of the output.
func (g *Generator) Package(name string) *Generator {
	g.cfg.Package = name
	return g
}

// Runtime sets the import path of the client runtime.
func (g *Generator) Runtime(path string) *Generator {
	g.cfg.Runtime = path
	return g
}

// Rename overrides the builder name derived for an operation id.
func (g *Generator) Rename(operationID, name string) *Generator {
	if g.cfg.Names == nil {
		g.cfg.Names = make(map[string]string)
	}
	g.cfg.Names[operationID] = name
	return g
}

// Strict fails generation on description warnings.
func (g *Generator) Strict() *Generator {
	g.cfg.Strict = true
	return g
}

// Logger sets where warnings and progress are logged.
func (g *Generator) Logger(l *slog.Logger) *Generator {
	g.logger = l
	return g
}

// ToDir writes the generated package to dir.
func (g *Generator) ToDir(ctx context.Context, dir string) (*Result, error) {
	g.cfg.Out = dir
	return Generate(ctx, &g.cfg, sink.NewFilesystemSink(dir), g.logger)
}

// ToSink writes the generated package to s.
func (g *Generator) ToSink(ctx context.Context, s sink.OutputSink) (*Result, error) {
	return Generate(ctx, &g.cfg, s, g.logger)
}

// Check regenerates the package in memory and returns the files in dir that
// are missing or out of date.
func (g *Generator) Check(ctx context.Context, dir string) ([]string, error) {
	diff := sink.NewDiffSink(dir)
	if _, err := Generate(ctx, &g.cfg, diff, g.logger); err != nil {
		return nil, err
	}
	return diff.Stale(), nil
}
