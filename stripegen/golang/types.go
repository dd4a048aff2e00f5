// Package golang emits the typed Go surface of the API from the IR: one
// record per resource, one builder per operation, typed ids, enums, unions
// and the expand manifest.
package golang

import (
	"context"

	"github.com/broady/stripe/stripegen/ir"
	"github.com/broady/stripe/stripegen/sink"
)

// Generator transforms an IR schema into target language source code.
type Generator interface {
	// Name returns the generator's identifier.
	Name() string

	// Generate produces source code for the given schema.
	Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives generated output files.
	Sink sink.OutputSink

	Config GeneratorConfig
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written, in path order.
	Files []OutputFile

	// TypesGenerated counts records, enums, unions and id types.
	TypesGenerated int

	// BuildersGenerated counts operation builders.
	BuildersGenerated int

	// Warnings contains non-fatal issues encountered.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// GeneratorConfig controls the shape of the emitted package.
type GeneratorConfig struct {
	// Package is the Go package name of the output (default "api").
	Package string

	// Runtime is the import path of the client runtime
	// (default "github.com/broady/stripe"). Its wire package is
	// Runtime + "/wire".
	Runtime string

	// Generator names the tool in the "Code generated" header
	// (default "stripegen").
	Generator string
}

// Default configuration values.
const (
	DefaultPackage   = "api"
	DefaultRuntime   = "github.com/broady/stripe"
	DefaultGenerator = "stripegen"
)

func (c GeneratorConfig) withDefaults() GeneratorConfig {
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.Runtime == "" {
		c.Runtime = DefaultRuntime
	}
	if c.Generator == "" {
		c.Generator = DefaultGenerator
	}
	return c
}
