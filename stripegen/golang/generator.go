package golang

import (
	"context"
	"errors"
	"fmt"

	"github.com/broady/stripe/stripegen/ir"
)

// GoGenerator emits the Go package for a schema.
type GoGenerator struct{}

var _ Generator = (*GoGenerator)(nil)

// Name returns "go".
func (g *GoGenerator) Name() string { return "go" }

// Generate renders every file and writes it to opts.Sink.
func (g *GoGenerator) Generate(ctx context.Context, schema *ir.Schema, opts GenerateOptions) (*GenerateResult, error) {
	if schema == nil {
		return nil, errors.New("schema is nil")
	}
	if opts.Sink == nil {
		return nil, errors.New("no output sink")
	}

	files, err := NewEmitter(schema, opts.Config).Files()
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		TypesGenerated:    len(schema.Resources) + len(schema.Enums) + len(schema.Unions) + len(schema.IDs),
		BuildersGenerated: len(schema.Operations),
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := opts.Sink.WriteFile(ctx, f.Path, f.Content); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		result.Files = append(result.Files, OutputFile{Path: f.Path, Size: int64(len(f.Content))})
	}
	return result, nil
}
