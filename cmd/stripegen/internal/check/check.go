package check

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/broady/stripe/cmd/stripegen/internal/source"
	"github.com/broady/stripe/stripegen"
)

type Cmd struct {
	source.Flags
}

func (c *Cmd) Run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := c.Resolve()
	if err != nil {
		return err
	}

	schema, err := stripegen.BuildSchema(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("✓ API version %s\n", schema.APIVersion)
	fmt.Printf("✓ %d resources, %d enums, %d unions, %d operations\n",
		len(schema.Resources), len(schema.Enums), len(schema.Unions), len(schema.Operations))

	stale, err := stripegen.FromConfig(cfg).Logger(logger).Check(ctx, cfg.Out)
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		fmt.Fprintf(os.Stderr, "✗ out of date in %s:\n  %s\n", cfg.Out, strings.Join(stale, "\n  "))
		return fmt.Errorf("%d generated files are stale", len(stale))
	}
	fmt.Printf("✓ %s is up to date\n", cfg.Out)
	return nil
}
