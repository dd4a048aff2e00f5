package gen

import (
	"context"
	"fmt"
	"log/slog"

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
	res, err := stripegen.FromConfig(cfg).Logger(logger).ToDir(ctx, cfg.Out)
	if err != nil {
		return err
	}
	fmt.Printf("✓ wrote %d files to %s (%d warnings)\n", len(res.Files), cfg.Out, len(res.Warnings))
	return nil
}
