package stats

import (
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/export"
)

type ExportCmd struct {
	Out string `short:"o" type:"path" help:"Write to this file instead of stdout." default:""`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	clock, err := ctx.Clock()
	if err != nil {
		return err
	}
	snap, err := export.Build(ctx, ctx.Store, clock())
	if err != nil {
		return err
	}
	if c.Out == "" {
		return export.Write(ctx.Out, snap)
	}
	if err := export.WriteFile(c.Out, snap); err != nil {
		return err
	}
	ctx.Printf("✓ Exported to %s\n", c.Out)
	return nil
}
