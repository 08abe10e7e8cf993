package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/lifetrack/internal/cli"
)

type InitCmd struct {
	Force  bool `help:"Force reset by deleting existing database before initialization."`
	NoSeed bool `help:"Skip the default workout template and goals."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized lifetrack storage at: %s\n", ctx.Store.GetConfigPath())

	if c.NoSeed {
		return nil
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	seeded, err := svc.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed defaults: %w", err)
	}
	if seeded.Template {
		ctx.Println("✓ Added starter workout template")
	}
	if seeded.Goals {
		ctx.Println("✓ Added starter goals")
	}
	return nil
}
