package dopamine

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

type DopamineCmd struct {
	Log    DopamineLogCmd    `cmd:"" help:"Record whether the day's dopamine control held."`
	List   DopamineListCmd   `cmd:"" help:"Show recent entries."`
	Delete DopamineDeleteCmd `cmd:"" help:"Delete an entry."`
}

type DopamineLogCmd struct {
	Status string `arg:"" enum:"passed,failed" help:"passed or failed."`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Notes  string `help:"Optional note." default:""`
}

func (c *DopamineLogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	_, err = svc.LogDopamine(ctx, models.DopamineEntry{
		Date:   date,
		Status: models.DopamineStatus(c.Status),
		Notes:  c.Notes,
	})
	return ctx.Saved(err, "Dopamine %s for %s", c.Status, date)
}

type DopamineListCmd struct {
	Limit int `help:"Number of entries to show." default:"5"`
}

func (c *DopamineListCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	limit := c.Limit
	if limit <= 0 {
		limit = constants.RecentDopamineLimit
	}
	entries, err := svc.RecentDopamine(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Println("No entries yet.")
		return nil
	}
	for _, e := range entries {
		mark := "✓"
		if !e.Passed() {
			mark = "✗"
		}
		ctx.Printf("%s %s  %-6s %s  (%s)\n", mark, e.Date, e.Status, e.Notes, e.ID)
	}
	return nil
}

type DopamineDeleteCmd struct {
	ID  string `arg:"" help:"Entry ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DopamineDeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.ConfirmDelete(fmt.Sprintf("dopamine entry %s", c.ID), c.Yes)
	if err != nil || !ok {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	return ctx.Saved(svc.DeleteDopamine(ctx, c.ID), "Deleted entry %s", c.ID)
}
