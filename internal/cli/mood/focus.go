package mood

import (
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
)

type FocusCmd struct {
	Add  FocusAddCmd  `cmd:"" help:"Record a focus session."`
	List FocusListCmd `cmd:"" help:"Show a day's focus sessions."`
}

type FocusAddCmd struct {
	Minutes int    `arg:"" help:"Session length in minutes."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *FocusAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	_, err = svc.AddFocusSession(ctx, models.FocusSession{Date: date, Duration: c.Minutes})
	return ctx.Saved(err, "Logged %d min of focus for %s", c.Minutes, date)
}

type FocusListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *FocusListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	sessions, err := svc.FocusSessions(ctx, date)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		ctx.Printf("No focus sessions on %s.\n", date)
		return nil
	}
	total := 0
	for _, s := range sessions {
		ctx.Printf("  %3d min  (%s)\n", s.Duration, s.ID)
		total += s.Duration
	}
	ctx.Printf("%s: %d min in %d session(s)\n", date, total, len(sessions))
	return nil
}
