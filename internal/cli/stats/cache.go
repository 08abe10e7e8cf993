package stats

import (
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type CacheCmd struct {
	Refresh CacheRefreshCmd `cmd:"" help:"Recompute one day's completion summary."`
	Verify  CacheVerifyCmd  `cmd:"" help:"Compare one day's summary with the tracked data."`
	Rebuild CacheRebuildCmd `cmd:"" help:"Recompute summaries for a date range."`
}

type CacheRefreshCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CacheRefreshCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	rec, err := svc.Cache().Refresh(ctx, date)
	if err != nil {
		return err
	}
	ctx.Printf("✓ %s: %d%% (dopamine %v, workout %v, hygiene %v)\n",
		rec.Date, rec.TotalCompletion, rec.DopamineCompleted, rec.WorkoutCompleted, rec.HygieneCompleted)
	return nil
}

type CacheVerifyCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CacheVerifyCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	ok, fresh, err := svc.Cache().Verify(ctx, date)
	if err != nil {
		return err
	}
	if ok {
		ctx.Printf("✓ %s is up to date (%d%%)\n", date, fresh.TotalCompletion)
		return nil
	}
	ctx.Printf("⚠ %s is stale; expected %d%%. Run 'lifetrack cache refresh --date %s'.\n", date, fresh.TotalCompletion, date)
	return nil
}

type CacheRebuildCmd struct {
	From string `help:"First date (YYYY-MM-DD)." default:""`
	To   string `help:"Last date (YYYY-MM-DD, default: today)." default:""`
	Days int    `help:"Days back from --to when --from is omitted." default:"30"`
}

func (c *CacheRebuildCmd) Run(ctx *cli.Context) error {
	to, err := ctx.ResolveDate(c.To)
	if err != nil {
		return err
	}
	from := c.From
	if from == "" {
		if from, err = utils.ShiftDateKey(to, -(c.Days - 1)); err != nil {
			return err
		}
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	n, err := svc.Cache().Rebuild(ctx, from, to)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Rebuilt %d day(s) from %s to %s\n", n, from, to)
	return nil
}
