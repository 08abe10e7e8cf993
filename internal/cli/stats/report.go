package stats

import (
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/report"
)

type ReportCmd struct {
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	JSON   bool   `help:"Print the report as JSON."`
	Weekly bool   `help:"Include the last seven days."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	stats, err := svc.Engine().DailyStats(ctx, date)
	if err != nil {
		return err
	}
	if c.JSON {
		return report.JSON(ctx.Out, stats)
	}

	ctx.Println(report.Table(stats))
	if c.Weekly {
		weekly, err := svc.Engine().WeeklyProductivity(ctx)
		if err != nil {
			return err
		}
		ctx.Println(report.WeeklyTable(weekly))
	}
	return nil
}
