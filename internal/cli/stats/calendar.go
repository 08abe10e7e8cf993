package stats

import (
	"encoding/json"
	"strings"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	calendarview "github.com/julianstephens/lifetrack/internal/tui/components/calendar"
)

type CalendarCmd struct {
	Domain string `arg:"" enum:"dopamine,workout,hygiene" help:"dopamine, workout or hygiene."`
	Month  string `help:"Month in YYYY-MM format (default: this month)." default:""`
	JSON   bool   `help:"Print the cells as JSON."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	clock, err := ctx.Clock()
	if err != nil {
		return err
	}
	year, month, err := cli.ParseMonth(c.Month, clock())
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	domain := models.Domain(strings.ToLower(c.Domain))
	cells, err := svc.Calendar().ProjectMonth(ctx, year, month, domain)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(cells)
	}
	ctx.Println(calendarview.Render(calendarview.Title(domain, year, month), cells))
	return nil
}
