package stats

import (
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
)

type StreakCmd struct {
	Domain string `arg:"" optional:"" help:"Limit to one domain (dopamine, workout or hygiene)."`
}

var streakDomains = []models.Domain{models.DomainDopamine, models.DomainWorkout, models.DomainHygiene}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	domains := streakDomains
	if c.Domain != "" {
		domains = []models.Domain{models.Domain(c.Domain)}
	}

	for _, d := range domains {
		current, err := svc.Engine().CurrentStreak(ctx, d)
		if err != nil {
			return err
		}
		longest, err := svc.Engine().LongestStreak(ctx, d)
		if err != nil {
			return err
		}
		ctx.Printf("%-9s current %3d  longest %3d\n", d, current, longest)
	}
	return nil
}
