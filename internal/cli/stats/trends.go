package stats

import (
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/report"
)

type TrendsCmd struct {
	Days  int `help:"Window for habit consistency." default:"7"`
	Weeks int `help:"Weeks of workout frequency to show." default:"8"`
}

func (c *TrendsCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	engine := svc.Engine()

	weekly, err := engine.WeeklyProductivity(ctx)
	if err != nil {
		return err
	}
	ctx.Println(report.WeeklyTable(weekly))

	days := c.Days
	if days <= 0 {
		days = constants.ConsistencyDays
	}
	rates, err := engine.HabitConsistency(ctx, days)
	if err != nil {
		return err
	}
	if len(rates) > 0 {
		ctx.Printf("\nHabit consistency (%d days):\n", days)
		for _, r := range rates {
			ctx.Printf("  %3d%%  %s\n", r.Rate, r.Name)
		}
	}

	weeks := c.Weeks
	if weeks <= 0 {
		weeks = constants.FrequencyWeeks
	}
	frequency, err := engine.WorkoutFrequency(ctx, weeks)
	if err != nil {
		return err
	}
	ctx.Printf("\nCompleted workouts per week (%d weeks):\n", weeks)
	for _, w := range frequency {
		ctx.Printf("  week of %s  %d\n", w.WeekStart, w.Completed)
	}

	moods, err := engine.MoodTrend(ctx, constants.MoodTrendLimit)
	if err != nil {
		return err
	}
	if len(moods) > 0 {
		ctx.Println("\nMood trend (oldest first):")
		for _, m := range moods {
			ctx.Printf("  %s  mood %d  energy %d  numb %d\n", m.Date, m.Mood, m.Energy, m.Numb)
		}
	}

	points, err := engine.MoodEnergy(ctx, constants.MoodEnergyLimit)
	if err != nil {
		return err
	}
	if len(points) > 0 {
		ctx.Printf("\nMood by energy (last %d entries):\n", len(points))
		for energy := 1; energy <= 5; energy++ {
			sum, n := 0, 0
			for _, p := range points {
				if p.Energy == energy {
					sum += p.Mood
					n++
				}
			}
			if n > 0 {
				ctx.Printf("  energy %d  avg mood %.1f  (%d days)\n", energy, float64(sum)/float64(n), n)
			}
		}
	}
	return nil
}
