package workouts

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

type WorkoutCmd struct {
	Log      WorkoutLogCmd     `cmd:"" help:"Record the day's workout outcome."`
	History  WorkoutHistoryCmd `cmd:"" help:"Show recent workouts."`
	Stats    WorkoutStatsCmd   `cmd:"" help:"Show workout counts and streaks."`
	Delete   WorkoutDeleteCmd  `cmd:"" help:"Delete a workout entry."`
	Template struct {
		Add  TemplateAddCmd  `cmd:"" help:"Add a workout template."`
		List TemplateListCmd `cmd:"" help:"List templates and their exercises."`
	} `cmd:"" help:"Manage workout templates."`
	Exercise struct {
		Add ExerciseAddCmd `cmd:"" help:"Add an exercise to a template."`
	} `cmd:"" help:"Manage template exercises."`
}

type WorkoutLogCmd struct {
	Type string `arg:"" enum:"completed,rest,missed" help:"completed, rest or missed."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *WorkoutLogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	_, err = svc.LogWorkout(ctx, date, models.WorkoutType(c.Type))
	return ctx.Saved(err, "Workout %s for %s", c.Type, date)
}

type WorkoutHistoryCmd struct {
	Limit int `help:"Number of entries to show (0 for all)." default:"10"`
}

func (c *WorkoutHistoryCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	history, err := svc.WorkoutHistory(ctx, c.Limit)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		ctx.Println("No workouts logged yet.")
		return nil
	}
	for _, w := range history {
		ctx.Printf("%s  %-9s (%s)\n", w.Date, w.Type, w.ID)
	}
	return nil
}

type WorkoutStatsCmd struct{}

func (c *WorkoutStatsCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	stats, err := svc.Engine().WorkoutStats(ctx)
	if err != nil {
		return err
	}
	ctx.Println("Workout Stats:")
	ctx.Printf("  This week:      %d\n", stats.WeeklyCompleted)
	ctx.Printf("  This month:     %d\n", stats.MonthlyCompleted)
	ctx.Printf("  Total:          %d\n", stats.TotalCompleted)
	ctx.Printf("  Consistency:    %d%%\n", stats.Consistency)
	ctx.Printf("  Current streak: %d days\n", stats.CurrentStreak)
	ctx.Printf("  Longest streak: %d days\n", stats.LongestStreak)
	return nil
}

type WorkoutDeleteCmd struct {
	ID  string `arg:"" help:"Workout entry ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *WorkoutDeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.ConfirmDelete(fmt.Sprintf("workout entry %s", c.ID), c.Yes)
	if err != nil || !ok {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	return ctx.Saved(svc.DeleteWorkout(ctx, c.ID), "Deleted workout %s", c.ID)
}

type TemplateAddCmd struct {
	Name string `arg:"" help:"Template name."`
}

func (c *TemplateAddCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	tmpl, err := svc.AddTemplate(ctx, c.Name)
	return ctx.Saved(err, "Added template %s (%s)", c.Name, tmpl.ID)
}

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	templates, err := svc.Templates(ctx)
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		ctx.Println("No templates found.")
		return nil
	}
	for _, t := range templates {
		ctx.Printf("%s (%s)\n", t.Name, t.ID)
		exercises, err := svc.Exercises(ctx, t.ID)
		if err != nil {
			return err
		}
		for _, e := range exercises {
			line := fmt.Sprintf("  %d. %s %dx%d", e.Order, e.Name, e.TargetSets, e.TargetReps)
			if e.PR != "" {
				line += "  PR " + e.PR
			}
			ctx.Println(line)
		}
	}
	return nil
}

type ExerciseAddCmd struct {
	Template string `arg:"" help:"Template name or ID."`
	Name     string `arg:"" help:"Exercise name."`
	Sets     int    `help:"Target sets." default:"3"`
	Reps     int    `help:"Target reps." default:"10"`
	PR       string `help:"Personal record note." default:""`
}

func (c *ExerciseAddCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	tmpl, err := resolveTemplate(ctx, svc, c.Template)
	if err != nil {
		return err
	}
	ex, err := svc.AddExercise(ctx, models.WorkoutExercise{
		TemplateID: tmpl.ID,
		Name:       c.Name,
		TargetSets: c.Sets,
		TargetReps: c.Reps,
		PR:         c.PR,
	})
	return ctx.Saved(err, "Added %s to %s as #%d", c.Name, tmpl.Name, ex.Order)
}

func resolveTemplate(ctx *cli.Context, svc *tracker.Service, ref string) (models.WorkoutTemplate, error) {
	templates, err := svc.Templates(ctx)
	if err != nil {
		return models.WorkoutTemplate{}, err
	}
	for _, t := range templates {
		if t.ID == ref || strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	return models.WorkoutTemplate{}, fmt.Errorf("template %q not found", ref)
}
