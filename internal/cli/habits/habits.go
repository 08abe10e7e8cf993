package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a hygiene habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their status for a day."`
	Done   HabitDoneCmd   `cmd:"" help:"Mark a habit as done."`
	Undo   HabitUndoCmd   `cmd:"" help:"Mark a habit as not done."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
}

// resolveHabit finds a habit by ID or case-insensitive name.
func resolveHabit(ctx *cli.Context, svc *tracker.Service, ref string) (models.HygieneHabit, error) {
	habits, err := svc.Habits(ctx)
	if err != nil {
		return models.HygieneHabit{}, err
	}
	for _, h := range habits {
		if h.ID == ref || strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.HygieneHabit{}, fmt.Errorf("habit %q not found", ref)
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	if _, err := resolveHabit(ctx, svc, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}
	_, err = svc.AddHabit(ctx, c.Name, c.Description)
	return ctx.Saved(err, "Added habit: %s", c.Name)
}

type HabitListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	habits, err := svc.Habits(ctx)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		done, err := svc.HabitCompleted(ctx, h.ID, date)
		if err != nil {
			return err
		}
		mark := "○"
		if done {
			mark = "✓"
		}
		ctx.Printf("%s %s\n", mark, h.Name)
	}
	rate, err := svc.Engine().HygieneCompletion(ctx, date)
	if err != nil {
		return err
	}
	ctx.Printf("\n%s: %d%% complete\n", date, rate)
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	return setCompletion(ctx, c.Habit, c.Date, true)
}

type HabitUndoCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitUndoCmd) Run(ctx *cli.Context) error {
	return setCompletion(ctx, c.Habit, c.Date, false)
}

func setCompletion(ctx *cli.Context, ref, rawDate string, completed bool) error {
	date, err := ctx.ResolveDate(rawDate)
	if err != nil {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	habit, err := resolveHabit(ctx, svc, ref)
	if err != nil {
		return err
	}
	_, err = svc.SetHabitCompletion(ctx, habit.ID, date, completed)
	state := "done"
	if !completed {
		state = "not done"
	}
	return ctx.Saved(err, "%s marked %s for %s", habit.Name, state, date)
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	habit, err := resolveHabit(ctx, svc, c.Habit)
	if err != nil {
		return err
	}
	ok, err := ctx.Confirm(fmt.Sprintf("Delete %q and all of its completions?", habit.Name), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	return ctx.Saved(svc.DeleteHabit(ctx, habit.ID), "Deleted habit: %s", habit.Name)
}
