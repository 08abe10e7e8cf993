package goals

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/constants"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
)

type GoalCmd struct {
	Add     GoalAddCmd     `cmd:"" help:"Add a goal."`
	List    GoalListCmd    `cmd:"" help:"List goals and their progress."`
	Delete  GoalDeleteCmd  `cmd:"" help:"Delete a goal."`
	Refresh GoalRefreshCmd `cmd:"" help:"Recompute goal progress from the tracked data."`
}

type GoalAddCmd struct {
	Title       string `arg:"" help:"Goal title."`
	Type        string `enum:"streak,completion" default:"streak" help:"streak (dopamine days in a row) or completion (perfect hygiene days in a row)."`
	Target      int    `required:"" help:"Target value in days."`
	Deadline    string `help:"Deadline in YYYY-MM-DD format." default:""`
	Description string `help:"Optional description." default:""`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	var deadline time.Time
	if c.Deadline != "" {
		d, err := time.Parse(constants.DateFormat, c.Deadline)
		if err != nil {
			return apperrors.Validationf("invalid deadline %q (expected YYYY-MM-DD)", c.Deadline)
		}
		deadline = d
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	_, err = svc.AddGoal(ctx, models.Goal{
		Title:       c.Title,
		Description: c.Description,
		Type:        models.GoalType(c.Type),
		TargetValue: c.Target,
		Deadline:    deadline,
	})
	return ctx.Saved(err, "Added goal: %s", c.Title)
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	goals, err := svc.Goals(ctx)
	if err != nil {
		return err
	}
	printGoals(ctx, goals)
	return nil
}

type GoalDeleteCmd struct {
	ID  string `arg:"" help:"Goal ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *GoalDeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.ConfirmDelete(fmt.Sprintf("goal %s", c.ID), c.Yes)
	if err != nil || !ok {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	return ctx.Saved(svc.DeleteGoal(ctx, c.ID), "Deleted goal %s", c.ID)
}

type GoalRefreshCmd struct{}

func (c *GoalRefreshCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	goals, err := svc.RefreshGoals(ctx)
	if err != nil {
		return err
	}
	printGoals(ctx, goals)
	return nil
}

func printGoals(ctx *cli.Context, goals []models.Goal) {
	if len(goals) == 0 {
		ctx.Println("No goals found.")
		return
	}
	for _, g := range goals {
		mark := "○"
		if g.Completed {
			mark = "✓"
		}
		ctx.Printf("%s %s [%s] %d/%d (%d%%)", mark, g.Title, g.Type, g.CurrentValue, g.TargetValue, g.Progress())
		if !g.Deadline.IsZero() {
			ctx.Printf(" due %s", g.Deadline.Format(constants.DateFormat))
		}
		ctx.Printf("  (%s)\n", g.ID)
	}
}
