package mood

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

type MoodCmd struct {
	Log    MoodLogCmd    `cmd:"" help:"Record mood, energy and numbness (1-5)."`
	List   MoodListCmd   `cmd:"" help:"Show recent mood entries."`
	Delete MoodDeleteCmd `cmd:"" help:"Delete a mood entry."`
}

type MoodLogCmd struct {
	Mood   int    `help:"Mood from 1 (low) to 5 (great). Prompts when omitted." default:"0"`
	Energy int    `help:"Energy from 1 to 5. Prompts when omitted." default:"0"`
	Numb   int    `help:"Numbness from 1 (present) to 5 (numb). Prompts when omitted." default:"0"`
	Notes  string `help:"Optional note." default:""`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MoodLogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if c.Mood == 0 || c.Energy == 0 || c.Numb == 0 {
		if err := c.prompt(); err != nil {
			return err
		}
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	_, err = svc.LogMood(ctx, models.MoodEntry{
		Date:   date,
		Mood:   c.Mood,
		Energy: c.Energy,
		Numb:   c.Numb,
		Notes:  strings.TrimSpace(c.Notes),
	})
	return ctx.Saved(err, "Mood %d, energy %d, numb %d for %s", c.Mood, c.Energy, c.Numb, date)
}

// prompt asks for every rating that was not passed as a flag.
func (c *MoodLogCmd) prompt() error {
	scale := huh.NewOptions(1, 2, 3, 4, 5)
	var fields []huh.Field
	for _, f := range []struct {
		title string
		value *int
	}{
		{"Mood", &c.Mood},
		{"Energy", &c.Energy},
		{"Numbness", &c.Numb},
	} {
		if *f.value != 0 {
			continue
		}
		*f.value = 3
		fields = append(fields, huh.NewSelect[int]().Title(f.title).Options(scale...).Value(f.value))
	}
	if c.Notes == "" {
		fields = append(fields, huh.NewInput().Title("Notes").Value(&c.Notes))
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

type MoodListCmd struct {
	Limit int `help:"Number of entries to show." default:"10"`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	limit := c.Limit
	if limit <= 0 {
		limit = constants.MoodHistoryLimit
	}
	entries, err := svc.MoodHistory(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Println("No mood entries yet.")
		return nil
	}
	for _, e := range entries {
		ctx.Printf("%s  mood %d  energy %d  numb %d  %s (%s)\n", e.Date, e.Mood, e.Energy, e.Numb, e.Notes, e.ID)
	}
	return nil
}

type MoodDeleteCmd struct {
	ID  string `arg:"" help:"Mood entry ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *MoodDeleteCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.ConfirmDelete(fmt.Sprintf("mood entry %s", c.ID), c.Yes)
	if err != nil || !ok {
		return err
	}
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	return ctx.Saved(svc.DeleteMood(ctx, c.ID), "Deleted mood entry %s", c.ID)
}
