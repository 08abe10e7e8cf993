package settings

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/cli"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
	"github.com/julianstephens/lifetrack/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone          *string `help:"IANA timezone used to decide what 'today' is (or 'Local')."`
	HygieneThreshold  *int    `help:"Percent of habits needed for a hygiene day to pass."`
	WorkoutStreakMode *string `help:"Which workout days extend the streak: logged or completed."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:            %s\n", settings.Timezone)
		ctx.Printf("  Hygiene Threshold:   %d%%\n", settings.HygieneThreshold)
		ctx.Printf("  Workout Streak Mode: %s\n", settings.WorkoutStreakMode)
		return nil
	}

	previous := settings
	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return apperrors.Validationf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.HygieneThreshold != nil {
		settings.HygieneThreshold = *c.HygieneThreshold
		updated = true
	}
	if c.WorkoutStreakMode != nil {
		settings.WorkoutStreakMode = models.WorkoutStreakMode(*c.WorkoutStreakMode)
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}
	if err := validation.Struct(settings); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")

	if settings.HygieneThreshold == previous.HygieneThreshold {
		return nil
	}
	n, err := rebuildSummaries(ctx)
	if err != nil {
		ctx.Printf("⚠ failed to rebuild daily summaries: %v\n", err)
		ctx.Println("  Run 'lifetrack cache rebuild' to repair them.")
		return nil
	}
	ctx.Printf("✓ Rebuilt %d daily summaries for the new hygiene threshold\n", n)
	return nil
}

// rebuildSummaries recomputes every stored daily summary, from the oldest
// one through today, under the freshly saved settings.
func rebuildSummaries(ctx *cli.Context) (int, error) {
	ctx.Reload()
	svc, err := ctx.Service()
	if err != nil {
		return 0, err
	}
	today := svc.Engine().Today()
	from := today
	oldest, err := ctx.Store.DailyCompletions().First(ctx, storage.All().Asc("date"))
	switch {
	case err == nil:
		if oldest.Date < from {
			from = oldest.Date
		}
	case !apperrors.IsNotFound(err):
		return 0, err
	}
	return svc.Cache().Rebuild(ctx, from, today)
}
