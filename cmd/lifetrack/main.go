package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/cli/backups"
	"github.com/julianstephens/lifetrack/internal/cli/dopamine"
	"github.com/julianstephens/lifetrack/internal/cli/goals"
	"github.com/julianstephens/lifetrack/internal/cli/habits"
	"github.com/julianstephens/lifetrack/internal/cli/mood"
	"github.com/julianstephens/lifetrack/internal/cli/settings"
	"github.com/julianstephens/lifetrack/internal/cli/stats"
	"github.com/julianstephens/lifetrack/internal/cli/system"
	"github.com/julianstephens/lifetrack/internal/cli/workouts"
	"github.com/julianstephens/lifetrack/internal/constants"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Path to the lifetrack SQLite database." type:"path" env:"LIFETRACK_DB" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr." env:"LIFETRACK_DEBUG"`

	Init     system.InitCmd       `cmd:"" help:"Initialize lifetrack storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." aliases:"dashboard" default:"1"`
	Report   stats.ReportCmd      `cmd:"" help:"Show a day's stats."`
	Calendar stats.CalendarCmd    `cmd:"" help:"Show a month of outcomes for a domain."`
	Streak   stats.StreakCmd      `cmd:"" help:"Show current and longest streaks."`
	Trends   stats.TrendsCmd      `cmd:"" help:"Show weekly productivity, habit consistency and mood trend."`
	Export   stats.ExportCmd      `cmd:"" help:"Export every record as JSON."`
	Cache    stats.CacheCmd       `cmd:"" help:"Inspect and repair daily completion summaries."`
	Dopamine dopamine.DopamineCmd `cmd:"" help:"Track daily dopamine control."`
	Habit    habits.HabitCmd      `cmd:"" help:"Manage hygiene habits and completions."`
	Workout  workouts.WorkoutCmd  `cmd:"" help:"Track workouts and manage templates."`
	Mood     mood.MoodCmd         `cmd:"" help:"Track mood, energy and numbness."`
	Focus    mood.FocusCmd        `cmd:"" help:"Track focus sessions."`
	Goal     goals.GoalCmd        `cmd:"" help:"Manage goals."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

// commands that open the database themselves
var selfLoading = map[string]bool{"init": true, "migrate": true}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker for dopamine control, hygiene, workouts and mood"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store := sqlite.NewStore(CLI.Config)
	defer store.Close()

	if ctx.Selected() != nil && !selfLoading[ctx.Selected().Name] {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := ctx.Run(cli.NewContext(runCtx, store)); err != nil {
		stop()
		store.Close()
		apperrors.Fatal(err)
	}
}
