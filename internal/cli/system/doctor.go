package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/backup"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
	"github.com/julianstephens/lifetrack/internal/utils"
	"github.com/julianstephens/lifetrack/internal/validation"
)

// cacheCheckDays is how many recent days the doctor verifies in the daily
// completion cache.
const cacheCheckDays = 7

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(ctx *cli.Context) error
	needsDB bool
	warning bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Settings", run: checkSettings, needsDB: true},
	{name: "Habit integrity", run: checkHabitIntegrity, needsDB: true},
	{name: "Date formats", run: checkDateFormats, needsDB: true},
	{name: "Daily completion cache", run: checkCompletionCache, needsDB: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	dbReachable := true
	for i, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			failed++
			if i == 0 {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	ctx.Println("All checks passed.")
	return nil
}

func sqliteStore(ctx *cli.Context) (*sqlite.Store, error) {
	s, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil, fmt.Errorf("doctor only supports SQLite storage")
	}
	return s, nil
}

func checkDBReachable(ctx *cli.Context) error {
	s, err := sqliteStore(ctx)
	if err != nil {
		return err
	}
	db := s.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is not open")
	}
	return db.PingContext(ctx)
}

func checkSchemaVersion(ctx *cli.Context) error {
	s, err := sqliteStore(ctx)
	if err != nil {
		return err
	}
	current, latest, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d - run 'lifetrack migrate'", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - run 'lifetrack backup create'")
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings(ctx)
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	return validation.Struct(settings)
}

func checkHabitIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.HygieneHabits().Find(ctx, storage.All())
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}
	completions, err := ctx.Store.HygieneCompletions().Find(ctx, storage.All())
	if err != nil {
		return err
	}
	orphans := 0
	for _, c := range completions {
		if !known[c.HabitID] {
			orphans++
		}
	}
	if orphans > 0 {
		return fmt.Errorf("%d completion(s) reference deleted habits", orphans)
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	var bad []string
	collect := func(kind string, dates []string) {
		for _, d := range dates {
			if !utils.ValidateDateKey(d) {
				bad = append(bad, kind+":"+d)
			}
		}
	}

	dopamine, err := ctx.Store.Dopamine().Find(ctx, storage.All())
	if err != nil {
		return err
	}
	workouts, err := ctx.Store.WorkoutHistory().Find(ctx, storage.All())
	if err != nil {
		return err
	}
	moods, err := ctx.Store.Moods().Find(ctx, storage.All())
	if err != nil {
		return err
	}
	dates := make([]string, 0, len(dopamine))
	for _, e := range dopamine {
		dates = append(dates, e.Date)
	}
	collect("dopamine", dates)
	dates = dates[:0]
	for _, e := range workouts {
		dates = append(dates, e.Date)
	}
	collect("workout", dates)
	dates = dates[:0]
	for _, e := range moods {
		dates = append(dates, e.Date)
	}
	collect("mood", dates)

	if len(bad) > 0 {
		return fmt.Errorf("invalid dates: %s", strings.Join(bad, ", "))
	}
	return nil
}

func checkCompletionCache(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	today := svc.Engine().Today()

	var stale []string
	for i := 0; i < cacheCheckDays; i++ {
		date, err := utils.ShiftDateKey(today, -i)
		if err != nil {
			return err
		}
		ok, fresh, err := svc.Cache().Verify(ctx, date)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		// Days nobody logged anything on have no summary yet.
		n, err := ctx.Store.DailyCompletions().Count(ctx, storage.Where("date", date))
		if err != nil {
			return err
		}
		if n > 0 || fresh.TotalCompletion > 0 {
			stale = append(stale, date)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("stale summaries for %s - run 'lifetrack cache rebuild'", strings.Join(stale, ", "))
	}
	return nil
}
