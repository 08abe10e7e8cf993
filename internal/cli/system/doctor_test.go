package system

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setupTestDoctorDB(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	ctx := cli.NewContext(context.Background(), store)
	ctx.Out = &out
	ctx.Now = func() time.Time { return time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC) }
	return ctx, store, &out
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, _, out := setupTestDoctorDB(t)

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v\n%s", err, out.String())
	}
	// Missing backups is a warning, not a failure
	if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
		t.Errorf("expected backup warning:\n%s", out.String())
	}
}

func TestDoctorCmd_BrokenSchema(t *testing.T) {
	ctx, store, out := setupTestDoctorDB(t)

	if _, err := store.GetDB().Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected doctor to fail on a future schema version")
	}
	if !strings.Contains(out.String(), "❌ Schema version: FAIL") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestDoctorCmd_StaleCache(t *testing.T) {
	ctx, store, out := setupTestDoctorDB(t)

	// A write that bypasses the tracker leaves the summary stale.
	if _, err := store.Dopamine().Add(context.Background(), models.DopamineEntry{Date: "2024-03-12", Status: models.DopaminePassed}); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected doctor to report the stale cache")
	}
	if !strings.Contains(out.String(), "2024-03-12") {
		t.Errorf("stale date not reported:\n%s", out.String())
	}

	svc, _ := ctx.Service()
	if _, err := svc.Cache().Refresh(context.Background(), "2024-03-12"); err != nil {
		t.Fatal(err)
	}
	n, _ := store.DailyCompletions().Count(context.Background(), storage.Where("date", "2024-03-12"))
	if n != 1 {
		t.Fatalf("refresh did not write a summary")
	}
	out.Reset()
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor still failing after refresh: %v\n%s", err, out.String())
	}
}

func TestDoctorCmd_ClosedDatabase(t *testing.T) {
	ctx, store, out := setupTestDoctorDB(t)
	store.Close()

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected failure with a closed database")
	}
	if !strings.Contains(out.String(), "SKIPPED") {
		t.Errorf("dependent checks should be skipped:\n%s", out.String())
	}
}

func TestInitCmdSeedsOnce(t *testing.T) {
	ctx, store, out := setupTestDoctorDB(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "starter workout template") {
		t.Errorf("expected seed output:\n%s", out.String())
	}
	out.Reset()
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "starter") {
		t.Errorf("second init should not reseed:\n%s", out.String())
	}
	n, _ := store.WorkoutTemplates().Count(context.Background(), storage.All())
	if n != 1 {
		t.Errorf("expected 1 template, got %d", n)
	}
}

func TestMigrateCmdUpToDate(t *testing.T) {
	ctx, _, out := setupTestDoctorDB(t)
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "up to date") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
