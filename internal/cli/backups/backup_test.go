package backups

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setup(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	var out bytes.Buffer
	ctx := cli.NewContext(context.Background(), store)
	ctx.Out = &out
	return ctx, store, &out
}

func TestBackupListEmpty(t *testing.T) {
	ctx, _, out := setup(t)
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestBackupCreateListRestore(t *testing.T) {
	ctx, store, out := setup(t)
	bg := context.Background()

	if _, err := store.Dopamine().Add(bg, models.DopamineEntry{Date: "2024-01-01", Status: models.DopaminePassed}); err != nil {
		t.Fatal(err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Fatalf("expected one backup listed:\n%s", out.String())
	}
	name := filepath.Base(strings.TrimSpace(strings.TrimPrefix(strings.Split(out.String(), "\n")[0], "✓ Backup created:")))

	// Change the live database after the backup.
	if _, err := store.Dopamine().DeleteWhere(bg, storage.All()); err != nil {
		t.Fatal(err)
	}

	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v\n%s", err, out.String())
	}
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	n, err := store.Dopamine().Count(bg, storage.All())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected restored entry, got %d", n)
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _, _ := setup(t)
	if err := (&BackupRestoreCmd{BackupFile: "nope.db", Yes: true}).Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}
