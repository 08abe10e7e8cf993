package dopamine

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/cli"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
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
	ctx.Now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	return ctx, store, &out
}

func TestLogListDelete(t *testing.T) {
	ctx, store, out := setup(t)
	bg := context.Background()

	if err := (&DopamineLogCmd{Status: "passed", Notes: "calm"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&DopamineLogCmd{Status: "failed", Date: "2023-12-31"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Dopamine passed for 2024-01-01") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	if err := (&DopamineListCmd{Limit: 5}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "✓ 2024-01-01") || !strings.HasPrefix(lines[1], "✗ 2023-12-31") {
		t.Errorf("unexpected list:\n%s", out.String())
	}

	entry, err := store.Dopamine().First(bg, storage.Where("date", "2023-12-31"))
	if err != nil {
		t.Fatal(err)
	}
	if err := (&DopamineDeleteCmd{ID: entry.ID, Yes: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.Dopamine().Count(bg, storage.All()); n != 1 {
		t.Errorf("expected 1 entry left, got %d", n)
	}
	if err := (&DopamineDeleteCmd{ID: entry.ID, Yes: true}).Run(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLogRejectsBadDate(t *testing.T) {
	ctx, _, _ := setup(t)
	if err := (&DopamineLogCmd{Status: "passed", Date: "yesterday"}).Run(ctx); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteAsksFirst(t *testing.T) {
	ctx, store, out := setup(t)
	bg := context.Background()
	id, err := store.Dopamine().Add(bg, models.DopamineEntry{Date: "2024-01-01", Status: models.DopaminePassed})
	if err != nil {
		t.Fatal(err)
	}

	var asked string
	ctx.Prompt = func(title string) (bool, error) {
		asked = title
		return false, nil
	}
	if err := (&DopamineDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if asked != "Delete dopamine entry "+id+"?" {
		t.Errorf("prompt = %q", asked)
	}
	if !strings.Contains(out.String(), "Delete cancelled.") {
		t.Errorf("expected cancellation notice:\n%s", out.String())
	}
	if n, _ := store.Dopamine().Count(bg, storage.All()); n != 1 {
		t.Fatalf("declined delete removed the entry")
	}

	ctx.Prompt = func(string) (bool, error) { return true, nil }
	if err := (&DopamineDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.Dopamine().Count(bg, storage.All()); n != 0 {
		t.Errorf("confirmed delete left %d entries", n)
	}
}
