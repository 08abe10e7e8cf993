// Package cli holds the shared context for lifetrack's commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/backup"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/metrics"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/tracker"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Context struct {
	context.Context

	Store storage.Provider
	Out   io.Writer

	// Now overrides the settings-derived clock. Tests pin it.
	Now func() time.Time

	// Prompt answers Confirm questions in place of the interactive form.
	Prompt func(title string) (bool, error)

	svc *tracker.Service
}

func NewContext(ctx context.Context, store storage.Provider) *Context {
	return &Context{Context: ctx, Store: store, Out: os.Stdout}
}

// Service builds the tracker on first use, honoring the stored timezone and
// metric settings.
func (c *Context) Service() (*tracker.Service, error) {
	if c.svc != nil {
		return c.svc, nil
	}
	settings, err := c.Store.GetSettings(c)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	now := c.Now
	if now == nil {
		if now, err = utils.ClockInTimezone(settings.Timezone); err != nil {
			return nil, err
		}
	}
	c.svc = tracker.NewService(c.Store, now, metrics.OptionsFromSettings(settings))
	return c.svc, nil
}

// Reload drops the cached tracker so the next Service call reads the
// stored settings again.
func (c *Context) Reload() {
	c.svc = nil
}

// Clock returns the clock the tracker runs on.
func (c *Context) Clock() (func() time.Time, error) {
	if c.Now != nil {
		return c.Now, nil
	}
	settings, err := c.Store.GetSettings(c)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return utils.ClockInTimezone(settings.Timezone)
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// Saved reports the outcome of a write. A failed cache refresh after a
// committed write is printed as a warning and not treated as a failure.
func (c *Context) Saved(err error, format string, args ...interface{}) error {
	if err != nil && !apperrors.IsWarning(err) {
		return err
	}
	c.Printf("✓ "+format+"\n", args...)
	if err != nil {
		c.Printf("⚠ %v\n", err)
		c.Println("  Run 'lifetrack cache rebuild' to repair the daily summary.")
	}
	return nil
}

// Confirm asks a yes/no question. skip answers yes without prompting.
func (c *Context) Confirm(title string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	if c.Prompt != nil {
		return c.Prompt(title)
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// ConfirmDelete asks before deleting what. It prints a cancellation notice
// and returns false when the user declines.
func (c *Context) ConfirmDelete(what string, skip bool) (bool, error) {
	ok, err := c.Confirm(fmt.Sprintf("Delete %s?", what), skip)
	if err != nil {
		return false, err
	}
	if !ok {
		c.Println("Delete cancelled.")
	}
	return ok, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(c); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveDate returns date, or today on the tracker's clock when empty.
func (c *Context) ResolveDate(date string) (string, error) {
	if date == "" {
		now, err := c.Clock()
		if err != nil {
			return "", err
		}
		return utils.DateKey(now()), nil
	}
	if !utils.ValidateDateKey(date) {
		return "", apperrors.Validationf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// ParseMonth parses YYYY-MM. An empty string means the current month.
func ParseMonth(s string, now time.Time) (int, time.Month, error) {
	if s == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, apperrors.Validationf("invalid month %q (expected YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}
