package metrics

import (
	"testing"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
	"github.com/julianstephens/lifetrack/internal/testutil"
)

type fixture struct {
	*sqlite.Store
	t *testing.T
}

func newEngine(t *testing.T, opts Options) (*Engine, *fixture) {
	t.Helper()
	store := testutil.NewStore(t)
	return New(store, testutil.Clock(t, today), opts), &fixture{Store: store, t: t}
}

func (f *fixture) dopamine(date string, status models.DopamineStatus) {
	testutil.MustDopamine(f.t, f.Store, date, status)
}

func (f *fixture) workout(date string, typ models.WorkoutType) {
	testutil.MustWorkout(f.t, f.Store, date, typ)
}

func (f *fixture) habit(name string, order int) string {
	return testutil.MustHabit(f.t, f.Store, name, order)
}

func (f *fixture) completion(habitID, date string, done bool) {
	testutil.MustCompletion(f.t, f.Store, habitID, date, done)
}
