package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// collections binds every table to one querier.
type collections struct {
	q querier
}

var _ storage.Collections = collections{}

func (c collections) Dopamine() storage.Collection[models.DopamineEntry] {
	return collection[models.DopamineEntry]{q: c.q, t: dopamineTable}
}

func (c collections) HygieneHabits() storage.Collection[models.HygieneHabit] {
	return collection[models.HygieneHabit]{q: c.q, t: habitTable}
}

func (c collections) HygieneCompletions() storage.Collection[models.HygieneCompletion] {
	return collection[models.HygieneCompletion]{q: c.q, t: habitCompletionTable}
}

func (c collections) WorkoutTemplates() storage.Collection[models.WorkoutTemplate] {
	return collection[models.WorkoutTemplate]{q: c.q, t: templateTable}
}

func (c collections) WorkoutExercises() storage.Collection[models.WorkoutExercise] {
	return collection[models.WorkoutExercise]{q: c.q, t: exerciseTable}
}

func (c collections) WorkoutHistory() storage.Collection[models.WorkoutHistory] {
	return collection[models.WorkoutHistory]{q: c.q, t: workoutTable}
}

func (c collections) Moods() storage.Collection[models.MoodEntry] {
	return collection[models.MoodEntry]{q: c.q, t: moodTable}
}

func (c collections) FocusSessions() storage.Collection[models.FocusSession] {
	return collection[models.FocusSession]{q: c.q, t: focusTable}
}

func (c collections) Goals() storage.Collection[models.Goal] {
	return collection[models.Goal]{q: c.q, t: goalTable}
}

func (c collections) DailyCompletions() storage.Collection[models.DailyCompletion] {
	return collection[models.DailyCompletion]{q: c.q, t: dailyCompletionTable}
}

// table describes how one entity maps onto its SQL table.
// columns[0] is always "id".
type table[T any] struct {
	name    string
	columns []string
	// values returns the column values of rec in columns order.
	values func(rec T) []interface{}
	scan   func(row scanner) (T, error)
	// identity exposes the id and creation time so Add can fill them in.
	identity func(rec *T) (*string, *time.Time)
}

func (t *table[T]) hasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t *table[T]) selectList() string {
	return strings.Join(t.columns, ", ")
}

type collection[T any] struct {
	q querier
	t *table[T]
}

func (c collection[T]) Add(ctx context.Context, rec T) (string, error) {
	id, created := c.t.identity(&rec)
	if *id == "" {
		*id = uuid.NewString()
	}
	if created.IsZero() {
		*created = time.Now()
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(c.t.columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", c.t.name, c.t.selectList(), placeholders)
	if _, err := c.q.ExecContext(ctx, query, c.t.values(rec)...); err != nil {
		return "", apperrors.Storage("add "+c.t.name, err)
	}
	return *id, nil
}

func (c collection[T]) Update(ctx context.Context, id string, fields storage.Fields) error {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "id" || !c.t.hasColumn(k) {
			return fmt.Errorf("update %s: unknown field %q", c.t.name, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, len(keys))
	args := make([]interface{}, 0, len(keys)+1)
	for i, k := range keys {
		sets[i] = k + " = ?"
		args = append(args, encode(fields[k]))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", c.t.name, strings.Join(sets, ", "))
	res, err := c.q.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Storage("update "+c.t.name, err)
	}
	return c.expectRow(res, id)
}

func (c collection[T]) Delete(ctx context.Context, id string) error {
	res, err := c.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", c.t.name), id)
	if err != nil {
		return apperrors.Storage("delete "+c.t.name, err)
	}
	return c.expectRow(res, id)
}

func (c collection[T]) expectRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage(c.t.name, err)
	}
	if n == 0 {
		return apperrors.NotFoundf("%s %s", c.t.name, id)
	}
	return nil
}

func (c collection[T]) Get(ctx context.Context, id string) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", c.t.selectList(), c.t.name)
	rec, err := c.t.scan(c.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return rec, apperrors.NotFoundf("%s %s", c.t.name, id)
	}
	if err != nil {
		return rec, apperrors.Storage("get "+c.t.name, err)
	}
	return rec, nil
}

func (c collection[T]) Find(ctx context.Context, q storage.Query) ([]T, error) {
	where, args, err := c.where(q)
	if err != nil {
		return nil, err
	}
	order, err := c.order(q)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s%s", c.t.selectList(), c.t.name, where, order)
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage("find "+c.t.name, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		rec, err := c.t.scan(rows)
		if err != nil {
			return nil, apperrors.Storage("scan "+c.t.name, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("find "+c.t.name, err)
	}
	return out, nil
}

func (c collection[T]) First(ctx context.Context, q storage.Query) (T, error) {
	var zero T
	recs, err := c.Find(ctx, q.Take(1))
	if err != nil {
		return zero, err
	}
	if len(recs) == 0 {
		return zero, apperrors.NotFoundf("%s", c.t.name)
	}
	return recs[0], nil
}

func (c collection[T]) DeleteWhere(ctx context.Context, q storage.Query) (int64, error) {
	where, args, err := c.where(q)
	if err != nil {
		return 0, err
	}
	res, err := c.q.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s%s", c.t.name, where), args...)
	if err != nil {
		return 0, apperrors.Storage("delete "+c.t.name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage("delete "+c.t.name, err)
	}
	return n, nil
}

func (c collection[T]) Count(ctx context.Context, q storage.Query) (int, error) {
	where, args, err := c.where(q)
	if err != nil {
		return 0, err
	}
	var n int
	if err := c.q.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s%s", c.t.name, where), args...).Scan(&n); err != nil {
		return 0, apperrors.Storage("count "+c.t.name, err)
	}
	return n, nil
}

func (c collection[T]) where(q storage.Query) (string, []interface{}, error) {
	if len(q.Filters) == 0 {
		return "", nil, nil
	}
	conds := make([]string, len(q.Filters))
	args := make([]interface{}, len(q.Filters))
	for i, f := range q.Filters {
		if !c.t.hasColumn(f.Field) {
			return "", nil, fmt.Errorf("query %s: unknown field %q", c.t.name, f.Field)
		}
		conds[i] = f.Field + " = ?"
		args[i] = encode(f.Value)
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// order defaults to insertion order and breaks ties by it.
func (c collection[T]) order(q storage.Query) (string, error) {
	if q.OrderBy == "" {
		return " ORDER BY rowid", nil
	}
	if !c.t.hasColumn(q.OrderBy) {
		return "", fmt.Errorf("query %s: unknown order field %q", c.t.name, q.OrderBy)
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, rowid %s", q.OrderBy, dir, dir), nil
}

// encode converts a Go value into what is stored in the column.
func encode(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return formatTime(x)
	case string, bool, int, int64, float64:
		return x
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Bool:
		return rv.Bool()
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
