package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"varnix-dashboard/metrics"
	"varnix-dashboard/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Fields is a column -> value set for Insert and Update. Values may be
// squirrel expressions.
type Fields map[string]interface{}

// TableSpec describes one user-scoped collection.
type TableSpec struct {
	Kind         models.Kind
	OrderBy      string // designated newest-first column
	HasUpdatedAt bool
}

var (
	ProjectsSpec       = TableSpec{Kind: models.KindProjects, OrderBy: "created_at", HasUpdatedAt: true}
	TodosSpec          = TableSpec{Kind: models.KindTodos, OrderBy: "created_at", HasUpdatedAt: true}
	ExpensesSpec       = TableSpec{Kind: models.KindExpenses, OrderBy: "date"}
	PaymentsSpec       = TableSpec{Kind: models.KindPayments, OrderBy: "date"}
	VarnixProjectsSpec = TableSpec{Kind: models.KindVarnixProjects, OrderBy: "created_at", HasUpdatedAt: true}
	VarnixPaymentsSpec = TableSpec{Kind: models.KindVarnixPayments, OrderBy: "date"}
)

// Table is the gateway for one collection. Every statement is scoped to the
// calling user, so rows owned by someone else behave as missing.
type Table[T any] struct {
	db    *DB
	spec  TableSpec
	now   func() time.Time
	newID func() string
}

type TableOption func(*tableOptions)

type tableOptions struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the server timestamp source.
func WithClock(now func() time.Time) TableOption {
	return func(o *tableOptions) { o.now = now }
}

// WithIDGenerator overrides row id generation.
func WithIDGenerator(newID func() string) TableOption {
	return func(o *tableOptions) { o.newID = newID }
}

func NewTable[T any](db *DB, spec TableSpec, opts ...TableOption) *Table[T] {
	o := tableOptions{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[T]{db: db, spec: spec, now: o.now, newID: o.newID}
}

func (t *Table[T]) Kind() models.Kind {
	return t.spec.Kind
}

func (t *Table[T]) name() string {
	return t.spec.Kind.String()
}

// List returns the user's rows, newest first by the designated column.
func (t *Table[T]) List(ctx context.Context, userID string) (rows []T, err error) {
	defer t.observe("list", time.Now(), &err)

	query, args, err := sq.Select("*").
		From(t.name()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(t.spec.OrderBy+" DESC", "created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, t.fail("list", err)
	}

	rows = make([]T, 0)
	if err := t.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, t.fail("list", err)
	}
	return rows, nil
}

// Get returns a single row owned by userID.
func (t *Table[T]) Get(ctx context.Context, userID, id string) (row *T, err error) {
	defer t.observe("get", time.Now(), &err)

	row, err = t.get(ctx, t.db, userID, id)
	if err != nil {
		return nil, t.fail("get", err)
	}
	return row, nil
}

// Insert stores a new row and returns it as persisted. id, user_id and the
// timestamps are assigned here and override anything in fields.
func (t *Table[T]) Insert(ctx context.Context, userID string, fields Fields) (row *T, err error) {
	defer t.observe("insert", time.Now(), &err)

	now := t.now()
	id := t.newID()

	values := make(map[string]interface{}, len(fields)+4)
	for column, value := range fields {
		values[column] = value
	}
	values["id"] = id
	values["user_id"] = userID
	values["created_at"] = now
	if t.spec.HasUpdatedAt {
		values["updated_at"] = now
	}

	query, args, err := sq.Insert(t.name()).SetMap(values).ToSql()
	if err != nil {
		return nil, t.fail("insert", err)
	}

	row, err = t.writeAndRead(ctx, userID, id, query, args)
	if err != nil {
		return nil, t.fail("insert", err)
	}
	return row, nil
}

// Update changes only the supplied columns and returns the resulting row.
func (t *Table[T]) Update(ctx context.Context, userID, id string, fields Fields) (row *T, err error) {
	defer t.observe("update", time.Now(), &err)

	if len(fields) == 0 && !t.spec.HasUpdatedAt {
		row, err = t.get(ctx, t.db, userID, id)
		if err != nil {
			return nil, t.fail("update", err)
		}
		return row, nil
	}

	// SetMap orders columns by name.
	builder := sq.Update(t.name()).
		SetMap(fields).
		Where(sq.Eq{"id": id, "user_id": userID})
	if t.spec.HasUpdatedAt {
		builder = builder.Set("updated_at", t.now())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, t.fail("update", err)
	}

	row, err = t.writeAndRead(ctx, userID, id, query, args)
	if err != nil {
		return nil, t.fail("update", err)
	}
	return row, nil
}

// Delete removes the row. Deleting a missing row is an error.
func (t *Table[T]) Delete(ctx context.Context, userID, id string) (err error) {
	defer t.observe("delete", time.Now(), &err)

	query, args, err := sq.Delete(t.name()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return t.fail("delete", err)
	}

	result, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return t.fail("delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return t.fail("delete", err)
	}
	if affected == 0 {
		return t.fail("delete", ErrRowNotFound)
	}
	return nil
}

// writeAndRead executes a write and reads the row back in one transaction.
func (t *Table[T]) writeAndRead(ctx context.Context, userID, id, query string, args []interface{}) (*T, error) {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRowNotFound
	}

	row, err := t.get(ctx, tx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return row, nil
}

type getter interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (t *Table[T]) get(ctx context.Context, q getter, userID, id string) (*T, error) {
	query, args, err := sq.Select("*").
		From(t.name()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row T
	if err := q.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRowNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (t *Table[T]) fail(op string, err error) error {
	if IsGatewayError(err) {
		return err
	}
	return &GatewayError{Op: op, Table: t.name(), Err: err}
}

func (t *Table[T]) observe(op string, start time.Time, err *error) {
	metrics.RecordGateway(op, t.name(), *err, time.Since(start))
}
