package repo

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	dom "yuletide/internal/domain"
	"yuletide/internal/repo/migrations"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type GiftRepo interface {
	EnsureSchema(ctx context.Context) error
	SeedIfEmpty(ctx context.Context, rows []dom.GiftFields) (int, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]dom.Gift, error)
	GetByID(ctx context.Context, id int64) (dom.Gift, error)
	Create(ctx context.Context, f dom.GiftFields) (dom.Gift, error)
	Update(ctx context.Context, id int64, f dom.GiftFields) (dom.Gift, error)
	Delete(ctx context.Context, id int64) error
	Close() error
}

// timeLayout is SQLite's datetime text format with milliseconds, so rows written
// here sort and compare with rows written by CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05.000"

const giftColumns = `id, kid, COALESCE(item, ''), COALESCE(link, ''), COALESCE(helper, ''),
	COALESCE(deliveryDate, ''), createdAt, updatedAt`

// SQLiteGiftRepo implements GiftRepo on a single SQLite handle.
type SQLiteGiftRepo struct {
	db     *sql.DB
	path   string
	now    func() time.Time
	logger *slog.Logger
}

// NewSQLiteGiftRepo opens (creating if needed) the database file at path.
// The schema is not touched until EnsureSchema is called.
func NewSQLiteGiftRepo(path string) (*SQLiteGiftRepo, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	r, err := open(path)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		r.db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	return r, nil
}

// NewMemoryGiftRepo opens an in-memory database.
func NewMemoryGiftRepo() (*SQLiteGiftRepo, error) {
	return open(":memory:")
}

func open(dsn string) (*SQLiteGiftRepo, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection: SQLite serializes writers and :memory: is per-connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	return &SQLiteGiftRepo{
		db:     db,
		path:   dsn,
		now:    time.Now,
		logger: slog.Default().With("component", "store"),
	}, nil
}

// WithClock replaces the clock used for createdAt/updatedAt.
func (r *SQLiteGiftRepo) WithClock(now func() time.Time) *SQLiteGiftRepo {
	r.now = now
	return r
}

// Path returns the DSN the repo was opened with.
func (r *SQLiteGiftRepo) Path() string {
	return r.path
}

func (r *SQLiteGiftRepo) Close() error {
	return r.db.Close()
}

// EnsureSchema applies the embedded migrations. Safe on every start.
func (r *SQLiteGiftRepo) EnsureSchema(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, r.db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts rows in one transaction when the table has no rows.
// It returns how many rows were inserted (0 when the table was not empty).
func (r *SQLiteGiftRepo) SeedIfEmpty(ctx context.Context, rows []dom.GiftFields) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM gifts`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO gifts (kid, item, link, helper, deliveryDate, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := r.stamp()
	for _, f := range rows {
		if _, err := stmt.ExecContext(ctx, f.Kid, f.Item, f.Link, f.Helper, f.DeliveryDate, now, now); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	r.logger.Info("database initialized with default data", "rows", len(rows))
	return len(rows), nil
}

func (r *SQLiteGiftRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gifts`).Scan(&n)
	return n, err
}

func (r *SQLiteGiftRepo) List(ctx context.Context) ([]dom.Gift, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+giftColumns+` FROM gifts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := []dom.Gift{}
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// GetByID returns sql.ErrNoRows when no gift has that id.
func (r *SQLiteGiftRepo) GetByID(ctx context.Context, id int64) (dom.Gift, error) {
	return scanGift(r.db.QueryRowContext(ctx, `SELECT `+giftColumns+` FROM gifts WHERE id = ?`, id))
}

func (r *SQLiteGiftRepo) Create(ctx context.Context, f dom.GiftFields) (dom.Gift, error) {
	now := r.stamp()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO gifts (kid, item, link, helper, deliveryDate, createdAt, updatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.Kid, f.Item, f.Link, f.Helper, f.DeliveryDate, now, now)
	if err != nil {
		return dom.Gift{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return dom.Gift{}, err
	}
	return r.GetByID(ctx, id)
}

// Update overwrites all mutable columns. sql.ErrNoRows when nothing matched.
func (r *SQLiteGiftRepo) Update(ctx context.Context, id int64, f dom.GiftFields) (dom.Gift, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gifts SET kid = ?, item = ?, link = ?, helper = ?, deliveryDate = ?, updatedAt = ?
		WHERE id = ?`,
		f.Kid, f.Item, f.Link, f.Helper, f.DeliveryDate, r.stamp(), id)
	if err != nil {
		return dom.Gift{}, err
	}
	if err := requireAffected(res); err != nil {
		return dom.Gift{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the row. sql.ErrNoRows when nothing matched.
func (r *SQLiteGiftRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gifts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *SQLiteGiftRepo) stamp() string {
	return r.now().UTC().Format(timeLayout)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGift(s scanner) (dom.Gift, error) {
	var g dom.Gift
	var created, updated sqliteTime
	err := s.Scan(&g.ID, &g.Kid, &g.Item, &g.Link, &g.Helper, &g.DeliveryDate, &created, &updated)
	if err != nil {
		return dom.Gift{}, err
	}
	g.CreatedAt = created.Time
	g.UpdatedAt = updated.Time
	return g, nil
}

var _ GiftRepo = (*SQLiteGiftRepo)(nil)
