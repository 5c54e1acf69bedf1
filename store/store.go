package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// ErrNotFound indicates that a run id does not exist.
var ErrNotFound = errors.New("store: run not found")

var schema = []string{`
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	source     TEXT    NOT NULL,
	method     TEXT    NOT NULL,
	metric     TEXT    NOT NULL,
	clusters   INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	texts      INTEGER NOT NULL,
	edges      INTEGER NOT NULL,
	n_groups   INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	created_at INTEGER NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS labels (
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	vertex INTEGER NOT NULL,
	label  INTEGER NOT NULL,
	PRIMARY KEY (run_id, vertex)
)`}

// Run is one stored clustering run.
type Run struct {
	ID        int64
	Source    string
	Method    string
	Metric    string
	Clusters  int
	Seed      int64
	Texts     int
	Edges     int
	Groups    int
	Elapsed   time.Duration
	CreatedAt time.Time
	// Labels is filled by SaveRun callers; Runs leaves it nil (see Labels).
	Labels []int
}

// Open opens a SQLite database. For file-based databases pass a path like
// "./runs.sqlite"; for in-memory databases pass ":memory:".
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %q", dsn)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

// Store reads and writes runs.
type Store struct {
	db *sql.DB
}

// New wraps db and ensures the schema exists.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, errors.Wrap(err, "store: create schema")
		}
	}

	return &Store{db: db}, nil
}

// SaveRun inserts run and its labels and returns the new run id. A zero
// CreatedAt is replaced by the current time.
func (s *Store) SaveRun(ctx context.Context, run Run) (int64, error) {
	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "store: begin")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs(source, method, metric, clusters, seed, texts, edges, n_groups, elapsed_ms, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Source, run.Method, run.Metric, run.Clusters, run.Seed, run.Texts, run.Edges, run.Groups,
		run.Elapsed.Milliseconds(), created.UnixNano())
	if err != nil {
		return 0, errors.Wrap(err, "store: insert run")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "store: run id")
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO labels(run_id, vertex, label) VALUES(?, ?, ?)`)
	if err != nil {
		return 0, errors.Wrap(err, "store: prepare labels")
	}
	defer stmt.Close()
	for v, l := range run.Labels {
		if _, err := stmt.ExecContext(ctx, id, v, l); err != nil {
			return 0, errors.Wrapf(err, "store: insert label %d", v)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "store: commit")
	}

	return id, nil
}

// Runs lists all runs, newest first. Labels are not loaded.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, method, metric, clusters, seed, texts, edges, n_groups, elapsed_ms, created_at
		 FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "store: query runs")
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r         Run
			elapsedMS int64
			created   int64
		)
		if err := rows.Scan(&r.ID, &r.Source, &r.Method, &r.Metric, &r.Clusters, &r.Seed,
			&r.Texts, &r.Edges, &r.Groups, &elapsedMS, &created); err != nil {
			return nil, errors.Wrap(err, "store: scan run")
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		r.CreatedAt = time.Unix(0, created)
		out = append(out, r)
	}

	return out, errors.Wrap(rows.Err(), "store: iterate runs")
}

// Labels returns the labelling of run id, indexed by vertex.
func (s *Store) Labels(ctx context.Context, id int64) ([]int, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(err, "store: lookup run")
	}
	if exists == 0 {
		return nil, errors.Wrapf(ErrNotFound, "run %d", id)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT label FROM labels WHERE run_id = ? ORDER BY vertex`, id)
	if err != nil {
		return nil, errors.Wrap(err, "store: query labels")
	}
	defer rows.Close()

	labels := []int{}
	for rows.Next() {
		var l int
		if err := rows.Scan(&l); err != nil {
			return nil, errors.Wrap(err, "store: scan label")
		}
		labels = append(labels, l)
	}

	return labels, errors.Wrap(rows.Err(), "store: iterate labels")
}
