package db

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"blogapi/internal/util"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// sqliteDriver is go-sqlite3 with LOWER replaced by Unicode case folding, so
// search terms lowercased in Go compare equal to lowercased columns.
const sqliteDriver = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// DB is the process-wide store handle. It is opened once by Init and must be
// closed by the caller on shutdown.
type DB struct {
	*sql.DB
	dialect dialect
	Clock   util.Clock
}

func Init(ctx context.Context, driver, dsn string) (*DB, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	driverName := driver
	if d == dialectSQLite {
		driverName = sqliteDriver
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database failed", driver)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "pinging database failed")
	}

	db := &DB{DB: sqlDB, dialect: d, Clock: util.NewRealClock()}
	if err := db.createTables(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "sqlite3":
		return dialectSQLite, nil
	case "postgres", "pgx":
		return dialectPostgres, nil
	default:
		return 0, errors.Errorf("unsupported db driver %q", driver)
	}
}

func (db *DB) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			profile_picture TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at {{timestamp}} NOT NULL,
			updated_at {{timestamp}} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT UNIQUE NOT NULL,
			content TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			image TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at {{timestamp}} NOT NULL,
			updated_at {{timestamp}} NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS posts_updated_at_idx ON posts (updated_at)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at {{timestamp}} NOT NULL,
			updated_at {{timestamp}} NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS comments_post_id_idx ON comments (post_id)`,
		`CREATE TABLE IF NOT EXISTS comment_likes (
			comment_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			created_at {{timestamp}} NOT NULL,
			PRIMARY KEY (comment_id, user_id)
		)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, db.ddl(query)); err != nil {
			return errors.Wrap(err, "failed to create table")
		}
	}

	return nil
}

// ddl fills in column types that differ between dialects. The sqlite driver
// only decodes columns declared exactly TIMESTAMP into time.Time.
func (db *DB) ddl(query string) string {
	ts := "TIMESTAMP"
	if db.dialect == dialectPostgres {
		ts = "TIMESTAMPTZ"
	}
	return strings.ReplaceAll(query, "{{timestamp}}", ts)
}

// rebind rewrites ? placeholders into $n for postgres.
func (db *DB) rebind(query string) string {
	if db.dialect != dialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.ExecContext(ctx, db.rebind(query), args...)
}

func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.QueryContext(ctx, db.rebind(query), args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.QueryRowContext(ctx, db.rebind(query), args...)
}

func (db *DB) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := db.queryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func orderDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}

// escapeLike escapes LIKE wildcards so a search term matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
