// Package engine wraps sqlx.DB for the supported database engines, sqlite and postgres.
// It selects the engine by connection url, keeps a group id to scope records of a single
// deployment and picks dialect-specific queries.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/repeater"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver loaded here
	_ "modernc.org/sqlite" // sqlite driver loaded here
)

// Type is a type of database engine
type Type string

// enum of supported database engines
const (
	Unknown  Type = ""
	Sqlite   Type = "sqlite"
	Postgres Type = "postgres"
)

// connect retries, postgres may come up after the service
const (
	connectAttempts = 3
	connectDelay    = 500 * time.Millisecond
)

// SQL is a wrapper for sqlx.DB with type.
// Type allows distinguishing between different database engines.
type SQL struct {
	sqlx.DB
	gid    string // group id, to allow per-group storage in the same database
	dbType Type   // type of the database engine
}

// New makes a database engine for the connection url.
// postgres:// and postgresql:// urls make postgres, file paths and sqlite/file urls make sqlite.
func New(ctx context.Context, connURL, gid string) (*SQL, error) {
	connURL = strings.TrimSpace(connURL)
	if connURL == "" {
		return nil, errors.New("connection URL is empty")
	}

	switch {
	case strings.HasPrefix(connURL, "postgres://"), strings.HasPrefix(connURL, "postgresql://"):
		return NewPostgres(ctx, connURL, gid)
	case connURL == ":memory:":
		return NewSqlite(connURL, gid)
	case strings.HasPrefix(connURL, "sqlite://"):
		return NewSqlite(strings.TrimPrefix(connURL, "sqlite://"), gid)
	case strings.HasPrefix(connURL, "file://"):
		return NewSqlite(strings.TrimPrefix(connURL, "file://"), gid)
	case strings.HasPrefix(connURL, "file:"):
		return NewSqlite(strings.TrimPrefix(connURL, "file:"), gid)
	case strings.HasSuffix(connURL, ".db"), strings.HasSuffix(connURL, ".sqlite"):
		return NewSqlite(connURL, gid)
	}
	return nil, fmt.Errorf("unsupported database type in %q", connURL)
}

// NewSqlite creates a new sqlite database
func NewSqlite(file, gid string) (*SQL, error) {
	db, err := sqlx.Connect("sqlite", file)
	if err != nil {
		return &SQL{}, err
	}
	// single connection, otherwise each connection of :memory: gets its own database
	db.SetMaxOpenConns(1)
	return &SQL{DB: *db, gid: gid, dbType: Sqlite}, nil
}

// NewPostgres creates a new postgres database connection, retrying failed connects
func NewPostgres(ctx context.Context, connURL, gid string) (*SQL, error) {
	u, err := url.Parse(connURL)
	if err != nil {
		return &SQL{}, fmt.Errorf("invalid postgres connection url: %w", err)
	}
	if strings.Trim(u.Path, "/") == "" {
		return &SQL{}, errors.New("database name not specified")
	}

	var db *sqlx.DB
	err = repeater.NewDefault(connectAttempts, connectDelay).Do(ctx, func() error {
		var e error
		if db, e = sqlx.ConnectContext(ctx, "postgres", connURL); e != nil {
			log.Printf("[DEBUG] postgres connect attempt failed, %v", e)
			return e
		}
		return nil
	})
	if err == nil && db == nil {
		err = errors.Join(errors.New("no connection established"), ctx.Err())
	}
	if err != nil {
		return &SQL{}, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &SQL{DB: *db, gid: gid, dbType: Postgres}, nil
}

// GID returns the group id
func (e *SQL) GID() string {
	return e.gid
}

// Type returns the database engine type
func (e *SQL) Type() Type {
	return e.dbType
}

// MakeLock creates a new lock for the database engine
func (e *SQL) MakeLock() RWLocker {
	if e.dbType == Sqlite {
		return new(sync.RWMutex) // sqlite need locking
	}
	return &NoopLocker{} // other engines don't need locking
}

// Adopt converts ? placeholders to $N for postgres, question marks in string literals are kept
func (e *SQL) Adopt(q string) string {
	if e.dbType != Postgres {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n, inQuote := 0, false
	for _, r := range q {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			fmt.Fprintf(&b, "$%d", n)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TableConfig defines how to create a table with its indexes
type TableConfig struct {
	Name          string
	CreateTable   DBCmd
	CreateIndexes DBCmd
	QueriesMap    QueryMap
}

// InitTable creates a table with indexes, all in a single transaction
func InitTable(ctx context.Context, db *SQL, cfg TableConfig) error {
	if db == nil {
		return errors.New("db connection is nil")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, cmd := range []DBCmd{cfg.CreateTable, cfg.CreateIndexes} {
		q, err := cfg.QueriesMap.Pick(db.Type(), cmd)
		if err != nil {
			return fmt.Errorf("failed to get query for %s: %w", cfg.Name, err)
		}
		if _, err = tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to init %s: %w", cfg.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DBCmd represents a database command type
type DBCmd int

// Query represents a SQL query with dialect-specific variants
type Query struct {
	Sqlite   string
	Postgres string
}

// QueryMap maps commands to their dialect-specific queries
type QueryMap map[DBCmd]Query

// Same makes a query used as is by all dialects
func Same(q string) Query {
	return Query{Sqlite: q, Postgres: q}
}

// Pick returns a query for given db type and command
func (q QueryMap) Pick(dbType Type, cmd DBCmd) (string, error) {
	query, ok := q[cmd]
	if !ok {
		return "", fmt.Errorf("unsupported command type %d", cmd)
	}

	switch dbType {
	case Sqlite:
		return query.Sqlite, nil
	case Postgres:
		return query.Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// RWLocker is a read-write locker interface
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// NoopLocker is a no-op locker for engines with their own concurrency control
type NoopLocker struct{}

// Lock is a no-op
func (NoopLocker) Lock() {}

// Unlock is a no-op
func (NoopLocker) Unlock() {}

// RLock is a no-op
func (NoopLocker) RLock() {}

// RUnlock is a no-op
func (NoopLocker) RUnlock() {}
