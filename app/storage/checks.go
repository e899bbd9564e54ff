package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/snehiltiwari001/ChatBotAI/app/storage/engine"
	"github.com/snehiltiwari001/ChatBotAI/lib/spamcheck"
)

// checks-related command constants
const (
	CmdCreateChecksTable engine.DBCmd = iota + 100
	CmdCreateChecksIndexes
)

// checksQueries holds dialect-specific checks queries
var checksQueries = engine.QueryMap{
	CmdCreateChecksTable: {
		Sqlite: `CREATE TABLE IF NOT EXISTS checks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			gid TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			text TEXT,
			spam BOOLEAN NOT NULL DEFAULT 0,
			probability REAL NOT NULL DEFAULT 0,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS checks (
			id SERIAL PRIMARY KEY,
			gid TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			text TEXT,
			spam BOOLEAN NOT NULL DEFAULT FALSE,
			probability DOUBLE PRECISION NOT NULL DEFAULT 0,
			timestamp TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	CmdCreateChecksIndexes: engine.Same(`CREATE INDEX IF NOT EXISTS idx_checks_gid_id ON checks(gid, id)`),
}

// Checks is a storage of recent classify and chat checks.
// It keeps up to maxSize records per group, older records are removed on write.
type Checks struct {
	*engine.SQL
	engine.RWLocker
	maxSize int
}

// checkRow is a checks table row
type checkRow struct {
	ID          int64     `db:"id"`
	GID         string    `db:"gid"`
	Kind        string    `db:"kind"`
	Text        string    `db:"text"`
	Spam        bool      `db:"spam"`
	Probability float64   `db:"probability"`
	Timestamp   time.Time `db:"timestamp"`
}

// NewChecks creates checks storage, maxSize <= 0 keeps all records
func NewChecks(ctx context.Context, db *engine.SQL, maxSize int) (*Checks, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &Checks{SQL: db, RWLocker: db.MakeLock(), maxSize: maxSize}
	cfg := engine.TableConfig{
		Name:          "checks",
		CreateTable:   CmdCreateChecksTable,
		CreateIndexes: CmdCreateChecksIndexes,
		QueriesMap:    checksQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init checks storage: %w", err)
	}
	return res, nil
}

// Write adds a check record and removes records above the max size
func (c *Checks) Write(ctx context.Context, check spamcheck.Check) error {
	c.Lock()
	defer c.Unlock()

	if check.Timestamp.IsZero() {
		check.Timestamp = time.Now()
	}
	query := c.Adopt(`INSERT INTO checks (gid, kind, text, spam, probability, timestamp) VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := c.ExecContext(ctx, query, c.GID(), string(check.Kind), check.Text, check.Spam,
		check.Probability, check.Timestamp); err != nil {
		return fmt.Errorf("failed to insert check: %w", err)
	}

	if c.maxSize <= 0 {
		return nil
	}
	cleanup := c.Adopt(`DELETE FROM checks WHERE gid = ? AND id NOT IN (
		SELECT id FROM checks WHERE gid = ? ORDER BY id DESC LIMIT ?)`)
	res, err := c.ExecContext(ctx, cleanup, c.GID(), c.GID(), c.maxSize)
	if err != nil {
		return fmt.Errorf("failed to clean up old checks: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Printf("[DEBUG] removed %d old checks", n)
	}
	return nil
}

// Read returns up to limit last checks, newest first
func (c *Checks) Read(ctx context.Context, limit int) ([]spamcheck.Check, error) {
	c.RLock()
	defer c.RUnlock()

	rows := []checkRow{}
	query := c.Adopt(`SELECT id, gid, kind, text, spam, probability, timestamp FROM checks
		WHERE gid = ? ORDER BY id DESC LIMIT ?`)
	if err := c.SelectContext(ctx, &rows, query, c.GID(), limit); err != nil {
		return nil, fmt.Errorf("failed to get checks: %w", err)
	}

	res := make([]spamcheck.Check, 0, len(rows))
	for _, r := range rows {
		res = append(res, spamcheck.Check{
			Kind:        spamcheck.CheckKind(r.Kind),
			Text:        r.Text,
			Spam:        r.Spam,
			Probability: r.Probability,
			Timestamp:   r.Timestamp.Local(),
		})
	}
	return res, nil
}

// Count returns the number of stored checks for the group
func (c *Checks) Count(ctx context.Context) (int, error) {
	c.RLock()
	defer c.RUnlock()

	var count int
	if err := c.GetContext(ctx, &count, c.Adopt("SELECT COUNT(*) FROM checks WHERE gid = ?"), c.GID()); err != nil {
		return 0, fmt.Errorf("failed to count checks: %w", err)
	}
	return count, nil
}
