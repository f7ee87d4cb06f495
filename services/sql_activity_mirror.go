package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vibin_activity/models"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var activitySchema = []string{
	`CREATE TABLE IF NOT EXISTS activity_events (
		id          TEXT PRIMARY KEY,
		type        TEXT NOT NULL,
		actor_id    TEXT NOT NULL,
		actor_name  TEXT NOT NULL DEFAULT '',
		actor_photo TEXT NOT NULL DEFAULT '',
		target_id   TEXT NOT NULL,
		created_at  BIGINT NOT NULL,
		seq         BIGINT NOT NULL DEFAULT 0,
		metadata    TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_events_target
		ON activity_events (target_id, created_at DESC, seq DESC)`,
}

const (
	insertActivitySQL = `
		INSERT INTO activity_events (id, type, actor_id, actor_name, actor_photo, target_id, created_at, seq, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	listActivitySQL = `
		SELECT id, type, actor_id, actor_name, actor_photo, target_id, created_at, seq, metadata
		FROM activity_events
		WHERE target_id = ?
		ORDER BY created_at DESC, seq DESC
		LIMIT ?`
)

// SQLActivityMirror keeps activity events in a SQL table. It works with the
// "postgres" (lib/pq) and "sqlite" (modernc) drivers.
type SQLActivityMirror struct {
	db         *sql.DB
	insertStmt *sql.Stmt
	listStmt   *sql.Stmt
}

// OpenSQLActivityMirror opens dsn with driver and prepares the mirror.
func OpenSQLActivityMirror(ctx context.Context, driver, dsn string) (*SQLActivityMirror, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if driver == "sqlite" {
		// every sqlite connection to :memory: is its own database
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := NewSQLActivityMirror(ctx, db, driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

// NewSQLActivityMirror creates the schema on db if needed and prepares statements.
func NewSQLActivityMirror(ctx context.Context, db *sql.DB, driver string) (*SQLActivityMirror, error) {
	for _, stmt := range activitySchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	insertStmt, err := db.PrepareContext(ctx, rebind(driver, insertActivitySQL))
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}

	listStmt, err := db.PrepareContext(ctx, rebind(driver, listActivitySQL))
	if err != nil {
		insertStmt.Close()
		return nil, fmt.Errorf("failed to prepare list statement: %w", err)
	}

	return &SQLActivityMirror{db: db, insertStmt: insertStmt, listStmt: listStmt}, nil
}

// PutActivity inserts a single event row.
func (m *SQLActivityMirror) PutActivity(ctx context.Context, event models.ActivityEvent) error {
	var metadata sql.NullString
	if len(event.Metadata) > 0 {
		b, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = sql.NullString{String: string(b), Valid: true}
	}

	_, err := m.insertStmt.ExecContext(ctx,
		event.ID, string(event.Type), event.ActorID, event.ActorName, event.ActorPhoto,
		event.TargetID, event.Timestamp.UnixNano(), int64(event.Seq), metadata)
	if err != nil {
		return fmt.Errorf("failed to insert activity event: %w", err)
	}
	return nil
}

// ListActivity returns up to limit events for targetID, newest first.
func (m *SQLActivityMirror) ListActivity(ctx context.Context, targetID string, limit int) ([]models.ActivityEvent, error) {
	rows, err := m.listStmt.QueryContext(ctx, targetID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity events: %w", err)
	}
	defer rows.Close()

	events := []models.ActivityEvent{}
	for rows.Next() {
		var (
			e         models.ActivityEvent
			kind      string
			createdAt int64
			seq       int64
			metadata  sql.NullString
		)
		if err := rows.Scan(&e.ID, &kind, &e.ActorID, &e.ActorName, &e.ActorPhoto, &e.TargetID, &createdAt, &seq, &metadata); err != nil {
			return nil, fmt.Errorf("failed to scan activity event: %w", err)
		}
		e.Type = models.ActivityKind(kind)
		e.Timestamp = time.Unix(0, createdAt).UTC()
		e.Seq = uint64(seq)
		if metadata.Valid && metadata.String != "" {
			if err := json.Unmarshal([]byte(metadata.String), &e.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata for %s: %w", e.ID, err)
			}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity events: %w", err)
	}
	return events, nil
}

// Close releases the prepared statements and the database handle.
func (m *SQLActivityMirror) Close() error {
	m.insertStmt.Close()
	m.listStmt.Close()
	return m.db.Close()
}

// rebind rewrites ? placeholders as $1, $2, ... for postgres.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
