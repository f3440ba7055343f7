package audit

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/slotwise/putaway/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decisions (
		id              TEXT PRIMARY KEY,
		item_id         TEXT NOT NULL,
		product         TEXT NOT NULL,
		ai_zone         TEXT NOT NULL,
		final_zone      TEXT NOT NULL,
		overridden      INTEGER NOT NULL DEFAULT 0,
		override_reason TEXT,
		confidence      TEXT NOT NULL,
		mandatory       INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_decisions_created ON decisions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_decisions_item ON decisions(item_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append records a successful decision.
func (s *SQLiteStore) Append(ctx context.Context, p AppendParams) (*model.AuditEntry, error) {
	entry := &model.AuditEntry{
		ID:         s.newID(),
		ItemID:     p.ItemID,
		Product:    p.Product,
		AIZone:     p.Zone,
		FinalZone:  p.Zone,
		Confidence: p.Confidence,
		Mandatory:  p.Mandatory,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decisions (id, item_id, product, ai_zone, final_zone, overridden, confidence, mandatory, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		entry.ID, entry.ItemID, entry.Product, entry.AIZone, entry.FinalZone,
		string(entry.Confidence), boolToInt(entry.Mandatory),
		entry.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("append decision: %w", err)
	}
	return entry, nil
}

// List returns entries newest-first. ULID ids sort with creation time, so
// id order is insertion order.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	q := `SELECT id, item_id, product, ai_zone, final_zone, overridden, override_reason, confidence, mandatory, created_at
		FROM decisions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Get retrieves one entry by id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.AuditEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, item_id, product, ai_zone, final_zone, overridden, override_reason, confidence, mandatory, created_at
		FROM decisions WHERE id = ?`, id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("decision %s not found", id)
	}
	return e, err
}

// Override replaces the final zone on an existing entry.
func (s *SQLiteStore) Override(ctx context.Context, p OverrideParams) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE decisions SET final_zone = ?, overridden = 1, override_reason = ?
		WHERE id = ?`, p.Zone, p.Reason, p.ID)
	if err != nil {
		return fmt.Errorf("override decision: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("decision %s not found", p.ID)
	}
	return nil
}

// Close closes the store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (*model.AuditEntry, error) {
	var e model.AuditEntry
	var overridden, mandatory int
	var reason sql.NullString
	var confidence, createdAt string

	if err := r.Scan(&e.ID, &e.ItemID, &e.Product, &e.AIZone, &e.FinalZone,
		&overridden, &reason, &confidence, &mandatory, &createdAt); err != nil {
		return nil, err
	}
	e.Overridden = overridden != 0
	e.Mandatory = mandatory != 0
	e.OverrideReason = reason.String
	e.Confidence = model.Confidence(confidence)
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	e.CreatedAt = t
	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
