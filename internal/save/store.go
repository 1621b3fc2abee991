// Package save persists game snapshots to SQLite save slots.
//
// A snapshot carries the character's state machine record together with the
// clip player position and transform. The record alone is not enough to
// resume faithfully: the state machine contract leaves reconciling the clip
// player's playhead to the collaborator doing the saving, which is this
// package.
package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pusewicz/tacticaltwo-game/internal/player"
)

// ErrNotFound is returned when a slot has no snapshot.
var ErrNotFound = errors.New("save: slot not found")

// Snapshot is everything needed to resume a character mid-sequence.
type Snapshot struct {
	Record player.Record

	// Clip player position, restored alongside the record so a sequence
	// resumes at the exact frame it suspended on.
	Clip    string
	Frame   int
	Subtick int

	FacingX float64
	X, Y    float64

	SavedAt time.Time
}

// SlotInfo summarizes one occupied save slot.
type SlotInfo struct {
	Slot    int
	State   player.State
	SavedAt time.Time
}

// Store persists snapshots in SQLite.
type Store struct {
	sqlDB *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS save_slots (
	slot        INTEGER PRIMARY KEY,
	record      BLOB    NOT NULL,
	clip        TEXT    NOT NULL,
	frame       INTEGER NOT NULL,
	subtick     INTEGER NOT NULL,
	facing_x    REAL    NOT NULL,
	pos_x       REAL    NOT NULL,
	pos_y       REAL    NOT NULL,
	saved_at_ms INTEGER NOT NULL
);`

// Open opens a SQLite save store, creating the schema if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("save path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Save writes a snapshot into a slot, replacing any previous one.
func (s *Store) Save(ctx context.Context, slot int, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if slot < 0 {
		return fmt.Errorf("slot must be non-negative, got %d", slot)
	}

	blob, err := snap.Record.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT INTO save_slots (slot, record, clip, frame, subtick, facing_x, pos_x, pos_y, saved_at_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			record = excluded.record,
			clip = excluded.clip,
			frame = excluded.frame,
			subtick = excluded.subtick,
			facing_x = excluded.facing_x,
			pos_x = excluded.pos_x,
			pos_y = excluded.pos_y,
			saved_at_ms = excluded.saved_at_ms`,
		slot, blob, snap.Clip, snap.Frame, snap.Subtick,
		snap.FacingX, snap.X, snap.Y, toMillis(savedAt))
	if err != nil {
		return fmt.Errorf("write slot %d: %w", slot, err)
	}
	return nil
}

// Load reads the snapshot in a slot. The record comes back sanitized; a
// snapshot written by older code loads as a fresh entry into its state
// rather than failing.
func (s *Store) Load(ctx context.Context, slot int) (Snapshot, error) {
	var snap Snapshot
	if err := ctx.Err(); err != nil {
		return snap, err
	}
	if s == nil || s.sqlDB == nil {
		return snap, fmt.Errorf("storage is not configured")
	}

	var (
		blob      []byte
		savedAtMS int64
	)
	row := s.sqlDB.QueryRowContext(ctx, `
		SELECT record, clip, frame, subtick, facing_x, pos_x, pos_y, saved_at_ms
		FROM save_slots WHERE slot = ?`, slot)
	err := row.Scan(&blob, &snap.Clip, &snap.Frame, &snap.Subtick,
		&snap.FacingX, &snap.X, &snap.Y, &savedAtMS)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, ErrNotFound
	}
	if err != nil {
		return snap, fmt.Errorf("read slot %d: %w", slot, err)
	}

	if err := snap.Record.UnmarshalBinary(blob); err != nil {
		return snap, fmt.Errorf("decode record in slot %d: %w", slot, err)
	}
	snap.SavedAt = fromMillis(savedAtMS)
	return snap, nil
}

// List returns a summary of every occupied slot, ordered by slot number.
func (s *Store) List(ctx context.Context) ([]SlotInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT slot, record, saved_at_ms FROM save_slots ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var infos []SlotInfo
	for rows.Next() {
		var (
			info      SlotInfo
			blob      []byte
			savedAtMS int64
		)
		if err := rows.Scan(&info.Slot, &blob, &savedAtMS); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		var rec player.Record
		if err := rec.UnmarshalBinary(blob); err != nil {
			return nil, fmt.Errorf("decode record in slot %d: %w", info.Slot, err)
		}
		info.State = rec.Current
		info.SavedAt = fromMillis(savedAtMS)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}
	return infos, nil
}
