// Package store persists league states into named save slots backed by
// SQLite. States serialize to JSON and travel as a single blob per slot;
// a schema version column guards against loading saves written by an
// incompatible build.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fastbreak-sim/fastbreak-sim/league"
)

// SchemaVersion is stamped on every save. Bump it whenever the serialized
// LeagueState shape changes incompatibly.
const SchemaVersion = 1

// SlotNotFoundError reports a load or delete against a missing slot.
type SlotNotFoundError struct {
	Slot string
}

func (e *SlotNotFoundError) Error() string {
	return fmt.Sprintf("save slot %q not found", e.Slot)
}

// IncompatibleVersionError reports a save written under a different
// schema version than this build understands.
type IncompatibleVersionError struct {
	Slot string
	Got  int
	Want int
}

func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf("save slot %q has schema version %d, want %d", e.Slot, e.Got, e.Want)
}

// SlotInfo describes one save without deserializing its state.
type SlotInfo struct {
	Slot      string
	Year      int
	Day       int
	Phase     league.Phase
	SavedAt   time.Time
	SizeBytes int
}

// Store provides SQLite-backed save slot persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens or creates a save database at path. ":memory:" is accepted
// for tests.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &Store{sqlDB: sqlDB}
	if err := s.init(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) init() error {
	_, err := s.sqlDB.Exec(`CREATE TABLE IF NOT EXISTS save_slots (
		slot           TEXT PRIMARY KEY,
		schema_version INTEGER NOT NULL,
		year           INTEGER NOT NULL,
		day            INTEGER NOT NULL,
		phase          TEXT NOT NULL,
		saved_at       INTEGER NOT NULL,
		state          BLOB NOT NULL
	)`)
	return err
}

// Save upserts a full league state into a slot inside one transaction, so
// a failed write never leaves a half-replaced save behind.
func (s *Store) Save(ctx context.Context, slot string, ls *league.LeagueState) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return fmt.Errorf("slot name is required")
	}
	if ls == nil {
		return fmt.Errorf("league state is required")
	}

	blob, err := json.Marshal(ls)
	if err != nil {
		return fmt.Errorf("encode league state: %w", err)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO save_slots (slot, schema_version, year, day, phase, saved_at, state)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   schema_version = excluded.schema_version,
		   year = excluded.year,
		   day = excluded.day,
		   phase = excluded.phase,
		   saved_at = excluded.saved_at,
		   state = excluded.state`,
		slot,
		SchemaVersion,
		ls.Year,
		ls.Day,
		string(ls.Phase),
		time.Now().UTC().UnixMilli(),
		blob,
	)
	if err != nil {
		return fmt.Errorf("write save slot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load reads a slot back into a ready-to-use state, rebuilding the ID
// indexes dropped during serialization.
func (s *Store) Load(ctx context.Context, slot string) (*league.LeagueState, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return nil, fmt.Errorf("slot name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT schema_version, state FROM save_slots WHERE slot = ?`,
		slot,
	)
	var version int
	var blob []byte
	if err := row.Scan(&version, &blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, &SlotNotFoundError{Slot: slot}
		}
		return nil, fmt.Errorf("read save slot: %w", err)
	}
	if version != SchemaVersion {
		return nil, &IncompatibleVersionError{Slot: slot, Got: version, Want: SchemaVersion}
	}

	var ls league.LeagueState
	if err := json.Unmarshal(blob, &ls); err != nil {
		return nil, fmt.Errorf("decode league state: %w", err)
	}
	ls.Reindex()
	return &ls, nil
}

// List returns slot metadata ordered by most recent save first.
func (s *Store) List(ctx context.Context) ([]SlotInfo, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT slot, year, day, phase, saved_at, length(state)
		 FROM save_slots
		 ORDER BY saved_at DESC, slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("list save slots: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	infos := make([]SlotInfo, 0)
	for rows.Next() {
		var info SlotInfo
		var phase string
		var savedAt int64
		if err := rows.Scan(&info.Slot, &info.Year, &info.Day, &phase, &savedAt, &info.SizeBytes); err != nil {
			return nil, fmt.Errorf("scan save slot: %w", err)
		}
		info.Phase = league.Phase(phase)
		info.SavedAt = time.UnixMilli(savedAt).UTC()
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate save slots: %w", err)
	}
	return infos, nil
}

// Delete removes a slot, failing if it does not exist.
func (s *Store) Delete(ctx context.Context, slot string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return fmt.Errorf("slot name is required")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM save_slots WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete save slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete save slot: %w", err)
	}
	if n == 0 {
		return &SlotNotFoundError{Slot: slot}
	}
	return nil
}

var _ league.SlotStore = (*Store)(nil)
