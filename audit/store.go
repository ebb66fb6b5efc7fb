package audit

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is an append-only sqlite table of CBOR-encoded Records, one row per
// event, with indexed session/timestamp columns for querying independently
// of decoding the payload.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite database at dsn and ensures
// the events table exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", dsn, err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS events (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		session  TEXT NOT NULL,
		seq      INTEGER NOT NULL,
		kind     TEXT NOT NULL,
		ts       INTEGER NOT NULL,
		payload  BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: create table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS events_session_idx ON events(session)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: create index: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS events_ts_idx ON events(ts)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: create index: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Append writes one Record as a new row.
func (s *Store) Append(r Record) error {
	payload, err := marshalRecord(r)
	if err != nil {
		return fmt.Errorf("audit: marshal: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO events (session, seq, kind, ts, payload) VALUES (?, ?, ?, ?, ?)`,
		r.Session, r.Seq, string(r.Kind), r.UnixNano, payload,
	)
	if err != nil {
		return fmt.Errorf("audit: insert: %w", err)
	}
	return nil
}

// Session returns every Record for the given session, ordered by sequence.
func (s *Store) Session(session string) ([]Record, error) {
	rows, err := s.db.Query(`SELECT payload FROM events WHERE session = ? ORDER BY seq ASC`, session)
	if err != nil {
		return nil, fmt.Errorf("audit: query session: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("audit: scan: %w", err)
		}
		r, err := unmarshalRecord(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Sweep deletes rows older than the given retention window, mirroring
// server.HandleStore.Sweep's TTL-based reclamation but over audit rows
// instead of live handles. cutoffUnixNano is supplied by the caller rather
// than read from the wall clock here, keeping this package deterministic
// under test.
func (s *Store) Sweep(cutoffUnixNano int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM events WHERE ts < ?`, cutoffUnixNano)
	if err != nil {
		return 0, fmt.Errorf("audit: sweep: %w", err)
	}
	return res.RowsAffected()
}

// StartSweeper runs periodic sweeps against the wall clock in the
// background, in the same ticker-until-stopped shape as the per-session
// sweeper server.BridgeSession runs over HandleStore.Sweep. Returns a stop
// function.
func (s *Store) StartSweeper(interval, retention time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.Sweep(time.Now().Add(-retention).UnixNano())
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
