// Package persist snapshots the in-memory store into a SQLite file under
// the workspace, so the CLI and server survive restarts. The store stays
// the system of record; this layer only loads at startup and saves on
// flush.
package persist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"lexboard/internal/domain"
	"lexboard/internal/store"
)

const defaultDBName = "lexboard.db"

type DB struct {
	conn *sql.DB
}

func dbPath(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, ".lexboard", defaultDBName)
}

// EnsureWorkspace creates the workspace directory if missing.
func EnsureWorkspace(workspace string) (string, error) {
	path := filepath.Join(workspace, ".lexboard")
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Path returns the snapshot db path for the workspace.
func Path(workspace string) string {
	return dbPath(workspace)
}

// Open opens the workspace snapshot database, creating the schema when
// needed.
func Open(workspace string) (*DB, error) {
	if _, err := EnsureWorkspace(workspace); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?cache=shared", dbPath(workspace))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

func (d *DB) Close() error { return d.conn.Close() }

func ensureSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
CREATE TABLE IF NOT EXISTS records(
	kind TEXT NOT NULL,
	id INTEGER NOT NULL,
	data TEXT NOT NULL,
	PRIMARY KEY(kind, id)
);
CREATE TABLE IF NOT EXISTS counters(
	kind TEXT PRIMARY KEY,
	next INTEGER NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}
	return nil
}

// Save replaces the stored snapshot with the given one, atomically.
func (d *DB) Save(snap store.Snapshot) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM counters`); err != nil {
		return err
	}
	if err := insertAll(tx, "users", snap.Users, func(u domain.User) int { return u.ID }); err != nil {
		return err
	}
	if err := insertAll(tx, "professionals", snap.Professionals, func(p domain.Professional) int { return p.ID }); err != nil {
		return err
	}
	if err := insertAll(tx, "jurisdictions", snap.Jurisdictions, func(j domain.Jurisdiction) int { return j.ID }); err != nil {
		return err
	}
	if err := insertAll(tx, "hearings", snap.Hearings, func(h domain.Hearing) int { return h.ID }); err != nil {
		return err
	}
	if err := insertAll(tx, "payments", snap.Payments, func(p domain.Payment) int { return p.ID }); err != nil {
		return err
	}
	if err := insertAll(tx, "tasks", snap.Tasks, func(t domain.Task) int { return t.ID }); err != nil {
		return err
	}
	for kind, next := range snap.Counters {
		if _, err := tx.Exec(`INSERT INTO counters(kind,next) VALUES (?,?)`, kind, next); err != nil {
			return fmt.Errorf("save counter %s: %w", kind, err)
		}
	}
	return tx.Commit()
}

func insertAll[T any](tx *sql.Tx, kind string, rows []T, id func(T) int) error {
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", kind, err)
		}
		if _, err := tx.Exec(`INSERT INTO records(kind,id,data) VALUES (?,?,?)`, kind, id(row), string(data)); err != nil {
			return fmt.Errorf("save %s: %w", kind, err)
		}
	}
	return nil
}

// Load reads the stored snapshot. An empty database yields an empty
// snapshot.
func (d *DB) Load() (store.Snapshot, error) {
	snap := store.Snapshot{Counters: map[string]int{}}
	rows, err := d.conn.Query(`SELECT kind, data FROM records ORDER BY id`)
	if err != nil {
		return snap, err
	}
	defer rows.Close()
	for rows.Next() {
		var kind, data string
		if err := rows.Scan(&kind, &data); err != nil {
			return snap, err
		}
		if err := appendRecord(&snap, kind, []byte(data)); err != nil {
			return snap, err
		}
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}
	counters, err := d.conn.Query(`SELECT kind, next FROM counters`)
	if err != nil {
		return snap, err
	}
	defer counters.Close()
	for counters.Next() {
		var kind string
		var next int
		if err := counters.Scan(&kind, &next); err != nil {
			return snap, err
		}
		snap.Counters[kind] = next
	}
	return snap, counters.Err()
}

func appendRecord(snap *store.Snapshot, kind string, data []byte) error {
	switch kind {
	case "users":
		var u domain.User
		if err := json.Unmarshal(data, &u); err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		snap.Users = append(snap.Users, u)
	case "professionals":
		var p domain.Professional
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		snap.Professionals = append(snap.Professionals, p)
	case "jurisdictions":
		var j domain.Jurisdiction
		if err := json.Unmarshal(data, &j); err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		snap.Jurisdictions = append(snap.Jurisdictions, j)
	case "hearings":
		var h domain.Hearing
		if err := json.Unmarshal(data, &h); err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		snap.Hearings = append(snap.Hearings, h)
	case "payments":
		var p domain.Payment
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		snap.Payments = append(snap.Payments, p)
	case "tasks":
		var t domain.Task
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		snap.Tasks = append(snap.Tasks, t)
	default:
		// unknown kinds are skipped so older snapshots keep loading
	}
	return nil
}
