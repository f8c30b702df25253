// Package sqlite exports a parsed navigation-data tree to a SQLite database:
// one table per keyed record class, one row per stored instance, plus a
// dataset_info provenance table describing the ingestion run.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	fw "github.com/dukaforge/navdata/pkg/fixedwidth"
)

// Writer owns one output database. Each run produces a fresh file: Open
// removes any previous database at the path before creating the schema.
type Writer struct {
	db   *sql.DB
	path string
}

// RunInfo describes one ingestion run for the dataset_info table.
type RunInfo struct {
	SourcePath string
	Stats      fw.Stats
	LoadTime   time.Duration
}

// Open creates the output database at path, replacing any existing file.
func Open(path string) (*Writer, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing previous database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Writer{db: db, path: path}, nil
}

// Close releases the database handle. Close is idempotent.
func (w *Writer) Close() error {
	if w.db == nil {
		return nil
	}
	err := w.db.Close()
	w.db = nil
	return err
}

// WriteTree exports every keyed class in the tree. Unkeyed (auxiliary)
// classes hold no instances of their own; their fields surface through the
// parent class's export table.
func (w *Writer) WriteTree(tree *fw.Tree) error {
	var werr error
	tree.Walk(func(c *fw.Class) {
		if werr != nil || !c.Keyed() {
			return
		}
		if err := w.writeClass(c); err != nil {
			werr = fmt.Errorf("exporting %s: %w", c.Label(), err)
		}
	})
	return werr
}

// writeClass creates the class's table and inserts its stored instances in a
// single transaction. Column order follows FieldsForExport; values come from
// Record.Get, so instances with an attached auxiliary fill in the columns the
// parent class itself does not carry.
func (w *Writer) writeClass(c *fw.Class) error {
	fields := c.FieldsForExport()
	names := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		marks[i] = "?"
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	create := fmt.Sprintf("CREATE TABLE %q (%s)", c.Label(), strings.Join(names, ", "))
	if _, err := tx.Exec(create); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	insert := fmt.Sprintf("INSERT INTO %q VALUES (%s)", c.Label(), strings.Join(marks, ", "))
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range c.Instances() {
		row := make([]any, len(fields))
		for i, f := range fields {
			v, err := rec.Get(f.Name)
			if err != nil {
				return fmt.Errorf("reading field %s: %w", f.Name, err)
			}
			row[i] = v
		}
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("inserting row: %w", err)
		}
	}

	return tx.Commit()
}

// WriteRunInfo records the provenance of this export: a UUID v7 run id, the
// source file, outcome tallies, and load duration.
func (w *Writer) WriteRunInfo(info RunInfo) error {
	_, err := w.db.Exec(`
		CREATE TABLE IF NOT EXISTS dataset_info (
			run_id TEXT PRIMARY KEY,
			source_path TEXT,
			lines INTEGER,
			stored INTEGER,
			merged_auxiliary INTEGER,
			unclassified INTEGER,
			dropped_continuations INTEGER,
			load_ms INTEGER,
			created_at TEXT
		)`)
	if err != nil {
		return fmt.Errorf("creating dataset_info: %w", err)
	}

	_, err = w.db.Exec(`
		INSERT INTO dataset_info VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		newRunID(),
		info.SourcePath,
		info.Stats.Lines,
		info.Stats.Stored,
		info.Stats.MergedAuxiliary,
		info.Stats.Unclassified,
		info.Stats.DroppedContinuations,
		info.LoadTime.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting dataset_info: %w", err)
	}
	return nil
}

// newRunID generates a UUID v7 string.
func newRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}
