// Package history persists completed translations in SQLite.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/linara-sh/linara/internal/domain"
	"github.com/linara-sh/linara/internal/pkg/filesystem"
	"github.com/linara-sh/linara/internal/ports"
)

// SQLiteStore records translations in ~/.linara/history/history.db. When the
// database cannot be opened the store degrades to a no-op that reports the
// failure on use; translation itself must never fail because history is
// unavailable.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the history database at path; an empty
// path selects the default location.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".linara", "history", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return &SQLiteStore{path: path}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		request_id TEXT,
		prompt TEXT,
		command TEXT,
		source TEXT,
		model TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Save implements ports.HistoryRepository.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return fmt.Errorf("history database unavailable at %s", s.path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO translations
		(timestamp, request_id, prompt, command, source, model, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(domain.TimestampFormat),
		record.RequestID,
		record.Prompt,
		record.Command,
		string(record.Source),
		record.Model,
		record.DurationMS,
	)
	return err
}

// Records implements ports.HistoryRepository. Search matches prompt or
// command substrings; newest entries come first.
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("history database unavailable at %s", s.path)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, request_id, prompt, command, source, model, duration_ms FROM translations")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE prompt LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, source string
		if err := rows.Scan(&ts, &rec.RequestID, &rec.Prompt, &rec.Command, &source, &rec.Model, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Source = domain.TranslationSource(source)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear drops all recorded translations.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return fmt.Errorf("history database unavailable at %s", s.path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM translations")
	return err
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
