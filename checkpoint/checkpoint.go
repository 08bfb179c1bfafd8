// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package checkpoint persists background corpus counting progress so an
// interrupted run over tens of thousands of archive files can resume
// without recounting.
package checkpoint

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/neolexica/neodicter/wordcount"
)

//go:embed schema.sql
var schema string

// Store tracks processed records and running word counts for one corpus run
type Store struct {
	db    *sql.DB
	runID string
}

// Open opens or creates the checkpoint database at the given path
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("checkpoint.Open, could not open %s: %v", dbPath, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("checkpoint.Open, could not init schema: %v", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun resumes the existing run for the corpus or starts a new one.
// A corpus has at most one run in the checkpoint database.
func (s *Store) BeginRun(corpus string) error {
	var runID string
	err := s.db.QueryRow(
		"SELECT id FROM runs WHERE corpus = ?", corpus,
	).Scan(&runID)
	if err == nil {
		s.runID = runID
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("BeginRun, could not query runs: %v", err)
	}
	runID = uuid.New().String()
	_, err = s.db.Exec(
		"INSERT INTO runs (id, corpus, started_at) VALUES (?, ?, ?)",
		runID, corpus, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("BeginRun, could not insert run: %v", err)
	}
	s.runID = runID
	return nil
}

// IsProcessed reports whether the record was already counted in this run
func (s *Store) IsProcessed(recordID string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM processed WHERE run_id = ? AND record_id = ?",
		s.runID, recordID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("IsProcessed, could not query: %v", err)
	}
	return true, nil
}

// MarkProcessed records the word counts of one record and marks it done.
// Both writes happen in one transaction so a record is either fully
// counted or not counted at all.
func (s *Store) MarkProcessed(recordID string, counts wordcount.FreqMap) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("MarkProcessed, could not begin tx: %v", err)
	}
	for word, freq := range counts {
		_, err := tx.Exec(
			`INSERT INTO counts (run_id, word, freq) VALUES (?, ?, ?)
			 ON CONFLICT(run_id, word) DO UPDATE SET freq = freq + excluded.freq`,
			s.runID, word, freq,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("MarkProcessed, could not upsert count: %v", err)
		}
	}
	_, err = tx.Exec(
		"INSERT INTO processed (run_id, record_id, processed_at) VALUES (?, ?, ?)",
		s.runID, recordID, time.Now(),
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("MarkProcessed, could not insert record: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("MarkProcessed, could not commit: %v", err)
	}
	return nil
}

// Counts returns the accumulated word counts of the run
func (s *Store) Counts() (wordcount.FreqMap, error) {
	rows, err := s.db.Query(
		"SELECT word, freq FROM counts WHERE run_id = ?", s.runID,
	)
	if err != nil {
		return nil, fmt.Errorf("Counts, could not query: %v", err)
	}
	defer rows.Close()
	freq := wordcount.FreqMap{}
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, fmt.Errorf("Counts, could not scan row: %v", err)
		}
		freq[word] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Counts, row error: %v", err)
	}
	return freq, nil
}

// ProcessedCount returns how many records the run has counted so far
func (s *Store) ProcessedCount() (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM processed WHERE run_id = ?", s.runID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("ProcessedCount, could not query: %v", err)
	}
	return n, nil
}
