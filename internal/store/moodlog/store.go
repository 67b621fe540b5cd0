// Package moodlog appends validated check-in scores to a durable CSV log.
// The log is the only resource shared across sessions; records are never
// rewritten or deleted.
package moodlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	header     = "Timestamp,Mood"
	timeLayout = "2006-01-02 15:04:05"
)

// Entry is one logged check-in answer.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
}

// Store serializes appends to a single CSV file. Each append is one write
// syscall on an O_APPEND descriptor, so concurrent writers cannot
// interleave partial records.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewStore returns a Store backed by the CSV file at path. The file is
// created lazily on first append.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the log file location.
func (s *Store) Path() string {
	return s.path
}

// Append writes one timestamped record. A header line is written first
// when the file is created fresh. The error is returned to the caller so
// a score is never acknowledged as logged when the write failed.
func (s *Store) Append(score int) error {
	if score < 1 || score > 10 {
		return fmt.Errorf("mood score %d outside [1,10]", score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open mood log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat mood log: %w", err)
	}

	record := s.now().Format(timeLayout) + "," + strconv.Itoa(score) + "\n"
	if info.Size() == 0 {
		record = header + "\n" + record
	}

	if _, err := f.Write([]byte(record)); err != nil {
		return fmt.Errorf("append mood log: %w", err)
	}
	return nil
}

// Entries reads the full log back in insertion order. A missing file is
// an empty log, not an error. Malformed lines are skipped.
func (s *Store) Entries() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open mood log: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read mood log: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		if len(record) != 2 || record[0] == "Timestamp" {
			continue
		}
		ts, err := time.ParseInLocation(timeLayout, record[0], time.Local)
		if err != nil {
			continue
		}
		score, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Timestamp: ts, Score: score})
	}
	return entries, nil
}
