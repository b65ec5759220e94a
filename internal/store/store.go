// Package store owns the journal document: a single JSON file mapping
// YYYY-MM-DD date keys to daily entries, read and written wholesale on every
// operation. Storage failures degrade to an empty document or an error result;
// they never take the process down.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"gutlog-api/internal/model"
	"gutlog-api/internal/stats"
)

// Store persists the full date→entry document at a fixed path. A single
// interactive user is assumed; the mutex only serializes in-process callers.
type Store struct {
	path  string
	mu    sync.RWMutex
	nowFn func() time.Time
}

// New constructs a store backed by path and makes sure the backing file holds
// valid JSON. A corrupt file is moved aside to <path>.bak and replaced with an
// empty document, matching the degrade-and-log failure policy.
func New(path string) *Store {
	s := &Store{path: path, nowFn: time.Now}
	s.ensure()
	return s
}

func (s *Store) ensure() {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.Save(model.Document{}); err != nil {
			logx.Errorf("store: create %s: %v", s.path, err)
		}
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		logx.Errorf("store: read %s: %v", s.path, err)
		return
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logx.Errorf("store: corrupt data file %s, backing up and resetting: %v", s.path, err)
		if err := os.Rename(s.path, s.path+".bak"); err != nil {
			logx.Errorf("store: backup %s: %v", s.path, err)
		}
		if err := s.Save(model.Document{}); err != nil {
			logx.Errorf("store: reset %s: %v", s.path, err)
		}
	}
}

// Load returns the full document. A missing, unreadable, or malformed backing
// file yields an empty document, never an error the caller has to handle.
func (s *Store) Load() model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read()
}

func (s *Store) read() model.Document {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.Document{}
	}
	if err != nil {
		logx.Errorf("store: read %s: %v", s.path, err)
		return model.Document{}
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logx.Errorf("store: decode %s: %v", s.path, err)
		return model.Document{}
	}
	if doc == nil {
		doc = model.Document{}
	}
	return doc
}

// Save overwrites the backing file with the full document.
func (s *Store) Save(doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

func (s *Store) write(doc model.Document) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logx.Errorf("store: mkdir %s: %v", dir, err)
			return fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logx.Errorf("store: write %s: %v", s.path, err)
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}

// SaveEntry inserts or overwrites the entry for date. Last write wins.
func (s *Store) SaveEntry(date string, entry model.DailyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	doc[date] = entry
	logx.Infof("store: saving entry for %s", date)
	return s.write(doc)
}

// Entry returns the entry for date; ok is false when the date has no entry.
func (s *Store) Entry(date string) (model.DailyEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.read()[date]
	return entry, ok
}

// DateRange returns the sub-document for the most recent days calendar dates
// counted back from today, inclusive. Dates without an entry are absent from
// the result rather than zero-filled.
func (s *Store) DateRange(days int) model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := s.read()
	out := model.Document{}
	now := s.nowFn()
	for i := 0; i < days; i++ {
		key := now.AddDate(0, 0, -i).Format(model.DateKey)
		if entry, ok := doc[key]; ok {
			out[key] = entry
		}
	}
	return out
}

// Statistics summarises the whole document.
func (s *Store) Statistics() stats.Summary {
	return stats.Summarize(s.Load())
}

// Delete removes the entry for date. Deleting an absent date is a no-op that
// still reports success.
func (s *Store) Delete(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.read()
	if _, ok := doc[date]; !ok {
		return nil
	}
	delete(doc, date)
	logx.Infof("store: deleted entry for %s", date)
	return s.write(doc)
}

// Today returns the current date key as seen by the store clock.
func (s *Store) Today() string {
	return s.nowFn().Format(model.DateKey)
}
