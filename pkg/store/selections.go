package store

import (
	"bytes"
	"errors"
	"io"
	"log"

	"tableflip.dev/daymark/pkg/selection"
)

// DefaultKey is the blob key holding the selected days.
const DefaultKey = "selectedDays"

// Selections loads and saves a selection.Store through a Blob. Load never
// fails: a missing, unreadable or corrupt blob yields an empty store and a
// log line.
type Selections struct {
	Blob   Blob
	Key    string
	Logger *log.Logger

	last []byte
}

// NewSelections returns a Selections for key, using DefaultKey when empty.
func NewSelections(blob Blob, key string, logger *log.Logger) *Selections {
	if key == "" {
		key = DefaultKey
	}
	return &Selections{Blob: blob, Key: key, Logger: logger}
}

// Load returns the persisted store, or an empty one on any failure.
func (s *Selections) Load() selection.Store {
	st, _ := s.load(false)
	return st
}

// Reload re-reads the blob. changed is false when the stored bytes equal
// what this Selections last loaded or saved, or when the blob cannot be read
// or decoded; the caller keeps its in-memory store in that case.
func (s *Selections) Reload() (st selection.Store, changed bool) {
	return s.load(true)
}

// Save serializes st and writes it under Key. Errors are logged and returned
// so callers may ignore them.
func (s *Selections) Save(st selection.Store) error {
	data, err := selection.Marshal(st)
	if err != nil {
		s.logf("store: encode %s: %v", s.key(), err)
		return err
	}
	if s.Blob == nil {
		err := errors.New("store: no blob configured")
		s.logf("%v", err)
		return err
	}
	if err := s.Blob.Save(s.key(), data); err != nil {
		s.logf("store: save %s: %v", s.key(), err)
		return err
	}
	s.last = data
	return nil
}

func (s *Selections) load(reload bool) (selection.Store, bool) {
	if s.Blob == nil {
		return selection.Store{}, false
	}
	data, err := s.Blob.Load(s.key())
	switch {
	case errors.Is(err, ErrNotFound):
		if reload && s.last == nil {
			return selection.Store{}, false
		}
		s.last = nil
		return selection.Store{}, true
	case err != nil:
		s.logf("store: load %s: %v", s.key(), err)
		return selection.Store{}, !reload
	}
	if reload && bytes.Equal(data, s.last) {
		return selection.Store{}, false
	}

	st, err := selection.Unmarshal(data)
	if err != nil {
		s.logf("store: decode %s: %v", s.key(), err)
		return selection.Store{}, !reload
	}
	s.last = data
	return st, true
}

func (s *Selections) key() string {
	if s.Key == "" {
		return DefaultKey
	}
	return s.Key
}

func (s *Selections) logf(format string, args ...interface{}) {
	l := s.Logger
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	l.Printf(format, args...)
}
