// Package leaderboard persists the local top scores in cross-platform
// key-value storage. Records live under a single fixed key; every write
// is an atomic replace of the re-sorted, truncated list.
package leaderboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	// MaxEntries is the number of records kept.
	MaxEntries = 5

	// MaxNameLen is the longest stored player name.
	MaxNameLen = 8

	storageObject   = "fruit"
	storageProperty = "leaderboard"
)

// Entry is one leaderboard record.
type Entry struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
	Date  string `yaml:"date"`
}

// Store reads and writes the leaderboard. A nil manager degrades to a
// memoryless store: loads are empty and submits succeed without
// persisting.
type Store struct {
	manager *gdata.Manager
}

// Open creates a store backed by the platform data directory for the
// given application name.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open leaderboard storage: %w", err)
	}
	return &Store{manager: manager}, nil
}

// NewStore wraps an existing gdata manager, which may be nil.
func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// Load returns the stored records, best first. Absent or malformed
// data reads as an empty leaderboard rather than an error.
func (s *Store) Load() []Entry {
	if s.manager == nil || !s.manager.ObjectPropExists(storageObject, storageProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(storageObject, storageProperty)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Submit records a new score. The name is truncated to MaxNameLen, the
// list re-sorted descending by score and truncated to MaxEntries, and
// the previous value overwritten in one write.
func (s *Store) Submit(name string, score int) error {
	if runes := []rune(name); len(runes) > MaxNameLen {
		name = string(runes[:MaxNameLen])
	}

	entries := append(s.Load(), Entry{
		Name:  name,
		Score: score,
		Date:  time.Now().Format("2006-01-02"),
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	return s.save(entries)
}

func (s *Store) save(entries []Entry) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := s.manager.SaveObjectProp(storageObject, storageProperty, data); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}
