package leaderboard

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/quasilyte/gdata/v2"
)

// newTestStore backs a store with a throwaway app directory, removed
// when the test finishes.
func newTestStore(t *testing.T, name string) *Store {
	t.Helper()
	appName := fmt.Sprintf("fruit_test_%s_%d", name, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("cannot open gdata storage: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return NewStore(manager)
}

func TestLoadAbsentKeyIsEmpty(t *testing.T) {
	s := newTestStore(t, "absent")
	if entries := s.Load(); len(entries) != 0 {
		t.Fatalf("absent key loaded %d entries, want none", len(entries))
	}
}

func TestSubmitSortsAndTruncates(t *testing.T) {
	s := newTestStore(t, "sort")
	scores := []int{120, 40, 300, 90, 250, 10, 170}
	for i, score := range scores {
		if err := s.Submit(fmt.Sprintf("p%d", i), score); err != nil {
			t.Fatalf("submit %d: %v", score, err)
		}
	}

	entries := s.Load()
	if len(entries) != MaxEntries {
		t.Fatalf("stored %d entries, want %d", len(entries), MaxEntries)
	}
	want := []int{300, 250, 170, 120, 90}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d score = %d, want %d", i, e.Score, want[i])
		}
	}
}

func TestSubmitTruncatesLongName(t *testing.T) {
	s := newTestStore(t, "name")
	if err := s.Submit("averylongname", 50); err != nil {
		t.Fatal(err)
	}
	entries := s.Load()
	if len(entries) != 1 || entries[0].Name != "averylon" {
		t.Fatalf("entries = %+v, want one entry named %q", entries, "averylon")
	}
	if entries[0].Date == "" {
		t.Error("submitted entry must carry a date")
	}
}

// Truncation counts characters, not bytes: a long multibyte name must
// round-trip as its first MaxNameLen runes, never as split UTF-8.
func TestSubmitTruncatesMultibyteName(t *testing.T) {
	s := newTestStore(t, "multibyte")
	if err := s.Submit("ゲームプレイヤーズ", 99); err != nil {
		t.Fatal(err)
	}
	entries := s.Load()
	if len(entries) != 1 {
		t.Fatalf("stored %d entries, want 1", len(entries))
	}
	if got, want := entries[0].Name, "ゲームプレイヤー"; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
	if !utf8.ValidString(entries[0].Name) {
		t.Error("stored name must be valid UTF-8")
	}
}

func TestSubmitKeepsShortMultibyteName(t *testing.T) {
	s := newTestStore(t, "multibyte_short")
	if err := s.Submit("日本語", 10); err != nil {
		t.Fatal(err)
	}
	entries := s.Load()
	if len(entries) != 1 || entries[0].Name != "日本語" {
		t.Fatalf("entries = %+v, want one entry named %q", entries, "日本語")
	}
}

func TestLoadMalformedDataIsEmpty(t *testing.T) {
	s := newTestStore(t, "corrupt")
	if err := s.manager.SaveObjectProp(storageObject, storageProperty, []byte("{not yaml")); err != nil {
		t.Fatal(err)
	}
	if entries := s.Load(); entries != nil {
		t.Fatalf("malformed data loaded as %+v, want empty", entries)
	}
}

func TestNilManagerDegradesSilently(t *testing.T) {
	s := NewStore(nil)
	if entries := s.Load(); entries != nil {
		t.Fatal("nil manager must load empty")
	}
	if err := s.Submit("name", 10); err != nil {
		t.Fatalf("nil manager submit = %v, want success", err)
	}
}
