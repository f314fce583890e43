package lexicon

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/iabetor/kokoro-g2p/internal/database"
	"github.com/iabetor/kokoro-g2p/internal/pinyin"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "g2p.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

func TestStore_CRUD(t *testing.T) {
	s := newTestStore(t)

	if n := s.Count(); n != 0 {
		t.Errorf("expected 0 entries, got %d", n)
	}

	if err := s.Add("还款", "huan2 kuan3", "借还款"); err != nil {
		t.Fatal(err)
	}
	e, err := s.Get("还款")
	if err != nil {
		t.Fatal(err)
	}
	if e == nil {
		t.Fatal("expected entry for 还款")
	}
	if got := pinyin.FormatSyllables(e.Pinyin); got != "huan2 kuan3" {
		t.Errorf("pinyin = %q, want %q", got, "huan2 kuan3")
	}
	if e.Note != "借还款" {
		t.Errorf("note = %q", e.Note)
	}

	// 更新已有词条
	if err := s.Add("还款", "hai2 kuan3", ""); err != nil {
		t.Fatal(err)
	}
	if e, _ := s.Get("还款"); e == nil || pinyin.FormatSyllables(e.Pinyin) != "hai2 kuan3" {
		t.Errorf("update failed: %+v", e)
	}
	if n := s.Count(); n != 1 {
		t.Errorf("expected 1 entry after update, got %d", n)
	}

	ok, err := s.Remove("还款")
	if err != nil || !ok {
		t.Errorf("Remove = %v, %v", ok, err)
	}
	if ok, _ := s.Remove("不存在"); ok {
		t.Error("expected remove of nonexistent to return false")
	}
	if e, err := s.Get("还款"); e != nil || err != nil {
		t.Errorf("Get after remove = %+v, %v", e, err)
	}
}

func TestStore_AddInvalid(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		word, py string
		want     error
	}{
		{"", "a1", ErrInvalidWord},
		{"ok", "ou1 kei1", ErrInvalidWord},
		{"还款", "huan2", ErrSyllableCount},
		{"还", "huan9", pinyin.ErrInvalidSyllable},
		{"还", "bx1", pinyin.ErrFinalNotFound},
	}

	for _, tt := range tests {
		if err := s.Add(tt.word, tt.py, ""); !errors.Is(err, tt.want) {
			t.Errorf("Add(%q, %q) = %v, want %v", tt.word, tt.py, err, tt.want)
		}
	}
	if n := s.Count(); n != 0 {
		t.Errorf("invalid entries must not be stored, got %d", n)
	}
}

func TestStore_ListAndPhrases(t *testing.T) {
	s := newTestStore(t)

	for word, py := range map[string]string{"银行": "yin2 hang2", "重庆": "chong2 qing4"} {
		if err := s.Add(word, py, ""); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	phrases, err := s.Phrases()
	if err != nil {
		t.Fatal(err)
	}
	if got := pinyin.FormatSyllables(phrases["重庆"]); got != "chong2 qing4" {
		t.Errorf("Phrases[重庆] = %q", got)
	}
}
