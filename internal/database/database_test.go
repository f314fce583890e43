package database

import (
	"path/filepath"
	"testing"
)

func TestOpen_Migrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "g2p.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path() = %q, want %q", db.Path(), path)
	}

	// 迁移可以重复执行
	for i := 0; i < 2; i++ {
		if err := db.Migrate(); err != nil {
			t.Fatalf("Migrate #%d: %v", i+1, err)
		}
	}

	if _, err := db.Exec(`INSERT INTO lexicon (word, pinyin) VALUES (?, ?)`, "还款", "huan2 kuan3"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var py string
	if err := db.QueryRow(`SELECT pinyin FROM lexicon WHERE word = ?`, "还款").Scan(&py); err != nil {
		t.Fatalf("select: %v", err)
	}
	if py != "huan2 kuan3" {
		t.Errorf("pinyin = %q", py)
	}
}

func TestOpen_Memory(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM lexicon`).Scan(&n); err != nil || n != 0 {
		t.Errorf("COUNT = %d, %v", n, err)
	}
}
