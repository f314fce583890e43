// Package lexicon 是用户词库：把词固定到指定读音，叠加在内置词组表之上。
package lexicon

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/iabetor/kokoro-g2p/internal/database"
	"github.com/iabetor/kokoro-g2p/internal/logger"
	"github.com/iabetor/kokoro-g2p/internal/pinyin"
)

var (
	// ErrInvalidWord 词为空或含有非汉字字符。
	ErrInvalidWord = errors.New("lexicon: 词必须由汉字组成")
	// ErrSyllableCount 音节数和字数不一致。
	ErrSyllableCount = errors.New("lexicon: 音节数与字数不一致")
)

// Entry 是词库中的一条记录。
type Entry struct {
	Word      string
	Pinyin    []pinyin.Syllable
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store 用户词库（SQLite）
type Store struct {
	db *database.DB
}

// NewStore 创建词库，必要时建表。
func NewStore(db *database.DB) (*Store, error) {
	if err := db.Migrate(); err != nil {
		return nil, err
	}
	s := &Store{db: db}
	logger.Debugf("[lexicon] 用户词库已加载，共 %d 条", s.Count())
	return s, nil
}

// Add 添加或更新一个词的读音。py 为空格分隔的带调拼音，例如 "huan2 kuan3"。
func (s *Store) Add(word, py, note string) error {
	word = strings.TrimSpace(word)
	syls, err := validate(word, py)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO lexicon (word, pinyin, note) VALUES (?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET pinyin = excluded.pinyin, note = excluded.note, updated_at = CURRENT_TIMESTAMP`,
		word, pinyin.FormatSyllables(syls), note)
	if err != nil {
		return fmt.Errorf("保存词条 %q 失败: %w", word, err)
	}
	logger.Infof("[lexicon] 已保存词条 %s -> %s", word, pinyin.FormatSyllables(syls))
	return nil
}

// validate 检查词和读音，读音必须能被两种音素解析器转换。
func validate(word, py string) ([]pinyin.Syllable, error) {
	if word == "" {
		return nil, ErrInvalidWord
	}
	for _, r := range word {
		if !unicode.Is(unicode.Han, r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
		}
	}

	syls, err := pinyin.ParseSyllables(py)
	if err != nil {
		return nil, err
	}
	if len(syls) != utf8.RuneCountInString(word) {
		return nil, fmt.Errorf("%w: %q 有 %d 个字，读音有 %d 个音节",
			ErrSyllableCount, word, utf8.RuneCountInString(word), len(syls))
	}
	for _, syl := range syls {
		if _, err := pinyin.ToIPA(syl.String()); err != nil {
			return nil, fmt.Errorf("音节 %s 无效: %w", syl, err)
		}
	}
	return syls, nil
}

// Remove 删除词条，返回是否确实删除了记录。
func (s *Store) Remove(word string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM lexicon WHERE word = ?`, strings.TrimSpace(word))
	if err != nil {
		return false, fmt.Errorf("删除词条失败: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("删除词条失败: %w", err)
	}
	return n > 0, nil
}

// Get 查询词条，不存在时返回 nil, nil。
func (s *Store) Get(word string) (*Entry, error) {
	row := s.db.QueryRow(`SELECT word, pinyin, note, created_at, updated_at FROM lexicon WHERE word = ?`,
		strings.TrimSpace(word))
	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("查询词条失败: %w", err)
	}
	return e, nil
}

// List 按词排序返回全部词条。
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT word, pinyin, note, created_at, updated_at FROM lexicon ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("查询词库失败: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("读取词条失败: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Count 返回词条数，出错时返回 0。
func (s *Store) Count() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM lexicon`).Scan(&n); err != nil {
		logger.Warnf("[lexicon] 统计词条失败: %v", err)
		return 0
	}
	return n
}

// Phrases 返回 词 -> 读音 表，供前端注册为不可切分的词组。
func (s *Store) Phrases() (map[string][]pinyin.Syllable, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	m := make(map[string][]pinyin.Syllable, len(entries))
	for _, e := range entries {
		m[e.Word] = e.Pinyin
	}
	return m, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var e Entry
	var py string
	var note sql.NullString
	var createdAt, updatedAt sql.NullTime
	if err := sc.Scan(&e.Word, &py, &note, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	syls, err := pinyin.ParseSyllables(py)
	if err != nil {
		return nil, fmt.Errorf("词条 %q 的读音 %q 无效: %w", e.Word, py, err)
	}
	e.Pinyin = syls
	e.Note = note.String
	if createdAt.Valid {
		e.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		e.UpdatedAt = updatedAt.Time
	}
	return &e, nil
}
