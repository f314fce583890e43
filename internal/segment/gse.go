package segment

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"

	"github.com/iabetor/kokoro-g2p/internal/logger"
)

// customWordFreq 是自定义词的词频，足够高以保证整词不被切开。
const customWordFreq = 100000

// Gse 是基于 gse 的分词器，兼容 jieba 词典和词性标签。
// 通过 AddWord 注册的词总是带着注册时的词性，即使 gse 词典里已有这个词。
type Gse struct {
	seg gse.Segmenter

	mu     sync.RWMutex
	custom map[string]string
}

// NewGse 加载分词词典，dictPath 为空时使用 gse 内置的中文词典。
func NewGse(dictPath string) (*Gse, error) {
	g := &Gse{custom: make(map[string]string)}
	var err error
	if dictPath == "" {
		err = g.seg.LoadDictEmbed()
	} else {
		err = g.seg.LoadDict(dictPath)
	}
	if err != nil {
		return nil, fmt.Errorf("加载分词词典失败: %w", err)
	}

	logger.Debugf("[segment] gse 词典已加载: %q", dictPath)
	return g, nil
}

// Tag 分词并标注词性，空标签按内容补成 eng 或 x。
func (g *Gse) Tag(text string) []Token {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos := g.seg.Pos(text, false)

	tokens := make([]Token, 0, len(pos))
	for _, p := range pos {
		tag := p.Pos
		if custom, ok := g.custom[p.Text]; ok {
			tag = custom
		} else if tag == "" {
			tag = guessTag(p.Text)
		}
		tokens = append(tokens, Token{Text: p.Text, Tag: tag})
	}
	return tokens
}

// Cut 使用 HMM 分词。
func (g *Gse) Cut(text string) []string {
	return g.seg.Cut(text, true)
}

// CutForSearch 返回搜索引擎模式的切分。
func (g *Gse) CutForSearch(word string) []string {
	return g.seg.CutSearch(word, true)
}

// AddWord 注册自定义词。gse 对已知词保留词典里的词性，
// 所以词性另外记录，Tag 时覆盖。
func (g *Gse) AddWord(word, tag string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.seg.AddToken(word, customWordFreq, tag); err != nil {
		return fmt.Errorf("添加自定义词 %q 失败: %w", word, err)
	}
	g.custom[word] = tag
	return nil
}

// guessTag 为没有词性的词补标签：纯 ASCII 字母数字为 eng，其余为 x。
func guessTag(text string) string {
	if text == "" {
		return TagPlaceholder
	}
	for _, r := range text {
		if !isASCIIAlnum(r) {
			return TagPlaceholder
		}
	}
	return TagEnglish
}

func isASCIIAlnum(r rune) bool {
	return r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}
