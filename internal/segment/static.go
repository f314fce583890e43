package segment

import (
	"sync"
	"unicode"
	"unicode/utf8"
)

// Static 是基于词表的正向最大匹配分词器，词性由词表直接给出。
// 输出完全由词表决定，用于测试和没有外部词典时的兜底。
// 词表外的汉字逐字输出，标签为 x；ASCII 字母数字串标为 eng。
type Static struct {
	mu     sync.RWMutex
	words  map[string]string
	maxLen int
}

// NewStatic 用 词 -> 词性 表创建分词器。
func NewStatic(words map[string]string) *Static {
	s := &Static{words: make(map[string]string, len(words))}
	for w, tag := range words {
		s.add(w, tag)
	}
	return s
}

// AddWord 注册一个词。
func (s *Static) AddWord(word, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(word, tag)
	return nil
}

func (s *Static) add(word, tag string) {
	if word == "" {
		return
	}
	s.words[word] = tag
	if n := utf8.RuneCountInString(word); n > s.maxLen {
		s.maxLen = n
	}
}

// Tag 正向最大匹配分词。
func (s *Static) Tag(text string) []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runes := []rune(text)
	var tokens []Token
	for i := 0; i < len(runes); {
		if w, tag, ok := s.longest(runes[i:]); ok {
			tokens = append(tokens, Token{Text: w, Tag: tag})
			i += utf8.RuneCountInString(w)
			continue
		}

		j := i + 1
		tag := TagPlaceholder
		switch r := runes[i]; {
		case isASCIIAlnum(r):
			for j < len(runes) && isASCIIAlnum(runes[j]) {
				j++
			}
			tag = TagEnglish
		case unicode.IsSpace(r):
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
		}
		tokens = append(tokens, Token{Text: string(runes[i:j]), Tag: tag})
		i = j
	}
	return tokens
}

func (s *Static) longest(runes []rune) (string, string, bool) {
	n := s.maxLen
	if n > len(runes) {
		n = len(runes)
	}
	for l := n; l >= 1; l-- {
		w := string(runes[:l])
		if tag, ok := s.words[w]; ok {
			return w, tag, true
		}
	}
	return "", "", false
}

// Cut 返回 Tag 结果中的词。
func (s *Static) Cut(text string) []string {
	tokens := s.Tag(text)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// CutForSearch 先分词，再对长词补充词表中的二字、三字子词，子词排在原词之前。
func (s *Static) CutForSearch(word string) []string {
	var out []string
	for _, w := range s.Cut(word) {
		runes := []rune(w)
		s.mu.RLock()
		for _, n := range []int{2, 3} {
			if len(runes) <= n {
				continue
			}
			for i := 0; i+n <= len(runes); i++ {
				if _, ok := s.words[string(runes[i:i+n])]; ok {
					out = append(out, string(runes[i:i+n]))
				}
			}
		}
		s.mu.RUnlock()
		out = append(out, w)
	}
	return out
}
