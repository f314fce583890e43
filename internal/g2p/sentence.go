package g2p

import (
	"strings"
	"unicode/utf8"
)

// defaultChunkRunes 是长文本分段时每段的默认最大字符数。
const defaultChunkRunes = 100

var sentenceEnders = []rune{'。', '！', '？', '；', '.', '!', '?', '\n'}

// extractSentence 尝试从文本中提取第一个完整句子。
func extractSentence(text string) (string, string, bool) {
	for i, r := range text {
		for _, ender := range sentenceEnders {
			if r == ender {
				splitAt := i + utf8.RuneLen(r)
				return text[:splitAt], text[splitAt:], true
			}
		}
	}
	return "", text, false
}

// Sentences 将文本按句分割后合并为大段，每段不超过 maxRunes 个字符。
// 单句超长时单独成段，不在句中切开。
func Sentences(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = defaultChunkRunes
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		currentLen = 0
	}
	add := func(s string) {
		n := utf8.RuneCountInString(s)
		// 追加后超限，先刷出当前段
		if currentLen > 0 && currentLen+n > maxRunes {
			flush()
		}
		// 英文句子之间保留一个空格
		if first, _ := utf8.DecodeRuneInString(s); currentLen > 0 && first < utf8.RuneSelf {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(s)
		currentLen += n
	}

	remaining := text
	for {
		sentence, rest, found := extractSentence(remaining)
		if !found {
			if r := strings.TrimSpace(remaining); r != "" {
				add(r)
			}
			break
		}
		remaining = rest
		if sentence = strings.TrimSpace(sentence); sentence != "" {
			add(sentence)
		}
	}
	flush()
	return chunks
}

// ConvertSentences 先按 Sentences 分段，再逐段转换，适合边转换边合成的调用方。
func (c *Converter) ConvertSentences(text string, maxRunes int) ([]string, error) {
	chunks := Sentences(text, maxRunes)
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		ph, err := c.Convert(chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, ph)
	}
	return out, nil
}
