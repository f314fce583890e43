package pinyin

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
	"sync"

	gopinyin "github.com/mozillazg/go-pinyin"

	"github.com/iabetor/kokoro-g2p/internal/logger"
)

// 数字声调风格，例如 hǎo -> hao3，轻声不带数字。
var lookupArgs = func() gopinyin.Args {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone3
	return args
}()

// 带声调的全部读音，用于列出多音字。
var heteronymArgs = func() gopinyin.Args {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone3
	args.Heteronym = true
	return args
}()

// Readings 返回单个汉字的全部读音，第一个为默认读音。
func Readings(r rune) []Syllable {
	pys := gopinyin.SinglePinyin(r, heteronymArgs)
	out := make([]Syllable, 0, len(pys))
	for _, py := range pys {
		if syl, err := ParseSyllable(py); err == nil {
			out = append(out, syl)
		}
	}
	return out
}

// LookupRune 返回单个汉字的默认读音，非汉字返回 false。
func LookupRune(r rune) (Syllable, bool) {
	pys := gopinyin.SinglePinyin(r, lookupArgs)
	if len(pys) == 0 || pys[0] == "" {
		return Syllable{}, false
	}
	syl, err := ParseSyllable(pys[0])
	if err != nil {
		return Syllable{}, false
	}
	return syl, true
}

// Lookup 逐字取默认读音，跳过没有读音的字符。
func Lookup(word string) []Syllable {
	out := make([]Syllable, 0, len(word)/3)
	for _, r := range word {
		if syl, ok := LookupRune(r); ok {
			out = append(out, syl)
		}
	}
	return out
}

//go:embed data/phrases.dict
var phrasesData []byte

var (
	phrasesOnce sync.Once
	phrases     map[string][]Syllable
)

// Phrases 返回内置的词组读音表，用来纠正多音字的默认读音。
// 表只构建一次，调用方不得修改。
func Phrases() map[string][]Syllable {
	phrasesOnce.Do(func() {
		phrases = parsePhrases(phrasesData)
		logger.Debugf("[pinyin] 词组读音表已加载，共 %d 条", len(phrases))
	})
	return phrases
}

// parsePhrases 解析 "词 拼音1 拼音2" 格式，# 开头为注释。
func parsePhrases(data []byte) map[string][]Syllable {
	m := make(map[string][]Syllable)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, rest, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		syls, err := ParseSyllables(rest)
		if err != nil {
			logger.Warnf("[pinyin] 跳过无效词条 %q: %v", line, err)
			continue
		}
		m[word] = syls
	}
	return m
}
