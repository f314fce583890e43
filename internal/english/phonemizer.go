// Package english 把英文单词转换为 IPA 音素串。
//
// 音素化通过 Phonemizer 接口接入，内置 CMU 词典实现和 goruut 实现，
// Acronyms 包装器负责把短的全大写缩写逐字母拼读。
package english

import (
	"errors"
	"unicode/utf8"
)

// ErrNoPhonemes 表示后端没有为单词给出任何音素。
var ErrNoPhonemes = errors.New("english: 没有音素输出")

// Phonemizer 把一个英文单词转换为音素串。
// 实现必须可以被多个 goroutine 并发调用。
type Phonemizer interface {
	Phonemize(word string) (string, error)
}

// acronymMaxLen 以下长度的全大写词按字母拼读。
const acronymMaxLen = 4

// AcronymSpeller 把短的全大写单词按字母拼读，其余交给下一个 Phonemizer。
type AcronymSpeller struct {
	next Phonemizer
}

// Acronyms 用缩写拼读包装 next。
func Acronyms(next Phonemizer) *AcronymSpeller {
	return &AcronymSpeller{next: next}
}

// Phonemize 实现 Phonemizer。
func (a *AcronymSpeller) Phonemize(word string) (string, error) {
	if IsAcronym(word) {
		return Letters(word), nil
	}
	return a.next.Phonemize(word)
}

// IsAcronym 报告 word 是否少于四个字符且全部为 ASCII 大写字母。
func IsAcronym(word string) bool {
	if word == "" || utf8.RuneCountInString(word) >= acronymMaxLen {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
