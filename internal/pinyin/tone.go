// Package pinyin 提供带调拼音音节、声母韵母表以及两种音素解析器。
//
// 解析器有两种：ToIPA/LegacyIPA 输出带声调箭头的 IPA（旧版模型），
// ToSymbols 输出注音风格符号（新版模型）。所有表在包初始化后只读，
// 可以被多个 goroutine 并发读取。
package pinyin

import (
	"errors"
	"fmt"
	"strings"
)

// Tone 是声调，Tone5 表示轻声。
type Tone uint8

const (
	Tone1 Tone = iota + 1
	Tone2
	Tone3
	Tone4
	Tone5
)

// toneContours 为每个声调的五度标记。
var toneContours = [...]string{
	Tone1: "˥",
	Tone2: "˧˥",
	Tone3: "˧˩˧",
	Tone4: "˥˩",
	Tone5: "",
}

// Valid 报告 t 是否是 1-5 之间的声调。
func (t Tone) Valid() bool {
	return t >= Tone1 && t <= Tone5
}

// String 返回声调数字。
func (t Tone) String() string {
	if !t.Valid() {
		return "?"
	}
	return string(rune('0' + t))
}

// Contour 返回声调的五度标记，轻声为空串。
func (t Tone) Contour() string {
	if !t.Valid() {
		return ""
	}
	return toneContours[t]
}

// ParseTone 解析单个声调数字。
func ParseTone(r rune) (Tone, bool) {
	if r < '1' || r > '5' {
		return 0, false
	}
	return Tone(r - '0'), true
}

// SplitTone 拆出末尾的声调数字，没有数字时视为轻声。
func SplitTone(s string) (string, Tone) {
	if s == "" {
		return s, Tone5
	}
	if t, ok := ParseTone(rune(s[len(s)-1])); ok {
		return s[:len(s)-1], t
	}
	return s, Tone5
}

// ErrInvalidSyllable 音节拼写不合法。
var ErrInvalidSyllable = errors.New("pinyin: 非法音节")

// Syllable 是一个带调音节。Text 不含声调数字，可能带有儿化标记 R。
type Syllable struct {
	Text string
	Tone Tone
}

// String 返回拼写加声调数字，例如 erR2。
func (s Syllable) String() string {
	return s.Text + s.Tone.String()
}

// WithTone 返回替换了声调的副本。
func (s Syllable) WithTone(t Tone) Syllable {
	s.Tone = t
	return s
}

// ParseSyllable 解析 "hao3" 这样的带调音节，缺少数字时按轻声处理。
// 拼写只允许小写字母、ü 和儿化标记 R。
func ParseSyllable(s string) (Syllable, error) {
	text, tone := SplitTone(strings.TrimSpace(s))
	if text == "" {
		return Syllable{}, fmt.Errorf("%w: %q", ErrInvalidSyllable, s)
	}
	for _, r := range text {
		if (r < 'a' || r > 'z') && r != 'ü' && r != 'ê' && r != 'R' {
			return Syllable{}, fmt.Errorf("%w: %q", ErrInvalidSyllable, s)
		}
	}
	return Syllable{Text: text, Tone: tone}, nil
}

// ParseSyllables 解析以空白分隔的音节序列，例如 "huan2 kuan3"。
func ParseSyllables(s string) ([]Syllable, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: 空拼音", ErrInvalidSyllable)
	}
	out := make([]Syllable, 0, len(fields))
	for _, f := range fields {
		syl, err := ParseSyllable(f)
		if err != nil {
			return nil, err
		}
		out = append(out, syl)
	}
	return out, nil
}

// FormatSyllables 把音节序列格式化为以空格分隔的字符串。
func FormatSyllables(syls []Syllable) string {
	parts := make([]string, len(syls))
	for i, s := range syls {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
