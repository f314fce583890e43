package pinyin

import "strings"

// Initial 是声母。InitialNone 表示零声母。
type Initial uint8

const (
	InitialNone Initial = iota
	InitialB
	InitialP
	InitialM
	InitialF
	InitialD
	InitialT
	InitialN
	InitialL
	InitialG
	InitialK
	InitialH
	InitialJ
	InitialQ
	InitialX
	InitialZh
	InitialCh
	InitialSh
	InitialR
	InitialZ
	InitialC
	InitialS
)

type initialInfo struct {
	spelling string
	symbol   string
	ipa      [][]string
}

var initialTable = [...]initialInfo{
	InitialNone: {"", "", [][]string{{""}}},
	InitialB:    {"b", "ㄅ", [][]string{{"p"}}},
	InitialP:    {"p", "ㄆ", [][]string{{"pʰ"}}},
	InitialM:    {"m", "ㄇ", [][]string{{"m"}}},
	InitialF:    {"f", "ㄈ", [][]string{{"f"}}},
	InitialD:    {"d", "ㄉ", [][]string{{"t"}}},
	InitialT:    {"t", "ㄊ", [][]string{{"tʰ"}}},
	InitialN:    {"n", "ㄋ", [][]string{{"n"}}},
	InitialL:    {"l", "ㄌ", [][]string{{"l"}}},
	InitialG:    {"g", "ㄍ", [][]string{{"k"}}},
	InitialK:    {"k", "ㄎ", [][]string{{"kʰ"}}},
	InitialH:    {"h", "ㄏ", [][]string{{"x"}, {"h"}}},
	InitialJ:    {"j", "ㄐ", [][]string{{"ʨ"}}},
	InitialQ:    {"q", "ㄑ", [][]string{{"ʨʰ"}}},
	InitialX:    {"x", "ㄒ", [][]string{{"ɕ"}}},
	InitialZh:   {"zh", "ㄓ", [][]string{{"ꭧ"}}},
	InitialCh:   {"ch", "ㄔ", [][]string{{"ꭧʰ"}}},
	InitialSh:   {"sh", "ㄕ", [][]string{{"ʂ"}}},
	InitialR:    {"r", "ㄖ", [][]string{{"ɻ"}, {"ʐ"}}},
	InitialZ:    {"z", "ㄗ", [][]string{{"ʦ"}}},
	InitialC:    {"c", "ㄘ", [][]string{{"ʦʰ"}}},
	InitialS:    {"s", "ㄙ", [][]string{{"s"}}},
}

// initialOrder 是最长前缀匹配的顺序，双字母声母在前。
var initialOrder = []Initial{
	InitialZh, InitialCh, InitialSh,
	InitialB, InitialC, InitialD, InitialF, InitialG, InitialH, InitialJ, InitialK,
	InitialL, InitialM, InitialN, InitialP, InitialQ, InitialR, InitialS, InitialT,
	InitialX, InitialZ,
}

// String 返回声母拼写。
func (i Initial) String() string {
	if int(i) >= len(initialTable) {
		return ""
	}
	return initialTable[i].spelling
}

// Symbol 返回声母的注音符号，零声母为空串。
func (i Initial) Symbol() string {
	if int(i) >= len(initialTable) {
		return ""
	}
	return initialTable[i].symbol
}

// IPA 返回声母的 IPA 自由变体，每个变体是一个音素序列。
func (i Initial) IPA() [][]string {
	if int(i) >= len(initialTable) {
		return nil
	}
	return initialTable[i].ipa
}

// retroflex 报告声母是否属于 zh/ch/sh/r 组。
func (i Initial) retroflex() bool {
	return i == InitialZh || i == InitialCh || i == InitialSh || i == InitialR
}

// dental 报告声母是否属于 z/c/s 组。
func (i Initial) dental() bool {
	return i == InitialZ || i == InitialC || i == InitialS
}

// palatal 报告声母是否属于 j/q/x 组。
func (i Initial) palatal() bool {
	return i == InitialJ || i == InitialQ || i == InitialX
}

// SplitInitial 按最长前缀拆出声母，返回声母和剩余部分。
func SplitInitial(s string) (Initial, string) {
	for _, ini := range initialOrder {
		if rest, ok := strings.CutPrefix(s, initialTable[ini].spelling); ok {
			return ini, rest
		}
	}
	return InitialNone, s
}

// ParseInitial 将拼写解析为声母。
func ParseInitial(s string) (Initial, bool) {
	if s == "" {
		return InitialNone, false
	}
	for _, ini := range initialOrder {
		if initialTable[ini].spelling == s {
			return ini, true
		}
	}
	return InitialNone, false
}
