package frontend

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iabetor/kokoro-g2p/internal/numeral"
	"github.com/iabetor/kokoro-g2p/internal/pinyin"
)

const (
	// punctuation 是前端认作标点的字符。
	punctuation = ";: ,.!?—…\"()“”"

	structuralParticles = "的地得"
	modalParticles      = "吧呢啊呐噻嘛吖嗨呐哦哒滴哩哟喽啰耶喔诶"
	aspectParticles     = "了着过"
	pluralSuffixes      = "们子"
	localitySuffixes    = "上下"
	directionSuffixes   = "来去"
	directionPrefixes   = "上下进出回过起开"
	measurePrefixes     = "几有两半多各整每做是"
)

// setTone 修改 syls[i] 的声调，越界时忽略。
func setTone(syls []pinyin.Syllable, i int, t pinyin.Tone) {
	if i >= 0 && i < len(syls) {
		syls[i].Tone = t
	}
}

// setLastTone 修改最后一个音节的声调。
func setLastTone(syls []pinyin.Syllable, t pinyin.Tone) {
	setTone(syls, len(syls)-1, t)
}

func isPunctuation(s string) bool {
	return s != "" && strings.Contains(punctuation, s)
}

// ModifyTone 依次应用“不”、“一”、轻声和三声变调，直接修改 syls。
func (f *Frontend) ModifyTone(word, tag string, syls []pinyin.Syllable) {
	BuSandhi(word, syls)
	YiSandhi(word, syls)
	f.NeutralSandhi(word, tag, syls)
	f.ThreeSandhi(word, syls)
}

// BuSandhi 处理“不”的变调：“看不懂”中读轻声，四声前读二声。
func BuSandhi(word string, syls []pinyin.Syllable) {
	runes := []rune(word)
	if len(runes) == 3 && runes[1] == '不' {
		setTone(syls, 1, pinyin.Tone5)
		return
	}
	for i, r := range runes {
		if r == '不' && i+1 < len(runes) && i+1 < len(syls) && syls[i+1].Tone == pinyin.Tone4 {
			setTone(syls, i, pinyin.Tone2)
		}
	}
}

// YiSandhi 处理“一”的变调。数词中的“一”和序数“第一”不变。
func YiSandhi(word string, syls []pinyin.Syllable) {
	runes := []rune(word)
	if strings.ContainsRune(word, '一') && (onlyNumbersBesideYi(runes) || numeral.IsNumeral(word)) {
		return
	}

	switch {
	case len(runes) == 3 && runes[1] == '一' && runes[0] == runes[2]:
		setTone(syls, 1, pinyin.Tone5)
	case strings.HasPrefix(word, "第一"):
		setTone(syls, 1, pinyin.Tone1)
	default:
		for i, r := range runes {
			if r != '一' || i+1 >= len(runes) {
				continue
			}
			if i+1 < len(syls) && (syls[i+1].Tone == pinyin.Tone4 || syls[i+1].Tone == pinyin.Tone5) {
				setTone(syls, i, pinyin.Tone2)
			} else if !isPunctuation(string(runes[i+1])) {
				setTone(syls, i, pinyin.Tone4)
			}
		}
	}
}

// onlyNumbersBesideYi 报告除“一”之外的字是否都是数字字符。
func onlyNumbersBesideYi(runes []rune) bool {
	for _, r := range runes {
		if r != '一' && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// NeutralSandhi 处理轻声：叠词、助词、方位词、趋向补语、量词“个”
// 以及必读轻声词表中的词。
func (f *Frontend) NeutralSandhi(word, tag string, syls []pinyin.Syllable) {
	if inSet(mustNotNeutral, word) {
		return
	}

	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return
	}

	if tag != "" && strings.ContainsRune("nva", rune(tag[0])) {
		for j := 1; j < n; j++ {
			if runes[j] == runes[j-1] {
				setTone(syls, j, pinyin.Tone5)
			}
		}
	}

	last := runes[n-1]
	ge := -1
	for i, r := range runes {
		if r == '个' {
			ge = i
			break
		}
	}

	switch {
	case strings.ContainsRune(structuralParticles, last) || strings.ContainsRune(modalParticles, last),
		n == 1 && strings.ContainsRune(aspectParticles, last) && (tag == "ul" || tag == "uz" || tag == "ug"),
		n > 1 && strings.ContainsRune(pluralSuffixes, last) && (tag == "r" || tag == "n"),
		n > 1 && strings.ContainsRune(localitySuffixes, last) && (tag == "s" || tag == "l" || tag == "f"),
		n > 1 && strings.ContainsRune(directionSuffixes, last) && strings.ContainsRune(directionPrefixes, runes[n-2]):
		setLastTone(syls, pinyin.Tone5)
	case ge >= 1 && (numeral.IsNumeral(string(runes[:ge])) || strings.ContainsRune(measurePrefixes, runes[ge-1])),
		word == "个":
		setTone(syls, ge, pinyin.Tone5)
	case mustBeNeutral(word):
		setLastTone(syls, pinyin.Tone5)
	}

	left, right := f.SplitWord(word)
	k := utf8.RuneCountInString(left)
	if k > len(syls) {
		k = len(syls)
	}
	if mustBeNeutral(left) {
		setLastTone(syls[:k], pinyin.Tone5)
	}
	if mustBeNeutral(right) {
		setLastTone(syls[k:], pinyin.Tone5)
	}
}

// mustBeNeutral 报告 word 本身或其最后两个字是否在必读轻声词表中。
func mustBeNeutral(word string) bool {
	if inSet(mustNeutral, word) {
		return true
	}
	runes := []rune(word)
	return len(runes) >= 2 && inSet(mustNeutral, string(runes[len(runes)-2:]))
}

// ThreeSandhi 处理三声连读变调。
func (f *Frontend) ThreeSandhi(word string, syls []pinyin.Syllable) {
	switch utf8.RuneCountInString(word) {
	case 2:
		if allTone3(syls) {
			setTone(syls, 0, pinyin.Tone2)
		}
	case 3:
		left, _ := f.SplitWord(word)
		k := utf8.RuneCountInString(left)
		if allTone3(syls) {
			switch k {
			case 2:
				setTone(syls, 0, pinyin.Tone2)
				setTone(syls, 1, pinyin.Tone2)
			case 1:
				setTone(syls, 1, pinyin.Tone2)
			}
			return
		}
		if k > len(syls) {
			k = len(syls)
		}
		l, r := syls[:k], syls[k:]
		if len(l) == 2 && allTone3(l) {
			setTone(l, 0, pinyin.Tone2)
		}
		if len(r) == 2 && allTone3(r) {
			setTone(r, 0, pinyin.Tone2)
		}
		if !allTone3(r) && len(r) > 0 && r[0].Tone == pinyin.Tone3 &&
			len(l) > 0 && l[len(l)-1].Tone == pinyin.Tone3 {
			setLastTone(l, pinyin.Tone2)
		}
	case 4:
		if len(syls) < 2 {
			return
		}
		for _, half := range [][]pinyin.Syllable{syls[:2], syls[2:]} {
			if allTone3(half) {
				setTone(half, 0, pinyin.Tone2)
			}
		}
	}
}

// SplitWord 用搜索模式切分找出最短的子词，把 word 拆成左右两段。
// 最短子词是前缀时它作为左段，否则作为右段。
func (f *Frontend) SplitWord(word string) (string, string) {
	subs := f.seg.CutForSearch(word)
	if len(subs) == 0 {
		return word, ""
	}
	sorted := append([]string(nil), subs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) < utf8.RuneCountInString(sorted[j])
	})

	first := sorted[0]
	if strings.HasPrefix(word, first) {
		return first, word[len(first):]
	}
	if len(first) > len(word) {
		return word, ""
	}
	return word[:len(word)-len(first)], first
}
