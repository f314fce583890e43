package pinyin

import (
	"fmt"
	"strings"
)

// 成音节辅音和叹词在拆声母之前整体匹配。
var (
	syllabicConsonants = map[string][][]string{
		"hm":  {{"h", "m0"}},
		"hng": {{"h", "ŋ0"}},
		"m":   {{"m0"}},
		"n":   {{"n0"}},
		"ng":  {{"ŋ0"}},
	}
	interjections = map[string][][]string{
		"io": {{"j", "ɔ0"}},
		"ê":  {{"ɛ0"}},
		"er": {{"ɚ0"}, {"aɚ̯0"}},
		"o":  {{"ɔ0"}},
	}
)

// ToIPA 把一个带调音节（如 "hao3"）转成 IPA 候选列表。
// 每个候选是声母变体与韵母变体拼接后的音素序列，调用方一般取第一个。
func ToIPA(syllable string) ([][]string, error) {
	text, tone := SplitTone(syllable)
	// 拼音库用 v 表示 ü
	text = strings.ReplaceAll(text, "v", "ü")
	text = restoreZeroConsonant(text)
	text = restoreUV(text)
	text = restoreIou(text)
	text = restoreUei(text)
	text = restoreUen(text)

	if tpl, ok := syllabicConsonants[text]; ok {
		return applyTone(tpl, tone), nil
	}
	if tpl, ok := interjections[text]; ok {
		return applyTone(tpl, tone), nil
	}

	ini, final := SplitInitial(text)
	finals, err := legacyFinalIPA(ini, final)
	if err != nil {
		return nil, err
	}

	var out [][]string
	for _, iv := range ini.IPA() {
		for _, fv := range applyTone(finals, tone) {
			cand := make([]string, 0, len(iv)+len(fv))
			cand = append(cand, iv...)
			cand = append(cand, fv...)
			out = append(out, cand)
		}
	}
	return out, nil
}

// LegacyIPA 返回音节的第一个 IPA 候选，并把声调五度标记折叠成箭头。
func LegacyIPA(syllable string) (string, error) {
	cands, err := ToIPA(syllable)
	if err != nil {
		return "", err
	}
	return firstCandidate(syllable, cands)
}

func firstCandidate(syllable string, cands [][]string) (string, error) {
	if len(cands) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyData, syllable)
	}

	var b strings.Builder
	for _, piece := range cands[0] {
		s, err := retone(piece)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func applyTone(tpl [][]string, tone Tone) [][]string {
	contour := tone.Contour()
	out := make([][]string, len(tpl))
	for i, v := range tpl {
		out[i] = make([]string, len(v))
		for j, s := range v {
			out[i][j] = strings.ReplaceAll(s, "0", contour)
		}
	}
	return out
}

const syllabicMark = '\u0329'

// retone 把五度标记折叠成 ↓ ↗ ↘ →，并把 ɻ̩、ɱ̩ 合成 ɨ。
func retone(s string) (string, error) {
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); {
		switch {
		case i+2 < len(rs) && rs[i] == '˧' && rs[i+1] == '˩' && rs[i+2] == '˧':
			b.WriteRune('↓')
			i += 3
		case i+1 < len(rs) && rs[i] == '˧' && rs[i+1] == '˥':
			b.WriteRune('↗')
			i += 2
		case i+1 < len(rs) && rs[i] == '˥' && rs[i+1] == '˩':
			b.WriteRune('↘')
			i += 2
		case rs[i] == '˥':
			b.WriteRune('→')
			i++
		case i+1 < len(rs) && rs[i+1] == syllabicMark && (rs[i] == 'ɻ' || rs[i] == 'ɱ'):
			b.WriteRune('ɨ')
			i += 2
		default:
			b.WriteRune(rs[i])
			i++
		}
	}
	out := b.String()
	if strings.ContainsRune(out, syllabicMark) {
		return "", fmt.Errorf("%w: %q", ErrStrayMark, out)
	}
	return out, nil
}

// restoreZeroConsonant 把零声母写法还原成韵母，例如 yu->ü、wei->uei。
// 还原结果不在韵母表里时保持原样。
func restoreZeroConsonant(s string) string {
	var out string
	switch {
	case strings.HasPrefix(s, "yu"):
		out = "ü" + s[len("yu"):]
	case strings.HasPrefix(s, "yi"):
		out = s[len("y"):]
	case strings.HasPrefix(s, "y"):
		out = "i" + s[len("y"):]
	case strings.HasPrefix(s, "wu"):
		out = s[len("w"):]
	case strings.HasPrefix(s, "w"):
		out = "u" + s[len("w"):]
	default:
		return s
	}
	if validFinals[out] {
		return out
	}
	return s
}

// restoreUV 还原 j/q/x 之后省略两点的 ü。
func restoreUV(s string) string {
	if len(s) >= 2 && strings.ContainsRune("jqx", rune(s[0])) && s[1] == 'u' {
		return s[:1] + "ü" + s[2:]
	}
	return s
}

// restoreIou 还原 iu -> iou，例如 niu -> niou。
func restoreIou(s string) string {
	if strings.HasSuffix(s, "iu") {
		return s[:len(s)-1] + "ou"
	}
	return s
}

// restoreUei 还原 ui -> uei，例如 gui -> guei。
func restoreUei(s string) string {
	if strings.HasSuffix(s, "ui") {
		return s[:len(s)-1] + "ei"
	}
	return s
}

// restoreUen 还原 un -> uen，例如 lun -> luen。
func restoreUen(s string) string {
	if strings.HasSuffix(s, "un") {
		return s[:len(s)-1] + "en"
	}
	return s
}
