package pinyin

import "strings"

// Unknown 是符号表中找不到时输出的占位符。
const Unknown = "❓"

// ErhuaMarker 是插在声调数字前的儿化标记。
const ErhuaMarker = "R"

// passthrough 是原样输出的标点、空格、声调数字和儿化标记。
var passthrough = []string{
	";", ":", ",", ".", "!", "?", "/", "—", "…", "\"", "(", ")", "“", "”", " ",
	"1", "2", "3", "4", "5", ErhuaMarker,
}

var symbolTable = buildSymbolTable()

func buildSymbolTable() map[string]string {
	m := make(map[string]string, len(initialTable)+len(finalTable)+len(passthrough))
	for _, ini := range initialOrder {
		m[ini.String()] = ini.Symbol()
	}
	for f := FinalA; int(f) < len(finalTable); f++ {
		if sym := f.Symbol(); sym != "" {
			m[f.String()] = sym
		}
	}
	for _, p := range passthrough {
		m[p] = p
	}
	return m
}

// Symbol 查找单个音素片段（声母、韵母、声调或标点）的符号。
func Symbol(piece string) (string, bool) {
	s, ok := symbolTable[piece]
	return s, ok
}

// RestoreFinal 把拼写中的韵母还原成完整形式，只是一张固定的转换表：
// ü 写作 v，j/q/x 之后的 u 是 v，yu/yi/y/wu/w 去掉零声母写法，
// 然后还原第一个出现的 iu/ui/un 缩写。
func RestoreFinal(initial, final string) string {
	orig := final
	final = strings.Replace(final, "ü", "v", 1)

	switch {
	case strings.HasPrefix(orig, "u") && initial != "" && strings.ContainsRune("jqx", rune(initial[0])):
		final = "v" + final[1:]
	case strings.HasPrefix(orig, "yu"):
		final = "v" + final[2:]
	case strings.HasPrefix(orig, "yi"):
		final = "i" + final[2:]
	case strings.HasPrefix(orig, "y"):
		final = "i" + final[1:]
	case strings.HasPrefix(orig, "wu"):
		final = "u" + final[2:]
	case strings.HasPrefix(orig, "w"):
		final = "u" + final[1:]
	}

	for _, abbr := range [...][2]string{{"iu", "iou"}, {"ui", "uei"}, {"un", "uen"}} {
		if strings.Contains(final, abbr[0]) {
			return strings.Replace(final, abbr[0], abbr[1], 1)
		}
	}
	return final
}

// ToSymbols 把音节序列转成注音风格符号串。
// 声母、韵母和声调分别查表，查不到的片段输出 Unknown，不会失败。
// 输出只取决于音节文本。
func ToSymbols(syllables []Syllable) string {
	phones := make([]string, 0, len(syllables)*3)
	for _, s := range syllables {
		ini, rest := SplitInitial(s.Text)
		if ini != InitialNone {
			phones = append(phones, ini.String())
		}
		// 成音节辅音（n、m）没有韵母，也不输出声调
		if rest == "" {
			continue
		}
		phones = append(phones, RestoreFinal(ini.String(), rest), s.Tone.String())
	}

	joined := strings.Join(phones, "_")
	joined = strings.ReplaceAll(joined, "_eR", "_er")
	joined = strings.ReplaceAll(joined, ErhuaMarker, "_"+ErhuaMarker)

	var b strings.Builder
	for _, piece := range strings.Split(joined, "_") {
		if sym, ok := symbolTable[piece]; ok {
			b.WriteString(sym)
		} else {
			b.WriteString(Unknown)
		}
	}
	return b.String()
}
