package g2p

import "regexp"

// cjkPunctuation 是作为整段处理的中文标点和全角空格。
const cjkPunctuation = "，。：·？、！《》（）【】〖〗〔〕“”‘’〈〉…—　"

// runPattern 把文本切成三种段：汉字、中文标点、其余字符，三者互不重叠且覆盖全文。
var runPattern = regexp.MustCompile(
	`([\x{4E00}-\x{9FFF}]+)|([` + cjkPunctuation + `]+)|([^\x{4E00}-\x{9FFF}` + cjkPunctuation + `]+)`)

// wordPattern 把非中文段切成词和词间隔。
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}\p{Pc}]+|[^\p{L}\p{M}\p{N}\p{Pc}]+`)

type runKind int

const (
	runHan runKind = iota
	runPunct
	runOther
)

type run struct {
	kind runKind
	text string
}

// splitRuns 按文字种类切分文本。
func splitRuns(text string) []run {
	matches := runPattern.FindAllStringSubmatchIndex(text, -1)
	runs := make([]run, 0, len(matches))
	for _, m := range matches {
		switch {
		case m[2] >= 0:
			runs = append(runs, run{runHan, text[m[2]:m[3]]})
		case m[4] >= 0:
			runs = append(runs, run{runPunct, text[m[4]:m[5]]})
		default:
			runs = append(runs, run{runOther, text[m[6]:m[7]]})
		}
	}
	return runs
}
