package pinyin

// Final 是韵母。ü 行韵母的拼写统一用 v 表示，ii/iii 是 z/c/s 和 zh/ch/sh/r
// 之后的舌尖元音。
type Final uint8

const (
	FinalUnknown Final = iota
	FinalA
	FinalO
	FinalE
	FinalEh
	FinalEr
	FinalAi
	FinalEi
	FinalAo
	FinalOu
	FinalAn
	FinalEn
	FinalAng
	FinalEng
	FinalOng
	FinalI
	FinalIa
	FinalIe
	FinalIao
	FinalIou
	FinalIan
	FinalIn
	FinalIang
	FinalIng
	FinalIong
	FinalU
	FinalUa
	FinalUo
	FinalUai
	FinalUei
	FinalUan
	FinalUen
	FinalUang
	FinalUeng
	FinalV
	FinalVe
	FinalVan
	FinalVn
	FinalIi
	FinalIii
)

type finalInfo struct {
	spelling string
	legacy   string // 旧版解析器使用的带 ü 拼写
	symbol   string
	ipa      [][]string // 为空表示旧版表中没有这个韵母
}

// 韵母 IPA 里的 0 是声调占位符。
var finalTable = [...]finalInfo{
	FinalUnknown: {},
	FinalA:       {"a", "a", "ㄚ", [][]string{{"a0"}}},
	FinalO:       {"o", "o", "ㄛ", [][]string{{"w", "o0"}}},
	FinalE:       {"e", "e", "ㄜ", [][]string{{"ɤ0"}}},
	FinalEh:      {"ê", "ê", "", nil},
	FinalEr:      {"er", "er", "ㄦ", nil},
	FinalAi:      {"ai", "ai", "ㄞ", [][]string{{"ai0"}}},
	FinalEi:      {"ei", "ei", "ㄟ", [][]string{{"ei0"}}},
	FinalAo:      {"ao", "ao", "ㄠ", [][]string{{"au0"}}},
	FinalOu:      {"ou", "ou", "ㄡ", [][]string{{"ou0"}}},
	FinalAn:      {"an", "an", "ㄢ", [][]string{{"a0", "n"}}},
	FinalEn:      {"en", "en", "ㄣ", [][]string{{"ə0", "n"}}},
	FinalAng:     {"ang", "ang", "ㄤ", [][]string{{"a0", "ŋ"}}},
	FinalEng:     {"eng", "eng", "ㄥ", [][]string{{"ə0", "ŋ"}}},
	FinalOng:     {"ong", "ong", "中", [][]string{{"ʊ0", "ŋ"}}},
	FinalI:       {"i", "i", "ㄧ", [][]string{{"i0"}}},
	FinalIa:      {"ia", "ia", "压", [][]string{{"j", "a0"}}},
	FinalIe:      {"ie", "ie", "ㄝ", [][]string{{"j", "e0"}}},
	FinalIao:     {"iao", "iao", "要", [][]string{{"j", "au0"}}},
	FinalIou:     {"iou", "iou", "又", [][]string{{"j", "ou0"}}},
	FinalIan:     {"ian", "ian", "言", [][]string{{"j", "ɛ0", "n"}}},
	FinalIn:      {"in", "in", "阴", [][]string{{"i0", "n"}}},
	FinalIang:    {"iang", "iang", "阳", [][]string{{"j", "a0", "ŋ"}}},
	FinalIng:     {"ing", "ing", "应", [][]string{{"i0", "ŋ"}}},
	FinalIong:    {"iong", "iong", "用", [][]string{{"j", "ʊ0", "ŋ"}}},
	FinalU:       {"u", "u", "ㄨ", [][]string{{"u0"}}},
	FinalUa:      {"ua", "ua", "穵", [][]string{{"w", "a0"}}},
	FinalUo:      {"uo", "uo", "我", [][]string{{"w", "o0"}}},
	FinalUai:     {"uai", "uai", "外", [][]string{{"w", "ai0"}}},
	FinalUei:     {"uei", "uei", "为", [][]string{{"w", "ei0"}}},
	FinalUan:     {"uan", "uan", "万", [][]string{{"w", "a0", "n"}}},
	FinalUen:     {"uen", "uen", "文", [][]string{{"w", "ə0", "n"}}},
	FinalUang:    {"uang", "uang", "王", [][]string{{"w", "a0", "ŋ"}}},
	FinalUeng:    {"ueng", "ueng", "瓮", [][]string{{"w", "ə0", "ŋ"}}},
	FinalV:       {"v", "ü", "ㄩ", [][]string{{"y0"}}},
	FinalVe:      {"ve", "üe", "月", [][]string{{"ɥ", "e0"}}},
	FinalVan:     {"van", "üan", "元", [][]string{{"ɥ", "ɛ0", "n"}}},
	FinalVn:      {"vn", "ün", "云", [][]string{{"y0", "n"}}},
	FinalIi:      {"ii", "ii", "ㄭ", nil},
	FinalIii:     {"iii", "iii", "十", nil},
}

// legacyAliases 是旧版表里保留的缩写韵母。
var legacyAliases = map[string]Final{
	"ui": FinalUei,
	"un": FinalUen,
}

// retroflexI 和 dentalI 是 zh/ch/sh/r、z/c/s 之后 i 的读法。
var (
	retroflexI = [][]string{{"ɻ0"}, {"ʐ0"}}
	dentalI    = [][]string{{"ɹ0"}, {"z0"}}
)

var (
	finalBySpelling = make(map[string]Final)
	finalByLegacy   = make(map[string]Final)
)

func init() {
	for f := FinalA; int(f) < len(finalTable); f++ {
		finalBySpelling[finalTable[f].spelling] = f
		finalByLegacy[finalTable[f].legacy] = f
	}
	for k, f := range legacyAliases {
		finalByLegacy[k] = f
	}
}

// String 返回韵母拼写（ü 行写作 v）。
func (f Final) String() string {
	if int(f) >= len(finalTable) {
		return ""
	}
	return finalTable[f].spelling
}

// Symbol 返回韵母的注音风格符号。
func (f Final) Symbol() string {
	if int(f) >= len(finalTable) {
		return ""
	}
	return finalTable[f].symbol
}

// ParseFinal 将拼写（v 或 ü 写法均可）解析为韵母。
func ParseFinal(s string) (Final, bool) {
	if f, ok := finalBySpelling[s]; ok {
		return f, true
	}
	f, ok := finalByLegacy[s]
	return f, ok
}

// legacyFinalIPA 返回旧版解析器的韵母模板，声母决定是否使用舌尖元音表。
func legacyFinalIPA(ini Initial, final string) ([][]string, error) {
	if final == "i" {
		switch {
		case ini.retroflex():
			return retroflexI, nil
		case ini.dental():
			return dentalI, nil
		}
	}
	f, ok := finalByLegacy[final]
	if !ok || finalTable[f].ipa == nil {
		return nil, &FinalNotFoundError{Final: final}
	}
	return finalTable[f].ipa, nil
}

// validFinals 是零声母还原后允许出现的韵母。
var validFinals = map[string]bool{
	"i": true, "u": true, "ü": true, "a": true, "ia": true, "ua": true, "o": true, "uo": true,
	"e": true, "ie": true, "üe": true, "ai": true, "uai": true, "ei": true, "uei": true,
	"ao": true, "iao": true, "ou": true, "iou": true, "an": true, "ian": true, "uan": true,
	"üan": true, "en": true, "in": true, "uen": true, "ün": true, "ang": true, "iang": true,
	"uang": true, "eng": true, "ing": true, "ueng": true, "ong": true, "iong": true,
	"er": true, "ê": true,
}
