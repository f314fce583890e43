package english

import "strings"

// letterNames 是字母和数字的读音。
var letterNames = map[rune]string{
	'a': "eɪ", 'b': "bi", 'c': "si", 'd': "di", 'e': "i", 'f': "ɛf", 'g': "ʤi",
	'h': "eɪʧ", 'i': "aɪ", 'j': "ʤeɪ", 'k': "keɪ", 'l': "ɛl", 'm': "ɛm", 'n': "ɛn",
	'o': "oʊ", 'p': "pi", 'q': "kju", 'r': "ɑɹ", 's': "ɛs", 't': "ti", 'u': "ju",
	'v': "vi", 'w': "dʌbəlju", 'x': "ɛks", 'y': "waɪ", 'z': "zi",

	'0': "ziɹoʊ", '1': "wʌn", '2': "tu", '3': "θɹi", '4': "fɔɹ",
	'5': "faɪv", '6': "sɪks", '7': "sɛvən", '8': "eɪt", '9': "naɪn",
}

// Letters 逐个拼读 word 中的字母和数字，其他字符忽略。
func Letters(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if name, ok := letterNames[r]; ok {
			b.WriteString(name)
		}
	}
	return b.String()
}
