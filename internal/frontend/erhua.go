package frontend

import "github.com/iabetor/kokoro-g2p/internal/pinyin"

// MergeErhua 把词尾的“儿”并入前一个音节，音节文本加上儿化标记 R。
// 形容词、简称和人名不儿化，notErhua 中的词也不儿化，mustErhua 除外。
func MergeErhua(word, tag string, syls []pinyin.Syllable) {
	n := len(syls)
	if n == 0 {
		return
	}
	runes := []rune(word)
	last := n - 1

	if last < len(runes) && runes[last] == '儿' && syls[last].Text == "er" && syls[last].Tone == pinyin.Tone1 {
		syls[last].Tone = pinyin.Tone2
	}

	if !inSet(mustErhua, word) && (inSet(notErhua, word) || tag == "a" || tag == "j" || tag == "nr") {
		return
	}
	if n != len(runes) || n < 2 {
		return
	}

	s := syls[last]
	if runes[last] == '儿' && s.Text == "er" && (s.Tone == pinyin.Tone2 || s.Tone == pinyin.Tone5) &&
		!inSet(notErhua, string(runes[n-2:])) {
		syls[last].Text += pinyin.ErhuaMarker
	}
}
