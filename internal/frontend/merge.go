package frontend

import (
	"unicode/utf8"

	"github.com/iabetor/kokoro-g2p/internal/pinyin"
	"github.com/iabetor/kokoro-g2p/internal/segment"
)

const (
	bu = "不"
	yi = "一"
	er = "儿"
)

// PreMerge 在变调之前按固定顺序合并分词结果：
// 不、一、叠词、两种三声连读、儿。
func PreMerge(tokens []segment.Token) []segment.Token {
	tokens = MergeBu(tokens)
	tokens = MergeYi(tokens)
	tokens = MergeReduplication(tokens)
	tokens = MergeThreeTones(tokens)
	tokens = MergeThreeTonesBoundary(tokens)
	return MergeEr(tokens)
}

// MergeBu 把单独的“不”并入后一个词，词性取后一个词的。
func MergeBu(tokens []segment.Token) []segment.Token {
	out := make([]segment.Token, 0, len(tokens))
	for _, tk := range tokens {
		if n := len(out); n > 0 && out[n-1].Text == bu && !segment.Excluded(tk.Tag) {
			out[n-1] = segment.Token{Text: bu + tk.Text, Tag: tk.Tag}
			continue
		}
		out = append(out, tk)
	}
	return out
}

// MergeYi 处理“一”：先把“听 一 听”这类动词重叠合成一个词，
// 再把单独的“一”和后一个词合并，合并后保留“一”的词性。
func MergeYi(tokens []segment.Token) []segment.Token {
	out := make([]segment.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tk := tokens[i]
		if n := len(out); n > 0 && tk.Text == yi && i+1 < len(tokens) {
			last, next := out[n-1], tokens[i+1]
			if last.Text == next.Text && last.Tag == segment.TagVerb && !segment.Excluded(next.Tag) {
				out[n-1].Text = last.Text + yi + next.Text
				i++
				continue
			}
		}
		out = append(out, tk)
	}

	merged := make([]segment.Token, 0, len(out))
	for _, tk := range out {
		if n := len(merged); n > 0 && merged[n-1].Text == yi && !segment.Excluded(tk.Tag) {
			merged[n-1].Text += tk.Text
			continue
		}
		merged = append(merged, tk)
	}
	return merged
}

// MergeReduplication 合并相邻的相同词，例如“谢谢 谢谢”。
func MergeReduplication(tokens []segment.Token) []segment.Token {
	out := make([]segment.Token, 0, len(tokens))
	for _, tk := range tokens {
		if n := len(out); n > 0 && out[n-1].Text == tk.Text && !segment.Excluded(tk.Tag) {
			out[n-1].Text += tk.Text
			continue
		}
		out = append(out, tk)
	}
	return out
}

// MergeThreeTones 合并两个全部是三声的相邻词，例如“小 美好”。
func MergeThreeTones(tokens []segment.Token) []segment.Token {
	return mergeThreeTones(tokens, func(left, right []pinyin.Syllable) bool {
		return allTone3(left) && allTone3(right)
	})
}

// MergeThreeTonesBoundary 合并交界处两个音节都是三声的相邻词，例如“风景 好”。
func MergeThreeTonesBoundary(tokens []segment.Token) []segment.Token {
	return mergeThreeTones(tokens, func(left, right []pinyin.Syllable) bool {
		return len(left) > 0 && len(right) > 0 &&
			left[len(left)-1].Tone == pinyin.Tone3 && right[0].Tone == pinyin.Tone3
	})
}

// mergeThreeTones 是两种三声合并的公共部分。合并后的总字数不超过 3，
// 叠词不参与，刚被合并过的词不再作为左侧参与下一次合并。
// 占位和英文词的读音记为空，规则不会对它们成立。
func mergeThreeTones(tokens []segment.Token, rule func(left, right []pinyin.Syllable) bool) []segment.Token {
	syls := make([][]pinyin.Syllable, len(tokens))
	for i, tk := range tokens {
		if !segment.Excluded(tk.Tag) {
			syls[i] = pinyin.Lookup(tk.Text)
		}
	}

	merged := make([]bool, len(tokens))
	out := make([]segment.Token, 0, len(tokens))
	for i, tk := range tokens {
		if i > 0 && !segment.Excluded(tk.Tag) && !merged[i-1] &&
			rule(syls[i-1], syls[i]) &&
			!isReduplication(tokens[i-1].Text) &&
			utf8.RuneCountInString(tokens[i-1].Text)+utf8.RuneCountInString(tk.Text) <= 3 {
			out[len(out)-1].Text += tk.Text
			merged[i] = true
			continue
		}
		out = append(out, tk)
	}
	return out
}

// MergeEr 把单独的“儿”并入前一个词。
func MergeEr(tokens []segment.Token) []segment.Token {
	out := make([]segment.Token, 0, len(tokens))
	for _, tk := range tokens {
		if n := len(out); n > 0 && tk.Text == er && !segment.Excluded(out[n-1].Tag) {
			out[n-1].Text += tk.Text
			continue
		}
		out = append(out, tk)
	}
	return out
}

// isReduplication 报告 word 是否是两个相同的字。
func isReduplication(word string) bool {
	runes := []rune(word)
	return len(runes) == 2 && runes[0] == runes[1]
}

// allTone3 报告音节是否全部为三声，空列表返回 false。
func allTone3(syls []pinyin.Syllable) bool {
	if len(syls) == 0 {
		return false
	}
	for _, s := range syls {
		if s.Tone != pinyin.Tone3 {
			return false
		}
	}
	return true
}
