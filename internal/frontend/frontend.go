// Package frontend 是中文文本的音素前端：分词、合并、变调、儿化，
// 最后输出注音风格的音素串。
package frontend

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/iabetor/kokoro-g2p/internal/logger"
	"github.com/iabetor/kokoro-g2p/internal/pinyin"
	"github.com/iabetor/kokoro-g2p/internal/segment"
)

// wordSeparator 插在相邻的两个汉语词之间。
const wordSeparator = "/"

// Frontend 把一段中文转换为音素串。创建后只读，可以并发使用。
type Frontend struct {
	seg     segment.Segmenter
	phrases map[string][]pinyin.Syllable
	erhua   bool
	log     *zap.Logger
}

// Option 配置 Frontend。
type Option func(*Frontend)

// WithErhua 设置是否处理儿化，默认开启。
func WithErhua(on bool) Option {
	return func(f *Frontend) { f.erhua = on }
}

// WithPhrases 追加词组读音，覆盖内置表中的同名词。
func WithPhrases(phrases map[string][]pinyin.Syllable) Option {
	return func(f *Frontend) {
		for w, syls := range phrases {
			f.phrases[w] = syls
		}
	}
}

// WithLogger 替换默认 logger。
func WithLogger(l *zap.Logger) Option {
	return func(f *Frontend) { f.log = l }
}

// New 创建 Frontend，并把所有词组注册到分词器，保证它们不被切开。
func New(seg segment.Segmenter, opts ...Option) (*Frontend, error) {
	builtin := pinyin.Phrases()
	f := &Frontend{
		seg:     seg,
		phrases: make(map[string][]pinyin.Syllable, len(builtin)),
		erhua:   true,
		log:     logger.Named("frontend"),
	}
	for w, syls := range builtin {
		f.phrases[w] = syls
	}
	for _, opt := range opts {
		opt(f)
	}

	for w := range f.phrases {
		if err := seg.AddWord(w, segment.TagPlaceholder); err != nil {
			return nil, fmt.Errorf("注册词组 %q 失败: %w", w, err)
		}
	}
	f.log.Debug("前端已创建", zap.Int("phrases", len(f.phrases)), zap.Bool("erhua", f.erhua))
	return f, nil
}

// phoneToken 是输出中的一个词：音素和其后的空白。
type phoneToken struct {
	tag        string
	phonemes   string
	whitespace string
}

// G2P 把中文文本转换为音素串。相邻汉语词之间用 / 分隔，
// 标点原样保留，无法转换的词输出 ❓。
func (f *Frontend) G2P(text string) string {
	tokens := PreMerge(f.seg.Tag(text))

	out := make([]phoneToken, 0, len(tokens))
	for _, tk := range tokens {
		tag := tk.Tag
		switch {
		case tag == segment.TagPlaceholder && allHan(tk.Text):
			// 自定义词组被注册为 x，这里改成大写使其参与转换。
			tag = "X"
		case tag != segment.TagPlaceholder && isPunctuation(tk.Text):
			tag = segment.TagPlaceholder
		}

		if segment.Excluded(tag) {
			if strings.TrimSpace(tk.Text) == "" {
				if n := len(out); n > 0 {
					out[n-1].whitespace += tk.Text
				}
				continue
			}
			pt := phoneToken{tag: tag}
			if tag == segment.TagPlaceholder && isPunctuation(tk.Text) {
				pt.phonemes = tk.Text
			}
			out = append(out, pt)
			continue
		}

		if n := len(out); n > 0 && !segment.Excluded(out[n-1].tag) && out[n-1].whitespace == "" {
			out[n-1].whitespace = wordSeparator
		}

		syls := f.fineSyllables(tk.Text)
		f.ModifyTone(tk.Text, tk.Tag, syls)
		if f.erhua {
			MergeErhua(tk.Text, tk.Tag, syls)
		}
		out = append(out, phoneToken{tag: tag, phonemes: pinyin.ToSymbols(syls)})
	}

	var b strings.Builder
	for _, pt := range out {
		if pt.phonemes == "" {
			b.WriteString(pinyin.Unknown)
		} else {
			b.WriteString(pt.phonemes)
		}
		b.WriteString(pt.whitespace)
	}

	f.log.Debug("g2p", zap.String("text", text), zap.Int("tokens", len(out)))
	return b.String()
}

// fineSyllables 取词的读音，词组表优先，并把 zi/ci/si 与 zhi/chi/shi/ri
// 的韵母改写成舌尖元音 ii 与 iii。返回的切片可以被调用方修改。
func (f *Frontend) fineSyllables(word string) []pinyin.Syllable {
	var syls []pinyin.Syllable
	if p, ok := f.phrases[word]; ok {
		syls = append([]pinyin.Syllable(nil), p...)
	} else {
		syls = pinyin.Lookup(word)
	}

	for i, s := range syls {
		switch {
		case strings.HasPrefix(s.Text, "zi"), strings.HasPrefix(s.Text, "ci"), strings.HasPrefix(s.Text, "si"):
			syls[i].Text += "i"
		case strings.HasPrefix(s.Text, "zhi"), strings.HasPrefix(s.Text, "chi"),
			strings.HasPrefix(s.Text, "shi"), strings.HasPrefix(s.Text, "ri"):
			syls[i].Text += "ii"
		}
	}
	return syls
}

// allHan 报告 s 是否非空且全部由基本区汉字组成。
func allHan(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x4E00 || r > 0x9FFF {
			return false
		}
	}
	return true
}
