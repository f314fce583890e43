// Package g2p 把中英混合文本转换为 Kokoro 模型使用的音素串。
//
// 文本先做数字规范化，再按文字种类切段：汉字段交给中文前端
// （旧版模式下逐字转 IPA），中文标点转成半角，其余部分按词交给英文音素化器。
package g2p

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/iabetor/kokoro-g2p/internal/english"
	"github.com/iabetor/kokoro-g2p/internal/logger"
	"github.com/iabetor/kokoro-g2p/internal/normalize"
	"github.com/iabetor/kokoro-g2p/internal/pinyin"
	"github.com/iabetor/kokoro-g2p/internal/segment"
)

// Mode 选择中文部分的输出格式。
type Mode int

const (
	// ModeCurrent 输出注音风格符号，对应 v1.1 模型。
	ModeCurrent Mode = iota
	// ModeLegacy 输出带声调箭头的 IPA，对应 v1.0 模型。
	ModeLegacy
)

var modeNames = [...]string{
	"current",
	"legacy",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode 解析配置中的模式名。
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Mode(i), nil
		}
	}
	return ModeCurrent, fmt.Errorf("未知的模式: %q", s)
}

// Frontend 是中文前端，把一段汉字转换为音素串。
type Frontend interface {
	G2P(text string) string
}

// Converter 是中英混合文本的音素转换器。创建后只读，可以并发使用。
type Converter struct {
	fe   Frontend
	seg  segment.Segmenter
	en   english.Phonemizer
	mode Mode
	log  *zap.Logger
}

// Option 配置 Converter。
type Option func(*Converter)

// WithMode 设置输出模式，默认 ModeCurrent。
func WithMode(m Mode) Option {
	return func(c *Converter) { c.mode = m }
}

// WithLogger 替换默认 logger。
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) { c.log = l }
}

// New 创建 Converter。seg 只在旧版模式下用于分词。
func New(fe Frontend, seg segment.Segmenter, en english.Phonemizer, opts ...Option) *Converter {
	c := &Converter{
		fe:   fe,
		seg:  seg,
		en:   en,
		mode: ModeCurrent,
		log:  logger.Named("g2p"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode 返回输出模式。
func (c *Converter) Mode() Mode {
	return c.mode
}

// Convert 把文本转换为音素串。任何一段失败都返回 *Error，不返回部分结果。
func (c *Converter) Convert(text string) (string, error) {
	text = normalize.Numbers(text)

	out := make([]byte, 0, len(text)*2)
	for _, r := range splitRuns(text) {
		var err error
		switch r.kind {
		case runHan:
			out, err = c.appendHan(out, normalize.HalfWidth(r.text))
		case runPunct:
			out = bytes.TrimRightFunc(out, unicode.IsSpace)
			out = append(out, normalize.HalfWidth(r.text)...)
			out = append(out, ' ')
		default:
			out, err = c.appendOther(out, r.text)
		}
		if err != nil {
			return "", err
		}
	}

	result := strings.TrimSpace(string(out))
	c.log.Debug("convert", zap.String("mode", c.mode.String()), zap.String("text", text), zap.String("phonemes", result))
	return result, nil
}

// appendHan 转换一段汉字。
func (c *Converter) appendHan(out []byte, text string) ([]byte, error) {
	if c.mode == ModeLegacy {
		return c.appendLegacy(out, text)
	}
	if len(out) > 0 && out[len(out)-1] != ' ' {
		out = append(out, ' ')
	}
	out = append(out, c.fe.G2P(text)...)
	return append(out, ' '), nil
}

// appendLegacy 分词后逐字转换为 IPA，词与词之间用空格分隔。
// 没有读音的字符原样保留。
func (c *Converter) appendLegacy(out []byte, text string) ([]byte, error) {
	for _, word := range c.seg.Cut(text) {
		for _, r := range word {
			syl, ok := pinyin.LookupRune(r)
			if !ok {
				out = utf8.AppendRune(out, r)
				continue
			}
			ipa, err := pinyin.LegacyIPA(syl.String())
			if err != nil {
				return nil, &Error{Stage: StageLegacy, Datum: syl.String(), Err: err}
			}
			out = append(out, ipa...)
		}
		out = append(out, ' ')
	}
	return out, nil
}

// appendOther 处理非中文段：英文单词交给英文音素化器，其余原样保留，
// 连续空格合并为一个。
func (c *Converter) appendOther(out []byte, text string) ([]byte, error) {
	for _, m := range wordPattern.FindAllString(text, -1) {
		first, _ := utf8.DecodeRuneInString(m)
		switch {
		case isWordStart(first):
			// 句末标点和英文单词之间补一个空格。
			trimmed := bytes.TrimRightFunc(out, unicode.IsSpace)
			if n := len(trimmed); n > 0 && strings.IndexByte(".,!?", trimmed[n-1]) >= 0 && out[len(out)-1] != ' ' {
				out = append(out, ' ')
			}
			ph, err := c.en.Phonemize(m)
			if err != nil {
				return nil, &Error{Stage: StageEnglish, Datum: m, Err: err}
			}
			out = append(out, ph...)
		case first == ' ' && len(out) > 0 && out[len(out)-1] == ' ':
			out = append(out, strings.TrimLeftFunc(m, unicode.IsSpace)...)
		default:
			out = append(out, m...)
		}
	}
	return out, nil
}

// isWordStart 报告 r 是否可以作为英文单词的开头。
func isWordStart(r rune) bool {
	return r < utf8.RuneSelf && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '\'' || r == '_' || r == '-')
}
