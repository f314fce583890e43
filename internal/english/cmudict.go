package english

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"

	"github.com/iabetor/kokoro-g2p/internal/logger"
)

// Selector 从一个单词的多个读音中选出一个。candidates 至少有一个元素。
type Selector interface {
	Select(word string, candidates []string) string
}

type firstSelector struct{}

func (firstSelector) Select(_ string, candidates []string) string {
	return candidates[0]
}

// First 总是选择词典中排在最前的读音。
func First() Selector {
	return firstSelector{}
}

type randomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *randomSelector) Select(_ string, candidates []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.Intn(len(candidates))]
}

// Random 用 rng 随机选择读音。rng 只在加锁后使用，可以并发调用。
func Random(rng *rand.Rand) Selector {
	return &randomSelector{rng: rng}
}

// entries 是 小写单词 -> IPA 读音列表。
type entries map[string][]string

// Dictionary 是 CMU 格式的发音词典。后加载的词典覆盖先加载的同名词。
// 加载完成后只读。
type Dictionary struct {
	layers []entries
	sel    Selector
}

// Option 配置 Dictionary。
type Option func(*Dictionary)

// WithSelector 设置多读音的选择策略，默认 First。
func WithSelector(s Selector) Option {
	return func(d *Dictionary) { d.sel = s }
}

// NewDictionary 创建空词典。
func NewDictionary(opts ...Option) *Dictionary {
	d := &Dictionary{sel: First()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ParseDictionary 从 r 读取 CMU 格式词典。
func ParseDictionary(r io.Reader, opts ...Option) (*Dictionary, error) {
	d := NewDictionary(opts...)
	if err := d.Load(r); err != nil {
		return nil, err
	}
	return d, nil
}

//go:embed data/cmudict.dict
var embeddedData []byte

var (
	embeddedOnce    sync.Once
	embeddedEntries entries
	embeddedErr     error
)

// Embedded 返回以内置词典为底的 Dictionary。内置词典只解析一次，
// 之后再 Load 的内容叠加在其上，不影响其他实例。
func Embedded(opts ...Option) (*Dictionary, error) {
	embeddedOnce.Do(func() {
		embeddedEntries, embeddedErr = parseEntries(bytes.NewReader(embeddedData))
		logger.Debugf("[english] 内置词典已加载，共 %d 词", len(embeddedEntries))
	})
	if embeddedErr != nil {
		return nil, fmt.Errorf("解析内置词典失败: %w", embeddedErr)
	}
	d := NewDictionary(opts...)
	d.layers = append(d.layers, embeddedEntries)
	return d, nil
}

// Load 读取 r 中的词条，叠加到已有内容之上。
func (d *Dictionary) Load(r io.Reader) error {
	e, err := parseEntries(r)
	if err != nil {
		return err
	}
	d.layers = append(d.layers, e)
	return nil
}

// Len 返回不重复的词数。
func (d *Dictionary) Len() int {
	seen := make(map[string]struct{})
	for _, layer := range d.layers {
		for w := range layer {
			seen[w] = struct{}{}
		}
	}
	return len(seen)
}

// Lookup 返回单词的全部读音，大小写不敏感。
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	key := strings.ToLower(word)
	for i := len(d.layers) - 1; i >= 0; i-- {
		if cands, ok := d.layers[i][key]; ok {
			return cands, true
		}
	}
	return nil, false
}

// Phonemize 实现 Phonemizer。词典中没有的词逐字母拼读，
// 词条存在但没有读音时原样返回。
func (d *Dictionary) Phonemize(word string) (string, error) {
	cands, ok := d.Lookup(word)
	if !ok {
		if spelled := Letters(word); spelled != "" {
			return spelled, nil
		}
		return word, nil
	}
	if len(cands) == 0 {
		return word, nil
	}
	return d.sel.Select(word, cands), nil
}

// parseEntries 解析 CMU 格式："WORD  P1 P2"，变体写作 WORD(2)，;;; 开头为注释。
// 只有单词没有音素的行记为没有读音的词条。
func parseEntries(r io.Reader) (entries, error) {
	e := make(entries)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, ";;;") {
			continue
		}

		fields := strings.Fields(text)
		word := strings.ToLower(fields[0])
		if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
			word = word[:i]
		}
		if len(fields) == 1 {
			if _, ok := e[word]; !ok {
				e[word] = nil
			}
			continue
		}

		ipa, err := ARPAbetToIPA(fields[1:])
		if err != nil {
			logger.Warnf("[english] 词典第 %d 行无效，已跳过: %v", line, err)
			continue
		}
		e[word] = append(e[word], ipa)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取词典失败: %w", err)
	}
	return e, nil
}
