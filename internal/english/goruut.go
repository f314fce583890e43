package english

import (
	"fmt"
	"strings"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"
)

// goruutLanguage 是 goruut 中英语模型的名字。
const goruutLanguage = "English"

// Goruut 使用 goruut 的神经网络模型音素化，能处理词典外的单词。
type Goruut struct {
	p *lib.Phonemizer
}

// NewGoruut 创建 goruut 音素化器，模型在首次调用时加载。
func NewGoruut() *Goruut {
	return &Goruut{p: lib.NewPhonemizer(nil)}
}

// Phonemize 实现 Phonemizer。
func (g *Goruut) Phonemize(word string) (string, error) {
	resp := g.p.Sentence(requests.PhonemizeSentence{
		Language: goruutLanguage,
		Sentence: word,
	})

	var b strings.Builder
	for _, w := range resp.Words {
		b.WriteString(w.Phonetic)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoPhonemes, word)
	}
	return b.String(), nil
}
