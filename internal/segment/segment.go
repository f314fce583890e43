// Package segment 定义分词器边界：分词加词性标注、最细粒度切分以及自定义词注册。
package segment

// 词性标签中流水线关心的几个。
const (
	// TagPlaceholder 是非汉语的占位标签，标点和空白也使用它。
	TagPlaceholder = "x"
	// TagEnglish 是英文或数字串的标签。
	TagEnglish = "eng"
	// TagVerb 是动词标签。
	TagVerb = "v"
)

// Token 是分词器输出的一个词及其词性。
type Token struct {
	Text string
	Tag  string
}

// Segmenter 是外部分词器需要提供的能力。
// 实现在注册完自定义词之后应当可以被并发调用。
type Segmenter interface {
	// Tag 对整句分词并标注词性。
	Tag(text string) []Token
	// Cut 只分词，不标注词性。
	Cut(text string) []string
	// CutForSearch 返回搜索引擎模式的最细切分，用来拆分复合词。
	CutForSearch(word string) []string
	// AddWord 把 word 注册为不可再分的词，tag 为其词性。
	AddWord(word, tag string) error
}

// Excluded 报告 tag 是否是占位或英文标签，这类词不参与合并和变调。
func Excluded(tag string) bool {
	return tag == TagPlaceholder || tag == TagEnglish
}
