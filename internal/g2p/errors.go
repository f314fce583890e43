package g2p

import "fmt"

// 出错的处理阶段。
const (
	// StageLegacy 是旧版模式下单个汉字转 IPA 的阶段。
	StageLegacy = "zh-legacy"
	// StageEnglish 是英文单词音素化的阶段。
	StageEnglish = "en"
)

// Error 记录转换失败的阶段和出错的数据。
// 可以用 errors.Is 检查底层的 pinyin 或 english 错误。
type Error struct {
	Stage string
	Datum string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("g2p: %s 阶段处理 %q 失败: %v", e.Stage, e.Datum, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
