package pinyin

import (
	"errors"
	"fmt"
)

var (
	// ErrFinalNotFound 韵母表中没有对应条目，*FinalNotFoundError 与之匹配。
	ErrFinalNotFound = errors.New("pinyin: 未找到韵母")
	// ErrEmptyData 音节没有任何候选读音。
	ErrEmptyData = errors.New("pinyin: 候选读音为空")
	// ErrStrayMark 声调折叠后仍残留组合符号。
	ErrStrayMark = errors.New("pinyin: 残留组合符号")
)

// FinalNotFoundError 记录找不到的韵母拼写。
type FinalNotFoundError struct {
	Final string
}

func (e *FinalNotFoundError) Error() string {
	return fmt.Sprintf("pinyin: 未找到韵母 %q", e.Final)
}

// Is 让 errors.Is(err, ErrFinalNotFound) 成立。
func (e *FinalNotFoundError) Is(target error) bool {
	return target == ErrFinalNotFound
}
