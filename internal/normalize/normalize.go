// Package normalize 在切分文字之前把阿拉伯数字读成中文，并把全角标点换成半角。
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iabetor/kokoro-g2p/internal/numeral"
)

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// Numbers 把文本中的每个整数或小数改写成中文读法。
// 先按浮点数解析，失败再按整数解析；都失败或超出范围时保留原文。
func Numbers(text string) string {
	return numberPattern.ReplaceAllStringFunc(text, func(m string) string {
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			if s, err := numeral.FormatFloat(f); err == nil {
				return s
			}
			return m
		}
		if n, err := strconv.ParseInt(m, 10, 64); err == nil {
			if s, err := numeral.FormatInt(n); err == nil {
				return s
			}
		}
		return m
	})
}

var halfWidth = strings.NewReplacer(
	"«", "“", "《", "“",
	"»", "”", "》", "”",
	"（", "(", "）", ")",
	"、", ",", "，", ",",
	"。", ".",
	"！", "!",
	"：", ":",
	"；", ";",
	"？", "?",
)

// HalfWidth 把全角标点换成半角，书名号换成弯引号，其余字符不变。
func HalfWidth(text string) string {
	return halfWidth.Replace(text)
}
