// Package numeral 在阿拉伯数字和中文数字读法之间转换。
//
// 读法采用繁体小写、低数计数法：每升一个单位乘以十，
// 即 十、百、千、萬、億(10^5)、兆(10^6) …… 與口語讀數一致。
// 解析则按万进法，供变调规则判断一个词是否是数词。
package numeral

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrOutOfRange 数值超出可读范围。
	ErrOutOfRange = errors.New("numeral: 数值超出范围")
	// ErrInvalid 不是合法的中文数字。
	ErrInvalid = errors.New("numeral: 不是中文数字")
)

var digitChars = []rune("零一二三四五六七八九")

// lowUnits 为低数计数法的单位，下标 i 表示 10^i。
var lowUnits = []string{"", "十", "百", "千", "萬", "億", "兆", "京", "垓", "秭", "穰", "溝", "澗", "正", "載"}

// maxLow 为低数法能表示的上界（不含）。
var maxLow = uint64(math.Pow10(len(lowUnits)))

// FormatInt 将整数转为中文读法，例如 12345 -> 一萬二千三百四十五。
func FormatInt(n int64) (string, error) {
	var b strings.Builder
	u := uint64(n)
	if n < 0 {
		b.WriteString("負")
		u = uint64(-(n + 1)) + 1
	}
	s, err := formatUint(u)
	if err != nil {
		return "", err
	}
	b.WriteString(s)
	return b.String(), nil
}

// FormatFloat 将小数转为中文读法，小数部分逐位读出，例如 3.14 -> 三點一四。
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", ErrOutOfRange
	}

	var b strings.Builder
	if f < 0 {
		b.WriteString("負")
		f = -f
	}
	if f >= float64(maxLow) {
		return "", ErrOutOfRange
	}

	text := strconv.FormatFloat(f, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(text, ".")

	n, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		return "", ErrOutOfRange
	}
	s, err := formatUint(n)
	if err != nil {
		return "", err
	}
	b.WriteString(s)

	if fracPart != "" {
		b.WriteString("點")
		for _, c := range fracPart {
			b.WriteRune(digitChars[c-'0'])
		}
	}
	return b.String(), nil
}

func formatUint(n uint64) (string, error) {
	if n >= maxLow {
		return "", ErrOutOfRange
	}
	if n == 0 {
		return string(digitChars[0]), nil
	}

	digits := []byte(strconv.FormatUint(n, 10))
	var b strings.Builder
	pendingZero := false
	for i, d := range digits {
		pos := len(digits) - 1 - i
		if d == '0' {
			pendingZero = b.Len() > 0
			continue
		}
		if pendingZero {
			b.WriteRune(digitChars[0])
			pendingZero = false
		}
		// 十几开头读作“十几”而不是“一十几”
		if !(i == 0 && d == '1' && pos == 1) {
			b.WriteRune(digitChars[d-'0'])
		}
		b.WriteString(lowUnits[pos])
	}
	return b.String(), nil
}

var parseDigits = map[rune]int64{
	'零': 0, '〇': 0,
	'一': 1, '壹': 1,
	'二': 2, '貳': 2, '贰': 2, '两': 2, '兩': 2,
	'三': 3, '參': 3, '叁': 3,
	'四': 4, '肆': 4,
	'五': 5, '伍': 5,
	'六': 6, '陸': 6, '陆': 6,
	'七': 7, '柒': 7,
	'八': 8, '捌': 8,
	'九': 9, '玖': 9,
}

var smallUnits = map[rune]int64{
	'十': 10, '拾': 10,
	'百': 100, '佰': 100,
	'千': 1000, '仟': 1000,
}

var bigUnits = map[rune]int64{
	'万': 1e4, '萬': 1e4,
	'亿': 1e8, '億': 1e8,
}

// Parse 按万进法解析中文数字，结果必须在 int32 范围内。
// 不带单位的数字串（如 一零零）按位解析。
func Parse(s string) (int64, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, ErrInvalid
	}

	if allDigits(runes) {
		var v int64
		for _, r := range runes {
			v = v*10 + parseDigits[r]
			if v > math.MaxInt32 {
				return 0, ErrOutOfRange
			}
		}
		return v, nil
	}

	var total, section, number int64
	hasNumber := false
	for _, r := range runes {
		if d, ok := parseDigits[r]; ok {
			number = d
			hasNumber = true
			continue
		}
		if u, ok := smallUnits[r]; ok {
			if !hasNumber {
				// “十五”省略了前面的“一”
				number = 1
			}
			section += number * u
			number, hasNumber = 0, false
			continue
		}
		if u, ok := bigUnits[r]; ok {
			section += number
			number, hasNumber = 0, false
			if section == 0 && total == 0 {
				return 0, ErrInvalid
			}
			if u == 1e8 {
				total = (total + section) * u
			} else {
				total += section * u
			}
			section = 0
			if total > math.MaxInt32 {
				return 0, ErrOutOfRange
			}
			continue
		}
		return 0, ErrInvalid
	}

	v := total + section + number
	if v > math.MaxInt32 {
		return 0, ErrOutOfRange
	}
	return v, nil
}

// IsNumeral 报告 s 是否能解析为中文数字。
func IsNumeral(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if _, ok := parseDigits[r]; !ok {
			return false
		}
	}
	return true
}
