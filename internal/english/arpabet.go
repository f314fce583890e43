package english

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPhone 表示遇到了不认识的 ARPAbet 音素。
var ErrUnknownPhone = errors.New("english: 未知的 ARPAbet 音素")

// arpabetIPA 是 CMU 词典 39 个音素到 IPA 的映射。
var arpabetIPA = map[string]string{
	"AA": "ɑ", "AE": "æ", "AH": "ʌ", "AO": "ɔ", "AW": "aʊ", "AY": "aɪ",
	"EH": "ɛ", "ER": "ɝ", "EY": "eɪ", "IH": "ɪ", "IY": "i", "OW": "oʊ",
	"OY": "ɔɪ", "UH": "ʊ", "UW": "u",

	"B": "b", "CH": "ʧ", "D": "d", "DH": "ð", "F": "f", "G": "ɡ", "HH": "h",
	"JH": "ʤ", "K": "k", "L": "l", "M": "m", "N": "n", "NG": "ŋ", "P": "p",
	"R": "ɹ", "S": "s", "SH": "ʃ", "T": "t", "TH": "θ", "V": "v", "W": "w",
	"Y": "j", "Z": "z", "ZH": "ʒ",
}

// 非重读时音质不同的元音。
var unstressedIPA = map[string]string{
	"AH": "ə",
	"ER": "ɚ",
}

// ARPAbetToIPA 把一串 ARPAbet 音素转换为 IPA。
// 主重音 1 和次重音 2 分别在元音前加 ˈ 和 ˌ。
func ARPAbetToIPA(phones []string) (string, error) {
	var b strings.Builder
	for _, p := range phones {
		base, stress := p, byte(0)
		if n := len(p); n > 1 && p[n-1] >= '0' && p[n-1] <= '2' {
			base, stress = p[:n-1], p[n-1]
		}

		ipa, ok := arpabetIPA[base]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownPhone, p)
		}
		switch stress {
		case '0':
			if u, ok := unstressedIPA[base]; ok {
				ipa = u
			}
		case '1':
			b.WriteString("ˈ")
		case '2':
			b.WriteString("ˌ")
		}
		b.WriteString(ipa)
	}
	return b.String(), nil
}
