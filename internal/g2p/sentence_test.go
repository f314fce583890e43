package g2p

import (
	"reflect"
	"testing"
)

func TestExtractSentence(t *testing.T) {
	tests := []struct {
		input     string
		sentence  string
		remainder string
	}{
		{"你好。世界", "你好。", "世界"},
		{"你好！世界", "你好！", "世界"},
		{"你好；世界", "你好；", "世界"},
		{"Hello. World", "Hello.", " World"},
		{"line1\nline2", "line1\n", "line2"},
		{"。", "。", ""},
	}

	for _, tt := range tests {
		sentence, remainder, found := extractSentence(tt.input)
		if !found {
			t.Errorf("extractSentence(%q): expected found=true", tt.input)
			continue
		}
		if sentence != tt.sentence {
			t.Errorf("extractSentence(%q): sentence = %q, want %q", tt.input, sentence, tt.sentence)
		}
		if remainder != tt.remainder {
			t.Errorf("extractSentence(%q): remainder = %q, want %q", tt.input, remainder, tt.remainder)
		}
	}

	if _, remainder, found := extractSentence("no sentence ending here"); found || remainder != "no sentence ending here" {
		t.Errorf("extractSentence without enders: found=%v remainder=%q", found, remainder)
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		input    string
		maxRunes int
		want     []string
	}{
		{"第一句。第二句！", 5, []string{"第一句。", "第二句！"}},
		{"第一句。第二句！", 100, []string{"第一句。第二句！"}},
		{"First. Second. Third", 100, []string{"First. Second. Third"}},
		{"很长很长的一句话没有标点", 3, []string{"很长很长的一句话没有标点"}},
		{"  ", 10, nil},
	}

	for _, tt := range tests {
		if got := Sentences(tt.input, tt.maxRunes); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Sentences(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
		}
	}
}

func TestConvertSentences(t *testing.T) {
	c := newTestConverter(t)

	got, err := c.ConvertSentences("你好。世界。", 3)
	if err != nil {
		t.Fatalf("ConvertSentences: %v", err)
	}
	want := []string{"ㄋㄧ2ㄏㄠ3.", "ㄕ十4ㄐㄝ4."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConvertSentences = %q, want %q", got, want)
	}
}
