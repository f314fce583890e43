package g2p

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iabetor/kokoro-g2p/internal/english"
	"github.com/iabetor/kokoro-g2p/internal/frontend"
	"github.com/iabetor/kokoro-g2p/internal/segment"
)

type stubPhonemizer map[string]string

func (s stubPhonemizer) Phonemize(word string) (string, error) {
	if p, ok := s[word]; ok {
		return p, nil
	}
	return "", english.ErrNoPhonemes
}

var testEnglish = stubPhonemizer{
	"hello": "həlˈoʊ",
	"world": "wˈɝld",
	"Hi":    "haɪ",
	"OK":    "oʊkeɪ",
}

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	seg := segment.NewStatic(map[string]string{"你好": "l", "世界": "n"})
	fe, err := frontend.New(seg)
	if err != nil {
		t.Fatalf("frontend.New: %v", err)
	}
	return New(fe, seg, testEnglish, opts...)
}

func TestConvert(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		input string
		want  string
	}{
		{"你好世界", "ㄋㄧ2ㄏㄠ3/ㄕ十4ㄐㄝ4"},
		{"你好，世界。", "ㄋㄧ2ㄏㄠ3, ㄕ十4ㄐㄝ4."},
		{"你好hello世界", "ㄋㄧ2ㄏㄠ3 həlˈoʊ ㄕ十4ㄐㄝ4"},
		{"你好  world", "ㄋㄧ2ㄏㄠ3 wˈɝld"},
		{"Hi.OK", "haɪ. oʊkeɪ"},
		{"hello, world!", "həlˈoʊ, wˈɝld!"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := c.Convert(tt.input)
		if err != nil {
			t.Fatalf("Convert(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestConvert_Legacy(t *testing.T) {
	c := newTestConverter(t, WithMode(ModeLegacy))

	got, err := c.Convert("你好世界")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if want := "ni↓xau↓ ʂɻ↘ʨje↘"; got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

func TestConvert_EnglishError(t *testing.T) {
	c := newTestConverter(t)

	_, err := c.Convert("你好 xyzzy")
	if !errors.Is(err, english.ErrNoPhonemes) {
		t.Fatalf("expected ErrNoPhonemes, got %v", err)
	}
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Stage != StageEnglish || gerr.Datum != "xyzzy" {
		t.Errorf("Error = %+v", gerr)
	}
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{"current": ModeCurrent, "Legacy": ModeLegacy, " legacy ": ModeLegacy} {
		got, err := ParseMode(s)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParseMode("v2"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if ModeLegacy.String() != "legacy" || Mode(9).String() != "unknown" {
		t.Error("Mode.String mismatch")
	}
}

func TestSplitRuns(t *testing.T) {
	got := splitRuns("你好，world！ok")
	want := []run{
		{runHan, "你好"},
		{runPunct, "，"},
		{runOther, "world"},
		{runPunct, "！"},
		{runOther, "ok"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitRuns = %v, want %v", got, want)
	}
}
