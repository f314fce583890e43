package segment

import (
	"reflect"
	"strings"
	"testing"
)

func TestStatic_Tag(t *testing.T) {
	s := NewStatic(map[string]string{
		"你好": "l",
		"世界": "n",
		"好看": "v",
		"不":  "d",
	})

	tests := []struct {
		input string
		want  []Token
	}{
		{"你好世界", []Token{{"你好", "l"}, {"世界", "n"}}},
		{"不好看", []Token{{"不", "d"}, {"好看", "v"}}},
		{"你好 abc12,", []Token{{"你好", "l"}, {" ", "x"}, {"abc12", "eng"}, {",", "x"}}},
		{"天", []Token{{"天", "x"}}},
	}

	for _, tt := range tests {
		got := s.Tag(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tag(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStatic_AddWord(t *testing.T) {
	s := NewStatic(nil)
	if got := s.Cut("还款"); len(got) != 2 {
		t.Fatalf("Cut before AddWord = %v", got)
	}
	if err := s.AddWord("还款", TagPlaceholder); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	if got := s.Cut("借还款"); !reflect.DeepEqual(got, []string{"借", "还款"}) {
		t.Errorf("Cut after AddWord = %v", got)
	}
}

func TestStatic_CutForSearch(t *testing.T) {
	s := NewStatic(map[string]string{
		"中华人民共和国": "ns",
		"中华":      "nz",
		"人民":      "n",
		"共和":      "nz",
		"共和国":     "n",
	})

	got := s.CutForSearch("中华人民共和国")
	want := []string{"中华", "人民", "共和", "共和国", "中华人民共和国"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CutForSearch = %v, want %v", got, want)
	}
}

func TestExcluded(t *testing.T) {
	for tag, want := range map[string]bool{"x": true, "eng": true, "n": false, "X": false} {
		if got := Excluded(tag); got != want {
			t.Errorf("Excluded(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestGuessTag(t *testing.T) {
	for text, want := range map[string]string{"abc": "eng", "A1": "eng", "，": "x", "": "x", "中文": "x"} {
		if got := guessTag(text); got != want {
			t.Errorf("guessTag(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestGse(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the embedded dictionary")
	}

	g, err := NewGse("")
	if err != nil {
		t.Fatalf("NewGse: %v", err)
	}

	text := "我们今天去北京"
	var b strings.Builder
	for _, tk := range g.Tag(text) {
		if tk.Tag == "" {
			t.Errorf("token %q has empty tag", tk.Text)
		}
		b.WriteString(tk.Text)
	}
	if b.String() != text {
		t.Errorf("Tag should cover the input: got %q", b.String())
	}

	if err := g.AddWord("借还款", TagPlaceholder); err != nil {
		t.Fatalf("AddWord: %v", err)
	}
	found := false
	for _, w := range g.Cut("我要借还款") {
		if w == "借还款" {
			found = true
		}
	}
	if !found {
		t.Errorf("custom word should be cut as a whole: %v", g.Cut("我要借还款"))
	}
}

func TestGse_AddWordOverridesDictTag(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the embedded dictionary")
	}

	g, err := NewGse("")
	if err != nil {
		t.Fatalf("NewGse: %v", err)
	}
	// 还款 在内置词典里带有自己的词性
	if err := g.AddWord("还款", TagPlaceholder); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	for _, text := range []string{"还款", "不还款", "还款还款"} {
		found := false
		for _, tk := range g.Tag(text) {
			if tk.Text != "还款" {
				continue
			}
			found = true
			if tk.Tag != TagPlaceholder {
				t.Errorf("Tag(%q): 还款 tagged %q, want %q", text, tk.Tag, TagPlaceholder)
			}
		}
		if !found {
			t.Errorf("Tag(%q) should keep 还款 whole: %v", text, g.Tag(text))
		}
	}
}
