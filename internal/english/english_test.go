package english

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestARPAbetToIPA(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"HH AH0 L OW1", "həlˈoʊ"},
		{"W ER1 L D", "wˈɝld"},
		{"K AH0 M P Y UW1 T ER0", "kəmpjˈutɚ"},
		{"B ER1 TH D EY2", "bˈɝθdˌeɪ"},
		{"DH AH0", "ðə"},
	}

	for _, tt := range tests {
		got, err := ARPAbetToIPA(strings.Fields(tt.input))
		if err != nil {
			t.Fatalf("ARPAbetToIPA(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ARPAbetToIPA(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := ARPAbetToIPA([]string{"XX1"}); !errors.Is(err, ErrUnknownPhone) {
		t.Errorf("expected ErrUnknownPhone, got %v", err)
	}
}

func TestLetters(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"FBI", "ɛfbiaɪ"},
		{"ok", "oʊkeɪ"},
		{"A1", "eɪwʌn"},
		{"-", ""},
	}

	for _, tt := range tests {
		if got := Letters(tt.input); got != tt.want {
			t.Errorf("Letters(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsAcronym(t *testing.T) {
	for word, want := range map[string]bool{
		"USA": true, "I": true, "NASA": false, "Usa": false, "": false, "A1": false,
	} {
		if got := IsAcronym(word); got != want {
			t.Errorf("IsAcronym(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestDictionary(t *testing.T) {
	d, err := ParseDictionary(strings.NewReader(`;;; comment
HELLO  HH AH0 L OW1
HELLO(2)  HH EH0 L OW1
HMM
BROKEN  B XX1
`))
	if err != nil {
		t.Fatalf("ParseDictionary: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"hello", "həlˈoʊ"},
		{"Hello", "həlˈoʊ"},
		{"hmm", "hmm"},
		{"xyz", "ɛkswaɪzi"},
		{"broken", "biɑɹoʊkeɪiɛn"},
	}

	for _, tt := range tests {
		got, err := d.Phonemize(tt.input)
		if err != nil {
			t.Fatalf("Phonemize(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Phonemize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	cands, ok := d.Lookup("HELLO")
	if !ok || len(cands) != 2 {
		t.Errorf("Lookup(HELLO) = %v, %v", cands, ok)
	}
}

func TestDictionary_RandomSelector(t *testing.T) {
	d, err := Embedded(WithSelector(Random(rand.New(rand.NewSource(1)))))
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}

	valid := map[string]bool{"ðə": true, "ðˈʌ": true, "ði": true}
	for i := 0; i < 20; i++ {
		got, err := d.Phonemize("the")
		if err != nil {
			t.Fatalf("Phonemize: %v", err)
		}
		if !valid[got] {
			t.Fatalf("Phonemize(the) = %q, not a dictionary reading", got)
		}
	}
}

func TestEmbedded_Layers(t *testing.T) {
	base, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	if got, _ := base.Phonemize("world"); got != "wˈɝld" {
		t.Errorf("Phonemize(world) = %q", got)
	}

	custom, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	if err := custom.Load(strings.NewReader("WORLD  W ER1 L D Z\n")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, _ := custom.Phonemize("world"); got != "wˈɝldz" {
		t.Errorf("overlay Phonemize(world) = %q", got)
	}
	if got, _ := base.Phonemize("world"); got != "wˈɝld" {
		t.Errorf("overlay must not change other dictionaries, got %q", got)
	}
	if base.Len() == 0 || custom.Len() != base.Len() {
		t.Errorf("Len: base %d, custom %d", base.Len(), custom.Len())
	}
}

type stubPhonemizer map[string]string

func (s stubPhonemizer) Phonemize(word string) (string, error) {
	if p, ok := s[word]; ok {
		return p, nil
	}
	return "", ErrNoPhonemes
}

func TestAcronyms(t *testing.T) {
	p := Acronyms(stubPhonemizer{"NASA": "nˈæsə"})

	tests := []struct {
		input string
		want  string
	}{
		{"USA", "juɛseɪ"},
		{"NASA", "nˈæsə"},
	}
	for _, tt := range tests {
		got, err := p.Phonemize(tt.input)
		if err != nil {
			t.Fatalf("Phonemize(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Phonemize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := p.Phonemize("unknown"); !errors.Is(err, ErrNoPhonemes) {
		t.Errorf("expected ErrNoPhonemes, got %v", err)
	}
}

func TestGoruut(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the goruut model")
	}

	got, err := NewGoruut().Phonemize("hello")
	if err != nil {
		t.Fatalf("Phonemize: %v", err)
	}
	if got == "" {
		t.Error("expected phonemes for hello")
	}
}
