package diacritic

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestReplaceExtendedASCII(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no diacritics", "Rio de Janeiro", "Rio de Janeiro"},
		{"tilde", "São Paulo", "Sao Paulo"},
		{"portuguese", "ação à vista", "acao a vista"},
		{"german", "Zürich über Bäckerei", "Zurich uber Backerei"},
		{"scandinavian", "Århus Ørsted", "Arhus Orsted"},
		{"polish", "Łódź Gdańsk", "Lodz Gdansk"},
		{"czech", "Dvořák Žižkov", "Dvorak Zizkov"},
		{"romanian", "Timișoara Constanța", "Timisoara Constanta"},
		{"turkish", "İstanbul ılık", "Istanbul ilik"},
		{"uppercase", "ÉCOLE FRANÇAISE", "ECOLE FRANCAISE"},
		{"eszett unchanged", "Straße", "Straße"},
		{"ligatures unchanged", "æther œuvre", "æther œuvre"},
		{"cyrillic unchanged", "Москва", "Москва"},
		{"cjk unchanged", "北京", "北京"},
		{"digits and punctuation", "çà 1-2, ok!", "ca 1-2, ok!"},
		{"mixed with emoji", "café 🙂", "cafe 🙂"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReplaceExtendedASCII(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, utf8.RuneCountInString(tt.input), utf8.RuneCountInString(got))
		})
	}
}

func TestReplaceExtendedASCII_PreservesRuneCount(t *testing.T) {
	inputs := []string{
		"",
		"ãáâõöåüç",
		"Ǻǻ Ǿǿ Ǖǖ",
		"\xff\xfe invalid",
		"a\u0301 combining stays",
		"日本語 ñ",
	}
	for _, in := range inputs {
		out := ReplaceExtendedASCII(in)
		assert.Equal(t, utf8.RuneCountInString(in), utf8.RuneCountInString(out), "input %q", in)
	}
}

func TestReplaceExtendedASCII_TableIsASCII(t *testing.T) {
	for r, base := range table {
		assert.Less(t, base, rune(utf8.RuneSelf), "replacement of %q", r)
		assert.GreaterOrEqual(t, r, rune(utf8.RuneSelf), "key %q", r)
	}
}

func TestReplace(t *testing.T) {
	assert.Equal(t, 'a', Replace('ã'))
	assert.Equal(t, 'o', Replace('ö'))
	assert.Equal(t, 'a', Replace('å'))
	assert.Equal(t, 'u', Replace('ü'))
	assert.Equal(t, 'c', Replace('ç'))
	assert.Equal(t, 'N', Replace('Ñ'))
	assert.Equal(t, 'x', Replace('x'))
	assert.Equal(t, 'ß', Replace('ß'))
	assert.Equal(t, '-', Replace('-'))
}

func TestHas(t *testing.T) {
	assert.True(t, Has('é'))
	assert.True(t, Has('Ÿ'))
	assert.False(t, Has('e'))
	assert.False(t, Has('ß'))
}

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"ascii", "plain text", "plain text"},
		{"latin", "naïve résumé", "naive resume"},
		{"vietnamese", "Tiếng Việt", "Tieng Viet"},
		{"greek tonos", "άέή", "αεη"},
		{"combining sequence", "e\u0301", "e"},
		{"stroke letters are not decomposable", "Łódź", "Łodz"},
		{"eszett", "Straße", "Straße"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func ExampleReplaceExtendedASCII() {
	fmt.Println(ReplaceExtendedASCII("São Paulo"))
	fmt.Println(ReplaceExtendedASCII("Rio de Janeiro"))
	// Output:
	// Sao Paulo
	// Rio de Janeiro
}

func BenchmarkReplaceExtendedASCII(b *testing.B) {
	s := "Zürich, São Paulo, Kraków, Besançon, Ærøskøbing"
	for i := 0; i < b.N; i++ {
		ReplaceExtendedASCII(s)
	}
}
