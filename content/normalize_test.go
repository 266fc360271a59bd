package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seo-optimizer/contentseo/content"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "", content.StripHTML(""))
	assert.Equal(t, "Hello world", content.StripHTML("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "a b", content.StripHTML("a<br/>b"))
	assert.Equal(t, "line one line two", content.StripHTML("line one\n\n  line two  "))
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"emphasis", "**bold** and *italic* and __strong__", "bold and italic and strong"},
		{"image before link", "see ![alt text](a.png) and [the docs](https://x.io)", "see alt text and the docs"},
		{"inline code", "run `go test` now", "run go test now"},
		{"fenced code", "before\n```go\nfmt.Println()\n```\nafter", "before fmt.Println() after"},
		{"heading markers", "## Heading\n\nbody # not a heading", "Heading body # not a heading"},
		{"underscore inside word", "snake_case_name stays", "snake_case_name stays"},
		{"underscore italic", "_it_ works", "it works"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.StripMarkdown(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"<p>Hello <b>world</b></p>",
		"## Title\n\n**bold** [link](/a) ![img](/b.png)",
		"<h2>**nested** markup</h2><p>_x_ and `y`</p>",
		"***triple*** and ****quad****",
		"<<p>>odd</p>> brackets",
		"# # double hash",
		"_a_ _b_ _c_",
	}
	for _, in := range inputs {
		once := content.Normalize(in)
		assert.Equal(t, once, content.Normalize(once), "input %q", in)
	}
}

func TestTokenizeAndWordCount(t *testing.T) {
	assert.Nil(t, content.Tokenize(""))
	assert.Nil(t, content.Tokenize("   <br>  "))
	assert.Equal(t, []string{"one", "two", "three"}, content.Tokenize("<p>one two</p>\n\nthree"))
	assert.Equal(t, 3, content.WordCount("<p>one **two**</p> three"))
	assert.Equal(t, 0, content.WordCount(""))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "hoc tieng anh", content.Fold("Học Tiếng Anh"))
	assert.Equal(t, "duong", content.Fold("Đường"))
	assert.Equal(t, "duong", content.Fold("đường"))
	assert.Equal(t, "cafe", content.Fold("Café"))
	assert.Equal(t, "", content.Fold(""))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"tuy", "nhiên", "điều", "này", "đúng"}, content.Words("Tuy nhiên, điều này <b>đúng</b>!"))
	assert.Equal(t, []string{"những", "nhưng"}, content.Words("Những, NHƯNG"))
	// decomposed input compares equal to precomposed
	assert.Equal(t, content.Words("tiếng"), content.Words("tie\u0302\u0301ng"))
	assert.Empty(t, content.Words(""))
}
