// Package content turns raw HTML, Markdown or mixed article bodies into the
// plain text, words and structural elements the SEO rules inspect.
package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

// Applied in order. Images must run before links so the leading "!" goes too.
var markdownReplacements = []replacement{
	{regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*\\n?(.*?)```"), "${1}"},
	{regexp.MustCompile("`([^`\\n]+)`"), "${1}"},
	{regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`), "${1}"},
	{regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`), "${1}"},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "${1}"},
	{regexp.MustCompile(`__(.+?)__`), "${1}"},
	{regexp.MustCompile(`\*([^*\n]+)\*`), "${1}"},
	{regexp.MustCompile(`(^|[^\p{L}\p{N}_])_([^_\n]+)_($|[^\p{L}\p{N}_])`), "${1}${2}${3}"},
	{regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+`), ""},
}

// StripHTML replaces every tag with a space and collapses whitespace.
func StripHTML(text string) string {
	if text == "" {
		return ""
	}
	return collapseSpace(tagPattern.ReplaceAllString(text, " "))
}

// StripMarkdown removes Markdown syntax, keeping the visible text of code,
// images, links, emphasis and headings.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}
	for _, r := range markdownReplacements {
		text = r.pattern.ReplaceAllString(text, r.with)
	}
	return collapseSpace(text)
}

// Normalize strips HTML and Markdown and collapses whitespace. It repeats
// until the text stops changing, so Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	out := text
	for {
		next := StripMarkdown(StripHTML(out))
		if next == out {
			return out
		}
		out = next
	}
}

// Tokenize splits normalized text into whitespace separated words.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}

// WordCount is len(Tokenize(text)).
func WordCount(text string) int {
	return len(Tokenize(text))
}

// Fold lowercases text and removes Vietnamese diacritics so that
// "Học Tiếng Anh" and "hoc tieng anh" compare equal.
func Fold(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningMark)))
	folded, _, err := transform.String(t, lowered)
	if err != nil {
		folded = lowered
	}
	return dStroke.Replace(folded)
}

var dStroke = strings.NewReplacer("đ", "d", "Đ", "d")

func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// Words splits lower-cased NFC text into letter/digit runs, dropping
// punctuation. Diacritics are kept: "những" and "nhưng" are different words.
func Words(text string) []string {
	return strings.FieldsFunc(norm.NFC.String(strings.ToLower(Normalize(text))), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
