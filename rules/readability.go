package rules

import (
	"math"
	"strings"

	"github.com/seo-optimizer/contentseo/content"
)

const (
	tocMinWords = 1500

	paragraphMaxWords = 120

	sentenceMaxWords      = 20
	longSentenceMaxPct    = 25.0
	transitionMinWords    = 200
	transitionMinPct      = 0.5
	highlightPreviewRunes = 100
)

func numberInTitle(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Title == "" {
			return Skip(nil)
		}
		if strings.ContainsAny(ctx.Title, "0123456789") {
			return Pass(nil)
		}
		return Fail(nil)
	}
}

func tableOfContents(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		words := content.WordCount(ctx.Content)
		if words < tocMinWords {
			return Skip(Data{"wordCount": words})
		}
		data := Data{"wordCount": words}
		if content.HasTableOfContents(ctx.Content) {
			return Pass(data)
		}
		return Fail(data)
	}
}

func shortParagraphs(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		paragraphs := content.ExtractParagraphs(ctx.Content)
		if len(paragraphs) == 0 {
			return Skip(nil)
		}
		var highlights []string
		for _, p := range paragraphs {
			if content.WordCount(p) > paragraphMaxWords {
				highlights = append(highlights, preview(p))
			}
		}
		data := Data{
			"paragraphCount": len(paragraphs),
			"longParagraphs": len(highlights),
			"max":            paragraphMaxWords,
		}
		if len(highlights) == 0 {
			return Pass(data)
		}
		data["highlights"] = highlights
		return Fail(data)
	}
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= highlightPreviewRunes {
		return s
	}
	return string(r[:highlightPreviewRunes]) + "..."
}

func hasMedia(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		images, videos := content.CountMedia(ctx.Content)
		data := Data{"imageCount": images, "videoCount": videos}
		if images+videos > 0 {
			return Pass(data)
		}
		return Fail(data)
	}
}

func sentenceLength(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		sentences := content.ExtractSentences(ctx.Content)
		if len(sentences) == 0 {
			return Skip(nil)
		}
		long := 0
		for _, s := range sentences {
			if len(strings.Fields(s)) > sentenceMaxWords {
				long++
			}
		}
		pct := float64(long) * 100 / float64(len(sentences))
		data := Data{
			"sentenceCount": len(sentences),
			"longCount":     long,
			"percentage":    roundTo(pct, 2),
			"maxWords":      sentenceMaxWords,
			"maxPercentage": longSentenceMaxPct,
		}
		if pct <= longSentenceMaxPct {
			return Pass(data)
		}
		return Fail(data)
	}
}

func transitionWords(lex Lexicon) CheckFunc {
	phrases := phraseWords(lex.TransitionWords)
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		words := content.WordCount(ctx.Content)
		if words < transitionMinWords {
			return Skip(Data{"wordCount": words})
		}
		found := countPhrases(content.Words(ctx.Content), phrases)
		pct := float64(found) * 100 / float64(words)
		data := Data{
			"transitionCount": found,
			"wordCount":       words,
			"percentage":      roundTo(pct, 2),
		}
		if pct >= transitionMinPct {
			return Pass(data)
		}
		return Fail(data)
	}
}

func questionInHeadings(lex Lexicon) CheckFunc {
	phrases := phraseWords(lex.QuestionWords)
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		headings := content.ExtractHeadings(ctx.Content)
		if len(headings) == 0 {
			return Skip(nil)
		}
		questions := 0
		for _, h := range headings {
			if strings.HasSuffix(strings.TrimSpace(h.Text), "?") || countPhrases(content.Words(h.Text), phrases) > 0 {
				questions++
			}
		}
		data := Data{"headingCount": len(headings), "questionCount": questions}
		if questions > 0 {
			return Pass(data)
		}
		return Fail(data)
	}
}

func descriptiveAnchorText(lex Lexicon) CheckFunc {
	generic := make(map[string]bool, len(lex.GenericAnchors))
	for _, a := range lex.GenericAnchors {
		generic[strings.Join(content.Words(a), " ")] = true
	}
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		links := content.ExtractLinks(ctx.Content)
		if len(links) == 0 {
			return Skip(nil)
		}
		var examples []string
		for _, l := range links {
			if generic[strings.Join(content.Words(l.Text), " ")] {
				examples = append(examples, l.Text)
			}
		}
		data := Data{"linkCount": len(links), "genericCount": len(examples)}
		if len(examples) == 0 {
			return Pass(data)
		}
		data["examples"] = examples
		return Fail(data)
	}
}

// passiveVoice only reports; it never passes or fails.
func passiveVoice(lex Lexicon) CheckFunc {
	markers := make(map[string]bool, len(lex.PassiveMarkers))
	for _, m := range lex.PassiveMarkers {
		if w := content.Words(m); len(w) == 1 {
			markers[w[0]] = true
		}
	}
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		words := content.Words(ctx.Content)
		passive := 0
		for i := 0; i+1 < len(words); i++ {
			if markers[words[i]] && hasAnySuffix(words[i+1], lex.PassiveSuffixes) {
				passive++
			}
		}
		sentences := len(content.ExtractSentences(ctx.Content))
		ratio := 0.0
		if sentences > 0 {
			ratio = math.Min(100, float64(passive)*100/float64(sentences))
		}
		return Skip(Data{
			"passiveCount":  passive,
			"sentenceCount": sentences,
			"percentage":    roundTo(ratio, 2),
		})
	}
}

func hasAnySuffix(word string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func phraseWords(phrases []string) [][]string {
	out := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		if w := content.Words(p); len(w) > 0 {
			out = append(out, w)
		}
	}
	return out
}

// countPhrases counts whole-word occurrences of each phrase in words.
func countPhrases(words []string, phrases [][]string) int {
	count := 0
	for _, phrase := range phrases {
		for i := 0; i+len(phrase) <= len(words); {
			if matchAt(words, i, phrase) {
				count++
				i += len(phrase)
				continue
			}
			i++
		}
	}
	return count
}

func matchAt(words []string, at int, phrase []string) bool {
	for j, w := range phrase {
		if words[at+j] != w {
			return false
		}
	}
	return true
}
