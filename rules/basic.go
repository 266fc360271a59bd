package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/seo-optimizer/contentseo/content"
	"github.com/seo-optimizer/contentseo/keyword"
)

const (
	titleMinLength       = 30
	titleMaxLength       = 60
	descriptionMinLength = 120
	descriptionMaxLength = 160

	contentMinWords  = 600
	contentGoodWords = 1000
	contentBestWords = 2500

	// Below this many words the position checks have nothing meaningful
	// to look at.
	positionMinWords = 10
	edgePercent      = 10
)

func keywordInTitle(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Title == "" || ctx.FocusKeyphrase == "" {
			return Skip(nil)
		}
		if !keyword.Contains(ctx.Title, ctx.FocusKeyphrase) {
			return Fail(nil)
		}
		return Pass(Data{"atBeginning": keyword.IsNearBeginning(ctx.Title, ctx.FocusKeyphrase)})
	}
}

func titleLength(Lexicon) CheckFunc {
	return lengthCheck(func(ctx Context) string { return ctx.Title }, titleMinLength, titleMaxLength)
}

func descriptionLength(Lexicon) CheckFunc {
	return lengthCheck(func(ctx Context) string { return ctx.MetaDescription }, descriptionMinLength, descriptionMaxLength)
}

func lengthCheck(field func(Context) string, min, max int) CheckFunc {
	return func(ctx Context) Result {
		value := strings.TrimSpace(field(ctx))
		if value == "" {
			return Skip(nil)
		}
		n := utf8.RuneCountInString(value)
		data := Data{"length": n, "min": min, "max": max}
		if n >= min && n <= max {
			return Pass(data)
		}
		return Fail(data)
	}
}

func keywordInDescription(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.MetaDescription == "" || ctx.FocusKeyphrase == "" {
			return Skip(nil)
		}
		if keyword.Contains(ctx.MetaDescription, ctx.FocusKeyphrase) {
			return Pass(nil)
		}
		return Fail(nil)
	}
}

// keywordInURL passes when any word of the slugified keyphrase appears in
// the folded slug.
func keywordInURL(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Slug == "" || ctx.FocusKeyphrase == "" {
			return Skip(nil)
		}
		slug := content.Fold(ctx.Slug)
		var matched []string
		for _, word := range strings.Split(keyword.Slugify(ctx.FocusKeyphrase), "-") {
			if word != "" && strings.Contains(slug, word) {
				matched = append(matched, word)
			}
		}
		data := Data{"matched": matched}
		if len(matched) > 0 {
			return Pass(data)
		}
		return Fail(data)
	}
}

func keywordInFirst10Percent(Lexicon) CheckFunc {
	return edgeCheck(keyword.Start)
}

func keywordInEnd(Lexicon) CheckFunc {
	return edgeCheck(keyword.End)
}

func edgeCheck(edge keyword.Edge) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" || ctx.FocusKeyphrase == "" {
			return Skip(nil)
		}
		text := content.Normalize(ctx.Content)
		words := content.WordCount(text)
		if words < positionMinWords {
			return Skip(Data{"wordCount": words})
		}
		if keyword.InWindow(text, ctx.FocusKeyphrase, edgePercent, edge) {
			return Pass(nil)
		}
		return Fail(nil)
	}
}

func contentLength(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		words := content.WordCount(ctx.Content)
		data := Data{"wordCount": words}
		if words >= contentMinWords {
			return Pass(data)
		}
		return Fail(data)
	}
}
