package rules

import (
	"unicode/utf8"

	"github.com/seo-optimizer/contentseo/content"
	"github.com/seo-optimizer/contentseo/keyword"
)

const (
	densityMinWords = 100
	densityMin      = 0.5
	densityMax      = 2.5
	urlMaxLength    = 75
)

func keywordInSubheadings(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" || ctx.FocusKeyphrase == "" {
			return Skip(nil)
		}
		headings := content.ExtractHeadings(ctx.Content)
		if len(headings) == 0 {
			return Skip(Data{"subheadingCount": 0})
		}
		matching := 0
		for _, h := range headings {
			if keyword.Contains(h.Text, ctx.FocusKeyphrase) {
				matching++
			}
		}
		data := Data{"subheadingCount": len(headings), "matchingCount": matching}
		if matching > 0 {
			return Pass(data)
		}
		return Fail(data)
	}
}

func keywordInImageAlt(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" || ctx.FocusKeyphrase == "" {
			return Skip(nil)
		}
		images := content.ExtractImages(ctx.Content)
		if len(images) == 0 {
			return Skip(Data{"imageCount": 0})
		}
		matching := 0
		for _, alt := range content.ExtractImageAltTexts(ctx.Content) {
			if keyword.Contains(alt, ctx.FocusKeyphrase) {
				matching++
			}
		}
		data := Data{"imageCount": len(images), "matchingCount": matching}
		if matching > 0 {
			return Pass(data)
		}
		return Fail(data)
	}
}

func keywordDensity(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" || ctx.FocusKeyphrase == "" {
			return Skip(nil)
		}
		words := content.WordCount(ctx.Content)
		if words < densityMinWords {
			return Skip(Data{"wordCount": words})
		}
		d := keyword.Density(ctx.Content, ctx.FocusKeyphrase)
		data := Data{
			"density":     roundTo(d.Density, 2),
			"occurrences": d.Occurrences,
			"wordCount":   d.WordCount,
			"min":         densityMin,
			"max":         densityMax,
		}
		if d.Density >= densityMin && d.Density <= densityMax {
			return Pass(data)
		}
		return Fail(data)
	}
}

func urlLength(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Slug == "" {
			return Skip(nil)
		}
		n := utf8.RuneCountInString(ctx.Slug)
		data := Data{"urlLength": n, "max": urlMaxLength}
		if n <= urlMaxLength {
			return Pass(data)
		}
		return Fail(data)
	}
}

func externalLinks(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		external, dofollow := 0, 0
		for _, l := range content.ExtractLinks(ctx.Content) {
			if content.ClassifyLink(l.Href, ctx.SiteURL) != content.LinkExternal {
				continue
			}
			external++
			if !l.NoFollow {
				dofollow++
			}
		}
		data := Data{"externalCount": external, "dofollowCount": dofollow}
		if external > 0 {
			return Pass(data)
		}
		return Fail(data)
	}
}

func internalLinks(Lexicon) CheckFunc {
	return func(ctx Context) Result {
		if ctx.Content == "" {
			return Skip(nil)
		}
		internal := 0
		for _, l := range content.ExtractLinks(ctx.Content) {
			if content.ClassifyLink(l.Href, ctx.SiteURL) == content.LinkInternal {
				internal++
			}
		}
		data := Data{"internalCount": internal}
		if internal > 0 {
			return Pass(data)
		}
		return Fail(data)
	}
}
