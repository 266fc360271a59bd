// Package page fetches a published article and turns it into an analysis
// context.
package page

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"

	"github.com/seo-optimizer/contentseo/rules"
)

// Format selects how the article body is stored in Page.Content.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts "html" or "markdown"; empty means html.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unsupported content format %q", s)
}

// Page is the SEO relevant part of a fetched document.
type Page struct {
	URL             string    `json:"url"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"metaDescription"`
	Slug            string    `json:"slug"`
	Canonical       string    `json:"canonical,omitempty"`
	Content         string    `json:"content"`
	FetchedAt       time.Time `json:"fetchedAt"`
}

// Context builds a rule context for keyphrase. The page's own origin is
// used to classify links.
func (p *Page) Context(keyphrase string) rules.Context {
	site := ""
	if u, err := url.Parse(p.URL); err == nil && u.Host != "" {
		site = u.Scheme + "://" + u.Host
	}
	return rules.Context{
		Title:           p.Title,
		MetaDescription: p.MetaDescription,
		Slug:            p.Slug,
		Content:         p.Content,
		FocusKeyphrase:  keyphrase,
		SiteURL:         site,
	}
}

// Elements that never carry article text.
const boilerplate = "script, style, noscript, template, nav, header, footer, aside, form"

// Parse reads an HTML document. The body is taken from the first of main,
// article or body with boilerplate elements removed.
func Parse(pageURL *url.URL, r io.Reader, format Format) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	p := &Page{
		URL:             pageURL.String(),
		Title:           firstNonEmpty(doc.Find("title").First().Text(), metaContent(doc, "meta[property='og:title']")),
		MetaDescription: firstNonEmpty(metaContent(doc, "meta[name='description']"), metaContent(doc, "meta[property='og:description']")),
		Slug:            slugOf(pageURL),
	}
	if href, ok := doc.Find("link[rel='canonical']").First().Attr("href"); ok {
		p.Canonical = strings.TrimSpace(href)
	}

	body := doc.Find("main").First()
	if body.Length() == 0 {
		body = doc.Find("article").First()
	}
	if body.Length() == 0 {
		body = doc.Find("body").First()
	}
	body.Find(boilerplate).Remove()

	html, err := body.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render content: %w", err)
	}
	html = strings.TrimSpace(html)

	if format == FormatMarkdown && html != "" {
		md, err := toMarkdown(html)
		if err != nil {
			return nil, err
		}
		html = md
	}
	p.Content = html
	return p, nil
}

func toMarkdown(html string) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	md, err := conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert content to markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}

func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// slugOf returns the last non-empty path segment of u.
func slugOf(u *url.URL) string {
	p := strings.Trim(u.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}
