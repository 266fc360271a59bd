package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/contentseo/content"
)

func TestExtractHeadings_MixedDialects(t *testing.T) {
	body := "<h2>First</h2>\n\n## Second\n\n<h3 class=\"x\">Third <em>part</em></h3>"

	headings := content.ExtractHeadings(body)

	assert.Equal(t, []content.Heading{
		{Level: 2, Text: "First"},
		{Level: 3, Text: "Third part"},
		{Level: 2, Text: "Second"},
	}, headings)
}

func TestExtractHeadings_MarkdownLevels(t *testing.T) {
	body := "# Title\n## Two\n### Three **bold**\n###### Six\n####### Seven\nnot ## a heading"

	headings := content.ExtractHeadings(body)

	assert.Equal(t, []content.Heading{
		{Level: 2, Text: "Two"},
		{Level: 3, Text: "Three bold"},
		{Level: 6, Text: "Six"},
	}, headings)
}

func TestExtractHeadings_HTMLDocumentOrder(t *testing.T) {
	body := "<h3>a</h3><h2>b</h2><h4>c</h4><h1>skip</h1>"

	headings := content.ExtractHeadings(body)

	require.Len(t, headings, 3)
	assert.Equal(t, "a", headings[0].Text)
	assert.Equal(t, "b", headings[1].Text)
	assert.Equal(t, "c", headings[2].Text)
}

func TestExtractParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"malformed html", "<p>Unclosed paragraph", []string{"Unclosed paragraph"}},
		{"html blocks", "<p>One</p><p>Two <b>bold</b></p><div>Three</div>", []string{"One", "Two bold", "Three"}},
		{"markdown", "# Title\n\nFirst para\nline two\n\n\n## Sub\n\nSecond", []string{"First para line two", "Second"}},
		{"plain", "just one block", []string{"just one block"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.ExtractParagraphs(tt.input))
		})
	}
}

func TestExtractSentences(t *testing.T) {
	assert.Equal(t, []string{"Hello world", "How are you", "Fine"},
		content.ExtractSentences("Hello world. How are you? Fine!"))
	assert.Equal(t, []string{"Version 3.5 is out"}, content.ExtractSentences("Version 3.5 is out."))
	assert.Nil(t, content.ExtractSentences(""))
}

func TestExtractLinks(t *testing.T) {
	body := `<a href="https://ext.com" rel="nofollow noopener">Ext <b>site</b></a>
<a name="anchor">no href</a>
[Docs](/docs) and ![img](/a.png) and [ref](https://example.com/x "Title")`

	links := content.ExtractLinks(body)

	require.Len(t, links, 3)
	assert.Equal(t, content.Link{Href: "https://ext.com", Text: "Ext site", NoFollow: true}, links[0])
	assert.Equal(t, content.Link{Href: "/docs", Text: "Docs"}, links[1])
	assert.Equal(t, content.Link{Href: "https://example.com/x", Text: "ref"}, links[2])
}

func TestClassifyLink(t *testing.T) {
	const site = "https://example.com"
	tests := []struct {
		href string
		site string
		want content.LinkKind
	}{
		{"#top", site, content.LinkInternal},
		{"/blog/post", site, content.LinkInternal},
		{"./sibling", site, content.LinkInternal},
		{"../parent", site, content.LinkInternal},
		{"https://example.com/about", site, content.LinkInternal},
		{"https://EXAMPLE.com/about", "example.com", content.LinkInternal},
		{"https://other.com/", site, content.LinkExternal},
		{"https://example.com/about", "", content.LinkExternal},
		{"//cdn.other.com/lib.js", site, content.LinkExternal},
		{"mailto:me@example.com", site, content.LinkOther},
		{"tel:+84123", site, content.LinkOther},
		{"relative/page", site, content.LinkOther},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.want, content.ClassifyLink(tt.href, tt.site))
		})
	}
}

func TestExtractImages(t *testing.T) {
	body := `<img src="a.png" alt=" Cat "><img src='b.png' alt=""> ![](c.png) ![Dog](d.png)`

	images := content.ExtractImages(body)

	require.Len(t, images, 4)
	assert.Equal(t, content.Image{Src: "a.png", Alt: "Cat"}, images[0])
	assert.Equal(t, content.Image{Src: "b.png"}, images[1])
	assert.Equal(t, []string{"Cat", "Dog"}, content.ExtractImageAltTexts(body))
}

func TestExtractVideos(t *testing.T) {
	body := `<iframe src="https://www.youtube.com/embed/abc"></iframe>
<iframe src="https://maps.google.com/embed"></iframe>
<video src="clip.mp4"></video>
Watch https://youtu.be/xyz later.`

	videos := content.ExtractVideos(body)

	require.Len(t, videos, 3)
	assert.Equal(t, content.MediaVideo, videos[0].Kind)
	assert.Equal(t, content.MediaIframe, videos[1].Kind)
	assert.Equal(t, content.MediaURL, videos[2].Kind)
	assert.Equal(t, "https://youtu.be/xyz", videos[2].Src)
}

func TestCountMedia(t *testing.T) {
	images, videos := content.CountMedia(`![x](a.png) <img src="b.jpg"> <embed src="movie.swf">`)
	assert.Equal(t, 2, images)
	assert.Equal(t, 1, videos)

	images, videos = content.CountMedia("plain text with no media")
	assert.Zero(t, images+videos)
	images, videos = content.CountMedia("")
	assert.Zero(t, images+videos)
}

func TestHasTableOfContents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"toc token", "[TOC]\n\nbody", true},
		{"double bracket token", "[[toc]]", true},
		{"kramdown token", "* list\n{:toc}", true},
		{"html comment", "<!-- toc -->", true},
		{"toc container", `<nav class="post-toc">...</nav>`, true},
		{"vietnamese heading", "## Mục lục\n\n- a", true},
		{"heading with trailing words", "## Nội dung chính\n\n- a", true},
		{"heading with colon", "### Table of contents:\n", true},
		{"longer word", "## Contented cows", false},
		{"three h2", "## A\n\n## B\n\n## C", true},
		{"two h2 two h3", "## A\n\n### A1\n\n## B\n\n### B1", true},
		{"two h2", "## A\n\n## B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.HasTableOfContents(tt.input))
		})
	}
}
