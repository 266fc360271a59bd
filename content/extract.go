package content

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Heading is a level 2-6 heading found in HTML or Markdown.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is an HTML anchor or a Markdown inline link.
type Link struct {
	Href     string `json:"href"`
	Text     string `json:"text"`
	NoFollow bool   `json:"noFollow,omitempty"`
}

// Image is an <img> element or a Markdown image.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// MediaKind tells which construct a video was found in.
type MediaKind string

const (
	MediaVideo  MediaKind = "video"
	MediaIframe MediaKind = "iframe"
	MediaEmbed  MediaKind = "embed"
	MediaObject MediaKind = "object"
	MediaURL    MediaKind = "url"
)

// Video is an embedded or linked video.
type Video struct {
	Kind MediaKind `json:"kind"`
	Src  string    `json:"src,omitempty"`
}

var (
	htmlHeadingPatterns = [...]*regexp.Regexp{
		regexp.MustCompile(`(?is)<h2(?:\s[^>]*)?>(.*?)</h2\s*>`),
		regexp.MustCompile(`(?is)<h3(?:\s[^>]*)?>(.*?)</h3\s*>`),
		regexp.MustCompile(`(?is)<h4(?:\s[^>]*)?>(.*?)</h4\s*>`),
		regexp.MustCompile(`(?is)<h5(?:\s[^>]*)?>(.*?)</h5\s*>`),
		regexp.MustCompile(`(?is)<h6(?:\s[^>]*)?>(.*?)</h6\s*>`),
	}
	markdownHeadingPattern = regexp.MustCompile(`(?m)^(#{2,6})[ \t]+([^\r\n]*\S)[ \t]*\r?$`)

	blockTagPattern  = regexp.MustCompile(`(?i)</?(?:p|div|li|blockquote|h[1-6])\b[^>]*>`)
	blankLinePattern = regexp.MustCompile(`\n[ \t\r]*\n`)

	sentenceBoundaryPattern = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

	htmlAnchorPattern    = regexp.MustCompile(`(?is)<a\s([^>]*)>(.*?)</a\s*>`)
	markdownLinkPattern  = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]*)(?:\s+"[^"]*")?\)`)
	htmlImagePattern     = regexp.MustCompile(`(?is)<img\b([^>]*)>`)
	markdownImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]*)(?:\s+"[^"]*")?\)`)

	htmlVideoPattern  = regexp.MustCompile(`(?is)<video\b([^>]*)>`)
	htmlIframePattern = regexp.MustCompile(`(?is)<iframe\b([^>]*)>`)
	htmlEmbedPattern  = regexp.MustCompile(`(?is)<embed\b([^>]*)>`)
	htmlObjectPattern = regexp.MustCompile(`(?is)<object\b([^>]*)>`)
	videoHostPattern  = regexp.MustCompile(`(?i)youtube|youtu\.be|vimeo|dailymotion`)
	videoURLPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.|m\.)?(?:youtube\.com|youtu\.be|vimeo\.com)/[^\s"'<>()\[\]]+`)

	hrefAttr = attrPattern("href")
	relAttr  = attrPattern("rel")
	srcAttr  = attrPattern("src")
	altAttr  = attrPattern("alt")
	dataAttr = attrPattern("data")
)

func attrPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[\s"'/])` + name + `\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
}

func attr(pattern *regexp.Regexp, attrs string) (string, bool) {
	m := pattern.FindStringSubmatch(attrs)
	if m == nil {
		return "", false
	}
	for _, v := range m[1:] {
		if v != "" {
			return v, true
		}
	}
	return "", true
}

type positioned struct {
	at      int
	heading Heading
}

// ExtractHeadings returns level 2-6 headings in document order. HTML headings
// come first, then Markdown "##" style headings, so mixed content keeps both.
func ExtractHeadings(content string) []Heading {
	if content == "" {
		return nil
	}
	var found []positioned
	for i, pattern := range htmlHeadingPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(content, -1) {
			found = append(found, positioned{
				at:      m[0],
				heading: Heading{Level: i + 2, Text: StripHTML(content[m[2]:m[3]])},
			})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].at < found[j].at })

	headings := make([]Heading, 0, len(found))
	for _, p := range found {
		headings = append(headings, p.heading)
	}
	for _, m := range markdownHeadingPattern.FindAllStringSubmatch(content, -1) {
		headings = append(headings, Heading{Level: len(m[1]), Text: Normalize(m[2])})
	}
	return headings
}

// ExtractParagraphs splits content into paragraph texts. When the content
// holds block level HTML each block becomes a paragraph, even if its closing
// tag is missing; otherwise blank lines separate paragraphs and Markdown
// heading blocks are dropped.
func ExtractParagraphs(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if blockTagPattern.MatchString(content) {
		marked := blockTagPattern.ReplaceAllString(content, "\n\n")
		return splitBlocks(tagPattern.ReplaceAllString(marked, " "), false)
	}
	return splitBlocks(tagPattern.ReplaceAllString(content, " "), true)
}

func splitBlocks(text string, dropHeadings bool) []string {
	var paragraphs []string
	for _, block := range blankLinePattern.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if dropHeadings && strings.HasPrefix(block, "#") {
			continue
		}
		paragraphs = append(paragraphs, collapseSpace(block))
	}
	return paragraphs
}

// ExtractSentences splits normalized content on runs of . ! or ? that are
// followed by whitespace or the end of the text.
func ExtractSentences(content string) []string {
	text := Normalize(content)
	if text == "" {
		return nil
	}
	var sentences []string
	for _, part := range sentenceBoundaryPattern.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// ExtractLinks returns HTML anchors followed by Markdown inline links.
// Anchors without an href and Markdown images are skipped.
func ExtractLinks(content string) []Link {
	if content == "" {
		return nil
	}
	var links []Link
	for _, m := range htmlAnchorPattern.FindAllStringSubmatch(content, -1) {
		href, _ := attr(hrefAttr, m[1])
		href = strings.TrimSpace(href)
		if href == "" {
			continue
		}
		rel, _ := attr(relAttr, m[1])
		links = append(links, Link{
			Href:     href,
			Text:     StripHTML(m[2]),
			NoFollow: hasToken(rel, "nofollow"),
		})
	}
	for _, m := range markdownLinkPattern.FindAllStringSubmatchIndex(content, -1) {
		if m[0] > 0 && content[m[0]-1] == '!' {
			continue
		}
		href := strings.TrimSpace(content[m[4]:m[5]])
		if href == "" {
			continue
		}
		links = append(links, Link{Href: href, Text: strings.TrimSpace(content[m[2]:m[3]])})
	}
	return links
}

func hasToken(list, token string) bool {
	for _, f := range strings.Fields(list) {
		if strings.EqualFold(f, token) {
			return true
		}
	}
	return false
}

// LinkKind classifies a link relative to the site being analyzed.
type LinkKind int

const (
	LinkOther LinkKind = iota
	LinkInternal
	LinkExternal
)

// ClassifyLink reports whether href points inside the site, outside it, or
// is neither (mailto:, tel:, javascript: and the like). Fragment and relative
// links are always internal; absolute http(s) links are internal only when
// their host equals the host of siteURL.
func ClassifyLink(href, siteURL string) LinkKind {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return LinkOther
	case strings.HasPrefix(href, "//"):
		href = "https:" + href
	case strings.HasPrefix(href, "#"),
		strings.HasPrefix(href, "/"),
		strings.HasPrefix(href, "./"),
		strings.HasPrefix(href, "../"):
		return LinkInternal
	}

	u, err := url.Parse(href)
	if err != nil {
		return LinkOther
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return LinkOther
	}
	if site := siteHost(siteURL); site != "" && strings.EqualFold(u.Hostname(), site) {
		return LinkInternal
	}
	return LinkExternal
}

func siteHost(siteURL string) string {
	siteURL = strings.TrimSpace(siteURL)
	if siteURL == "" {
		return ""
	}
	if !strings.Contains(siteURL, "://") {
		siteURL = "https://" + siteURL
	}
	u, err := url.Parse(siteURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// ExtractImages returns <img> elements followed by Markdown images.
func ExtractImages(content string) []Image {
	if content == "" {
		return nil
	}
	var images []Image
	for _, m := range htmlImagePattern.FindAllStringSubmatch(content, -1) {
		src, _ := attr(srcAttr, m[1])
		alt, _ := attr(altAttr, m[1])
		images = append(images, Image{Src: strings.TrimSpace(src), Alt: strings.TrimSpace(alt)})
	}
	for _, m := range markdownImagePattern.FindAllStringSubmatch(content, -1) {
		images = append(images, Image{Src: strings.TrimSpace(m[2]), Alt: strings.TrimSpace(m[1])})
	}
	return images
}

// ExtractImageAltTexts returns the non-empty alt texts of all images.
func ExtractImageAltTexts(content string) []string {
	var alts []string
	for _, img := range ExtractImages(content) {
		if img.Alt != "" {
			alts = append(alts, img.Alt)
		}
	}
	return alts
}

// ExtractVideos finds <video>, <embed> and <object> elements, iframes that
// point at a known video host, and bare YouTube or Vimeo URLs in the text.
func ExtractVideos(content string) []Video {
	if content == "" {
		return nil
	}
	var videos []Video
	for _, m := range htmlVideoPattern.FindAllStringSubmatch(content, -1) {
		src, _ := attr(srcAttr, m[1])
		videos = append(videos, Video{Kind: MediaVideo, Src: src})
	}
	for _, m := range htmlIframePattern.FindAllStringSubmatch(content, -1) {
		if src, _ := attr(srcAttr, m[1]); videoHostPattern.MatchString(src) {
			videos = append(videos, Video{Kind: MediaIframe, Src: src})
		}
	}
	for _, m := range htmlEmbedPattern.FindAllStringSubmatch(content, -1) {
		src, _ := attr(srcAttr, m[1])
		videos = append(videos, Video{Kind: MediaEmbed, Src: src})
	}
	for _, m := range htmlObjectPattern.FindAllStringSubmatch(content, -1) {
		src, _ := attr(dataAttr, m[1])
		videos = append(videos, Video{Kind: MediaObject, Src: src})
	}
	// Tags are stripped first so iframe and embed sources are not counted twice.
	for _, u := range videoURLPattern.FindAllString(tagPattern.ReplaceAllString(content, " "), -1) {
		videos = append(videos, Video{Kind: MediaURL, Src: u})
	}
	return videos
}

// CountMedia returns the number of images and videos in content.
func CountMedia(content string) (images, videos int) {
	return len(ExtractImages(content)), len(ExtractVideos(content))
}
