package content

import "regexp"

var tocMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<(?:nav|div|ul|ol)\b[^>]*\bclass\s*=\s*["'][^"']*(?:toc|table-of-contents)[^"']*["']`),
	regexp.MustCompile(`(?i)\[\[?toc\]\]?`),
	regexp.MustCompile(`(?i)\{:toc\}`),
	regexp.MustCompile(`(?i)<!--\s*toc\s*-->`),
	regexp.MustCompile(`(?im)^#{1,6}[ \t]+(?:mục lục|table of contents|nội dung|contents)(?:[^\p{L}\p{N}\r\n][^\r\n]*)?\r?$`),
}

// HasTableOfContents reports whether content carries an explicit table of
// contents marker, or is structured enough to produce one automatically:
// at least three h2 headings, or at least two h2 and two h3 headings.
func HasTableOfContents(content string) bool {
	if content == "" {
		return false
	}
	for _, marker := range tocMarkers {
		if marker.MatchString(content) {
			return true
		}
	}

	var h2, h3 int
	for _, h := range ExtractHeadings(content) {
		switch h.Level {
		case 2:
			h2++
		case 3:
			h3++
		}
	}
	return h2 >= 3 || (h2 >= 2 && h3 >= 2)
}
