// Package keyword matches focus keyphrases against text, ignoring case and
// Vietnamese diacritics.
package keyword

import (
	"math"
	"regexp"
	"strings"

	"github.com/seo-optimizer/contentseo/content"
)

// Keyphrases is the parsed form of a comma separated keyphrase list.
type Keyphrases struct {
	Primary   string
	Secondary []string
}

// Empty reports whether no primary keyphrase was given.
func (k Keyphrases) Empty() bool {
	return k.Primary == ""
}

// All returns the primary keyphrase followed by the secondary ones.
func (k Keyphrases) All() []string {
	if k.Empty() {
		return nil
	}
	return append([]string{k.Primary}, k.Secondary...)
}

// Parse splits input on commas, trims each part and drops empty ones.
// The first remaining part is the primary keyphrase.
func Parse(input string) Keyphrases {
	var parts []string
	for _, p := range strings.Split(input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return Keyphrases{}
	}
	return Keyphrases{Primary: parts[0], Secondary: parts[1:]}
}

func folded(keyphrase string) string {
	return content.Fold(strings.TrimSpace(keyphrase))
}

// Contains reports whether keyphrase occurs in text after folding both.
func Contains(text, keyphrase string) bool {
	kp := folded(keyphrase)
	if kp == "" || text == "" {
		return false
	}
	return strings.Contains(content.Fold(text), kp)
}

// IsNearBeginning reports whether keyphrase occurs within the first half
// of text, measured in characters.
func IsNearBeginning(text, keyphrase string) bool {
	kp := folded(keyphrase)
	if kp == "" || text == "" {
		return false
	}
	r := []rune(content.Fold(text))
	half := (len(r) + 1) / 2
	return strings.Contains(string(r[:half]), kp)
}

// OccurrenceCount counts non-overlapping occurrences of keyphrase in text.
func OccurrenceCount(text, keyphrase string) int {
	kp := folded(keyphrase)
	if kp == "" || text == "" {
		return 0
	}
	return strings.Count(content.Fold(text), kp)
}

// DensityResult holds the keyphrase density of a text.
type DensityResult struct {
	Density     float64 `json:"density"`
	Occurrences int     `json:"occurrences"`
	WordCount   int     `json:"wordCount"`
}

// Density is occurrences × words in keyphrase × 100 / words in text,
// computed on normalized text.
func Density(text, keyphrase string) DensityResult {
	words := content.WordCount(text)
	kpWords := content.WordCount(keyphrase)
	if words == 0 || kpWords == 0 {
		return DensityResult{WordCount: words}
	}
	occurrences := OccurrenceCount(content.Normalize(text), keyphrase)
	return DensityResult{
		Density:     float64(occurrences*kpWords) * 100 / float64(words),
		Occurrences: occurrences,
		WordCount:   words,
	}
}

// Edge selects which end of the text InWindow looks at.
type Edge int

const (
	Start Edge = iota
	End
)

// InWindow reports whether keyphrase occurs in the first or last percent
// of text, measured in characters of the folded text and rounded up.
func InWindow(text, keyphrase string, percent float64, edge Edge) bool {
	kp := folded(keyphrase)
	if kp == "" || text == "" || percent <= 0 {
		return false
	}
	r := []rune(content.Fold(text))
	size := int(math.Ceil(float64(len(r)) * percent / 100))
	if size > len(r) {
		size = len(r)
	}
	window := r[:size]
	if edge == End {
		window = r[len(r)-size:]
	}
	return strings.Contains(string(window), kp)
}

var (
	slugUnsafe = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugSpace  = regexp.MustCompile(`[\s-]+`)
)

// Slugify folds text into a lowercase, hyphen separated ASCII slug.
func Slugify(text string) string {
	s := slugUnsafe.ReplaceAllString(content.Fold(text), "")
	return strings.Trim(slugSpace.ReplaceAllString(s, "-"), "-")
}
