package rules

import (
	"fmt"
	"strings"
)

// Locale selects the language of rule names, messages and word lists.
type Locale string

const (
	LocaleVietnamese Locale = "vi"
	LocaleEnglish    Locale = "en"
)

// DefaultLocale is used when none is configured.
const DefaultLocale = LocaleVietnamese

// Locales lists the locales with a built-in catalogue.
func Locales() []Locale {
	return []Locale{LocaleVietnamese, LocaleEnglish}
}

// ParseLocale accepts "vi" or "en", case-insensitively.
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case LocaleVietnamese, LocaleEnglish:
		return l, nil
	case "":
		return DefaultLocale, nil
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// Lexicon is the word lists the readability checks look for.
type Lexicon struct {
	TransitionWords []string
	QuestionWords   []string
	GenericAnchors  []string
	PassiveMarkers  []string
	// PassiveSuffixes restricts the word after a passive marker. Empty means
	// any following word counts.
	PassiveSuffixes []string
}

type ruleText struct {
	name        string
	description string
	messages    Messages
}

type localization struct {
	groupNames  map[Group]string
	skipMessage string
	lexicon     Lexicon
	rules       map[string]ruleText
}

type definition struct {
	id    string
	group Group
	check func(Lexicon) CheckFunc
}

// Catalogue is an ordered, read-only set of rules for one locale.
type Catalogue struct {
	locale      Locale
	rules       []Rule
	byID        map[string]int
	groupNames  map[Group]string
	skipMessage string
}

// NewCatalogue builds a catalogue from explicit rules. Group names missing
// from groupNames render as the group identifier.
func NewCatalogue(locale Locale, groupNames map[Group]string, skipMessage string, rules []Rule) *Catalogue {
	c := &Catalogue{
		locale:      locale,
		rules:       append([]Rule(nil), rules...),
		byID:        make(map[string]int, len(rules)),
		groupNames:  make(map[Group]string, len(groupNames)),
		skipMessage: skipMessage,
	}
	for g, name := range groupNames {
		c.groupNames[g] = name
	}
	for i, r := range c.rules {
		c.byID[r.ID] = i
	}
	return c
}

// Locale returns the catalogue's locale.
func (c *Catalogue) Locale() Locale { return c.locale }

// Rules returns the rules in evaluation order.
func (c *Catalogue) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Len returns the number of rules.
func (c *Catalogue) Len() int { return len(c.rules) }

// Lookup finds a rule by id.
func (c *Catalogue) Lookup(id string) (Rule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// GroupName returns the display name of g.
func (c *Catalogue) GroupName(g Group) string {
	if name, ok := c.groupNames[g]; ok {
		return name
	}
	return string(g)
}

// SkipMessage is shown for skipped rules that have no skip template.
func (c *Catalogue) SkipMessage() string { return c.skipMessage }

// Filter returns a catalogue holding only the rules keep accepts.
func (c *Catalogue) Filter(keep func(Rule) bool) *Catalogue {
	var kept []Rule
	for _, r := range c.rules {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	return NewCatalogue(c.locale, c.groupNames, c.skipMessage, kept)
}

var definitions = []definition{
	{"keyword-in-title", GroupBasic, keywordInTitle},
	{"title-length", GroupBasic, titleLength},
	{"keyword-in-description", GroupBasic, keywordInDescription},
	{"description-length", GroupBasic, descriptionLength},
	{"keyword-in-url", GroupBasic, keywordInURL},
	{"keyword-in-first-10-percent", GroupBasic, keywordInFirst10Percent},
	{"keyword-in-end", GroupBasic, keywordInEnd},
	{"content-length", GroupBasic, contentLength},

	{"keyword-in-subheadings", GroupAdditional, keywordInSubheadings},
	{"keyword-in-image-alt", GroupAdditional, keywordInImageAlt},
	{"keyword-density", GroupAdditional, keywordDensity},
	{"url-length", GroupAdditional, urlLength},
	{"external-links", GroupAdditional, externalLinks},
	{"internal-links", GroupAdditional, internalLinks},

	{"number-in-title", GroupTitleReadability, numberInTitle},

	{"table-of-contents", GroupContentReadability, tableOfContents},
	{"short-paragraphs", GroupContentReadability, shortParagraphs},
	{"has-media", GroupContentReadability, hasMedia},
	{"sentence-length", GroupContentReadability, sentenceLength},
	{"transition-words", GroupContentReadability, transitionWords},
	{"question-in-headings", GroupContentReadability, questionInHeadings},
	{"descriptive-anchor-text", GroupContentReadability, descriptiveAnchorText},
	{"passive-voice", GroupContentReadability, passiveVoice},
}

var localizations = map[Locale]localization{
	LocaleVietnamese: vietnamese,
	LocaleEnglish:    english,
}

var catalogues = map[Locale]*Catalogue{}

func init() {
	for locale, loc := range localizations {
		catalogues[locale] = build(locale, loc)
	}
}

func build(locale Locale, loc localization) *Catalogue {
	rules := make([]Rule, 0, len(definitions))
	for _, def := range definitions {
		text, ok := loc.rules[def.id]
		if !ok {
			panic(fmt.Sprintf("rules: locale %s has no text for %s", locale, def.id))
		}
		rules = append(rules, Rule{
			ID:          def.id,
			Group:       def.group,
			Name:        text.name,
			Description: text.description,
			Check:       def.check(loc.lexicon),
			Messages:    text.messages,
		})
	}
	return NewCatalogue(locale, loc.groupNames, loc.skipMessage, rules)
}

// Default returns the built-in catalogue for locale, falling back to
// Vietnamese for unknown locales.
func Default(locale Locale) *Catalogue {
	if c, ok := catalogues[locale]; ok {
		return c
	}
	return catalogues[DefaultLocale]
}
