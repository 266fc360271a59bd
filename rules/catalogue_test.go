package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/contentseo/rules"
)

var expectedOrder = []string{
	"keyword-in-title", "title-length", "keyword-in-description", "description-length",
	"keyword-in-url", "keyword-in-first-10-percent", "keyword-in-end", "content-length",
	"keyword-in-subheadings", "keyword-in-image-alt", "keyword-density", "url-length",
	"external-links", "internal-links",
	"number-in-title",
	"table-of-contents", "short-paragraphs", "has-media", "sentence-length",
	"transition-words", "question-in-headings", "descriptive-anchor-text", "passive-voice",
}

func ids(c *rules.Catalogue) []string {
	var out []string
	for _, r := range c.Rules() {
		out = append(out, r.ID)
	}
	return out
}

func TestDefaultCatalogues(t *testing.T) {
	for _, locale := range rules.Locales() {
		t.Run(string(locale), func(t *testing.T) {
			c := rules.Default(locale)

			require.Equal(t, locale, c.Locale())
			assert.Equal(t, expectedOrder, ids(c))
			assert.NotEmpty(t, c.SkipMessage())

			valid := map[rules.Group]bool{}
			for _, g := range rules.Groups() {
				valid[g] = true
				assert.NotEqual(t, string(g), c.GroupName(g), "group %s has no display name", g)
			}
			for _, r := range c.Rules() {
				assert.True(t, valid[r.Group], "rule %s has unknown group %s", r.ID, r.Group)
				assert.NotEmpty(t, r.Name, r.ID)
				assert.NotEmpty(t, r.Description, r.ID)
				assert.NotNil(t, r.Check, r.ID)
				assert.NotNil(t, r.Messages.Pass, r.ID)
				assert.NotNil(t, r.Messages.Fail, r.ID)
			}
		})
	}
}

func TestDefaultFallsBackToVietnamese(t *testing.T) {
	assert.Same(t, rules.Default(rules.LocaleVietnamese), rules.Default("fr"))
}

func TestParseLocale(t *testing.T) {
	l, err := rules.ParseLocale(" EN ")
	require.NoError(t, err)
	assert.Equal(t, rules.LocaleEnglish, l)

	l, err = rules.ParseLocale("")
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultLocale, l)

	_, err = rules.ParseLocale("fr")
	assert.Error(t, err)
}

func TestCatalogueLookupAndFilter(t *testing.T) {
	c := rules.Default(rules.LocaleVietnamese)

	r, ok := c.Lookup("url-length")
	require.True(t, ok)
	assert.Equal(t, rules.GroupAdditional, r.Group)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)

	basic := c.Filter(func(r rules.Rule) bool { return r.Group == rules.GroupBasic })
	assert.Equal(t, 8, basic.Len())
	assert.Equal(t, c.GroupName(rules.GroupBasic), basic.GroupName(rules.GroupBasic))
	assert.Equal(t, 23, c.Len(), "filter must not change the source catalogue")
}

func TestNewCatalogueGroupNameFallback(t *testing.T) {
	c := rules.NewCatalogue(rules.LocaleEnglish, nil, "skip", nil)
	assert.Equal(t, "basic", c.GroupName(rules.GroupBasic))
	assert.Zero(t, c.Len())
}

func TestDataAccessors(t *testing.T) {
	d := rules.Data{"i": 3, "f": 1.5, "b": true, "s": "x"}
	assert.Equal(t, 3, d.Int("i"))
	assert.Equal(t, 1, d.Int("f"))
	assert.Equal(t, 1.5, d.Float("f"))
	assert.Equal(t, 3.0, d.Float("i"))
	assert.True(t, d.Bool("b"))
	assert.Zero(t, d.Int("missing"))
	assert.Zero(t, d.Int("s"))

	var empty rules.Data
	assert.False(t, empty.Bool("b"))
}
