package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-optimizer/contentseo/rules"
)

func check(t *testing.T, id string, ctx rules.Context) rules.Result {
	t.Helper()
	r, ok := rules.Default(rules.LocaleVietnamese).Lookup(id)
	require.True(t, ok, "rule %s not found", id)
	return r.Check(ctx)
}

func message(t *testing.T, locale rules.Locale, id string, status rules.Status, data rules.Data) string {
	t.Helper()
	r, ok := rules.Default(locale).Lookup(id)
	require.True(t, ok)
	switch status {
	case rules.StatusPass:
		return r.Messages.Pass(data)
	case rules.StatusFail:
		return r.Messages.Fail(data)
	}
	return r.Messages.Skip(data)
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("chữ ", n))
}

func TestTitleRules(t *testing.T) {
	ctx := rules.Context{Title: "10 Cách Học Tiếng Anh Hiệu Quả", FocusKeyphrase: "học tiếng anh"}

	assert.Equal(t, rules.StatusPass, check(t, "keyword-in-title", ctx).Status)
	assert.Equal(t, rules.StatusPass, check(t, "number-in-title", ctx).Status)
	assert.Equal(t, rules.StatusPass, check(t, "title-length", ctx).Status)

	miss := check(t, "keyword-in-title", ctx.WithKeyphrase("tiếng pháp"))
	assert.Equal(t, rules.StatusFail, miss.Status)

	assert.Equal(t, rules.StatusSkip, check(t, "keyword-in-title", rules.Context{Title: "x"}).Status)
	assert.Equal(t, rules.StatusFail, check(t, "number-in-title", rules.Context{Title: "Không có số"}).Status)
}

func TestKeywordInTitleMessages(t *testing.T) {
	c := rules.Context{Title: "Học tiếng anh cho người mới bắt đầu", FocusKeyphrase: "học tiếng anh"}
	res := check(t, "keyword-in-title", c)
	require.Equal(t, rules.StatusPass, res.Status)
	assert.True(t, res.Data.Bool("atBeginning"))
	assert.Contains(t, message(t, rules.LocaleVietnamese, "keyword-in-title", res.Status, res.Data), "ở đầu tiêu đề")
}

func TestLengthRules(t *testing.T) {
	short := check(t, "title-length", rules.Context{Title: "Ngắn"})
	assert.Equal(t, rules.StatusFail, short.Status)
	assert.Equal(t, 4, short.Data.Int("length"))
	assert.Contains(t, message(t, rules.LocaleVietnamese, "title-length", short.Status, short.Data), "quá ngắn")

	long := check(t, "description-length", rules.Context{MetaDescription: strings.Repeat("a", 161)})
	assert.Equal(t, rules.StatusFail, long.Status)
	assert.Contains(t, message(t, rules.LocaleEnglish, "description-length", long.Status, long.Data), "too long")

	ok := check(t, "description-length", rules.Context{MetaDescription: strings.Repeat("ê", 120)})
	assert.Equal(t, rules.StatusPass, ok.Status)

	assert.Equal(t, rules.StatusSkip, check(t, "title-length", rules.Context{Title: "   "}).Status)
}

func TestKeywordInURL(t *testing.T) {
	ctx := rules.Context{Slug: "hoc-tieng-anh-hieu-qua", FocusKeyphrase: "Học tiếng Anh"}
	assert.Equal(t, rules.StatusPass, check(t, "keyword-in-url", ctx).Status)

	ctx.Slug = "about-us"
	assert.Equal(t, rules.StatusFail, check(t, "keyword-in-url", ctx).Status)

	ctx.Slug = ""
	assert.Equal(t, rules.StatusSkip, check(t, "keyword-in-url", ctx).Status)
}

func TestKeywordPositionRules(t *testing.T) {
	body := "học tiếng anh " + words(100) + " kết thúc bài"
	ctx := rules.Context{Content: body, FocusKeyphrase: "học tiếng anh"}

	assert.Equal(t, rules.StatusPass, check(t, "keyword-in-first-10-percent", ctx).Status)
	assert.Equal(t, rules.StatusFail, check(t, "keyword-in-end", ctx).Status)

	ctx.FocusKeyphrase = "kết thúc bài"
	assert.Equal(t, rules.StatusFail, check(t, "keyword-in-first-10-percent", ctx).Status)
	assert.Equal(t, rules.StatusPass, check(t, "keyword-in-end", ctx).Status)

	tiny := check(t, "keyword-in-end", rules.Context{Content: "học tiếng anh", FocusKeyphrase: "học tiếng anh"})
	assert.Equal(t, rules.StatusSkip, tiny.Status)
	assert.Equal(t, 3, tiny.Data.Int("wordCount"))
	assert.Equal(t, "Nội dung chỉ có 3 từ, quá ngắn để xét vị trí từ khóa (cần ít nhất 10 từ).",
		message(t, rules.LocaleVietnamese, "keyword-in-end", tiny.Status, tiny.Data))
	assert.Contains(t, message(t, rules.LocaleEnglish, "keyword-in-first-10-percent", tiny.Status, tiny.Data), "only 3 words")

	missing := check(t, "keyword-in-first-10-percent", rules.Context{Content: body})
	assert.Equal(t, rules.StatusSkip, missing.Status)
	assert.Equal(t, "Cần có nội dung và từ khóa chính để phân tích.",
		message(t, rules.LocaleVietnamese, "keyword-in-first-10-percent", missing.Status, missing.Data))
}

func TestContentLength(t *testing.T) {
	res := check(t, "content-length", rules.Context{Content: words(600)})
	assert.Equal(t, rules.StatusPass, res.Status)
	assert.Equal(t, "Nội dung dài 600 từ. Tạm ổn.", message(t, rules.LocaleVietnamese, "content-length", res.Status, res.Data))

	res = check(t, "content-length", rules.Context{Content: words(10)})
	assert.Equal(t, rules.StatusFail, res.Status)
	assert.Contains(t, message(t, rules.LocaleVietnamese, "content-length", res.Status, res.Data), "chỉ có 10 từ")

	assert.Contains(t, message(t, rules.LocaleVietnamese, "content-length", rules.StatusPass, rules.Data{"wordCount": 2500}), "Tuyệt vời")
	assert.Equal(t, rules.StatusSkip, check(t, "content-length", rules.Context{}).Status)
}

func TestKeywordDensity(t *testing.T) {
	ctx := rules.Context{Content: "seo " + words(99), FocusKeyphrase: "seo"}
	res := check(t, "keyword-density", ctx)
	assert.Equal(t, rules.StatusPass, res.Status)
	assert.InDelta(t, 1.0, res.Data.Float("density"), 1e-9)
	assert.Equal(t, "Mật độ từ khóa: 1.0% (1 lần). Tốt!", message(t, rules.LocaleVietnamese, "keyword-density", res.Status, res.Data))

	ctx.Content = words(100)
	res = check(t, "keyword-density", ctx)
	assert.Equal(t, rules.StatusFail, res.Status)
	assert.Contains(t, message(t, rules.LocaleVietnamese, "keyword-density", res.Status, res.Data), "quá thấp")

	ctx.Content = words(99)
	assert.Equal(t, rules.StatusSkip, check(t, "keyword-density", ctx).Status)
}

func TestSubheadingAndImageRules(t *testing.T) {
	body := "## Học tiếng Anh mỗi ngày\n\n![Học tiếng anh với bạn](a.png)"
	ctx := rules.Context{Content: body, FocusKeyphrase: "học tiếng anh"}

	assert.Equal(t, rules.StatusPass, check(t, "keyword-in-subheadings", ctx).Status)
	assert.Equal(t, rules.StatusPass, check(t, "keyword-in-image-alt", ctx).Status)

	ctx.FocusKeyphrase = "toán"
	assert.Equal(t, rules.StatusFail, check(t, "keyword-in-subheadings", ctx).Status)
	assert.Equal(t, rules.StatusFail, check(t, "keyword-in-image-alt", ctx).Status)

	ctx.Content = "chỉ có chữ"
	assert.Equal(t, rules.StatusSkip, check(t, "keyword-in-subheadings", ctx).Status)
	assert.Equal(t, rules.StatusSkip, check(t, "keyword-in-image-alt", ctx).Status)
}

func TestURLLength(t *testing.T) {
	assert.Equal(t, rules.StatusPass, check(t, "url-length", rules.Context{Slug: strings.Repeat("a", 75)}).Status)
	res := check(t, "url-length", rules.Context{Slug: strings.Repeat("a", 76)})
	assert.Equal(t, rules.StatusFail, res.Status)
	assert.Equal(t, 76, res.Data.Int("urlLength"))
}

func TestLinkRules(t *testing.T) {
	body := `<a href="https://wikipedia.org/wiki/SEO" rel="nofollow">Wiki</a> [giới thiệu](/gioi-thieu) [trang chủ](https://example.com/)`
	ctx := rules.Context{Content: body, SiteURL: "https://example.com"}

	ext := check(t, "external-links", ctx)
	assert.Equal(t, rules.StatusPass, ext.Status)
	assert.Equal(t, 1, ext.Data.Int("externalCount"))
	assert.Equal(t, 0, ext.Data.Int("dofollowCount"))
	assert.Contains(t, message(t, rules.LocaleVietnamese, "external-links", ext.Status, ext.Data), "nofollow")

	in := check(t, "internal-links", ctx)
	assert.Equal(t, rules.StatusPass, in.Status)
	assert.Equal(t, 2, in.Data.Int("internalCount"))

	none := rules.Context{Content: "không có liên kết"}
	assert.Equal(t, rules.StatusFail, check(t, "external-links", none).Status)
	assert.Equal(t, rules.StatusFail, check(t, "internal-links", none).Status)
}

func TestTableOfContents(t *testing.T) {
	assert.Equal(t, rules.StatusSkip, check(t, "table-of-contents", rules.Context{Content: words(1499)}).Status)
	assert.Equal(t, rules.StatusFail, check(t, "table-of-contents", rules.Context{Content: words(1500)}).Status)
	assert.Equal(t, rules.StatusPass, check(t, "table-of-contents", rules.Context{Content: "[TOC]\n\n" + words(1500)}).Status)
}

func TestShortParagraphs(t *testing.T) {
	ok := check(t, "short-paragraphs", rules.Context{Content: words(120) + "\n\n" + words(10)})
	assert.Equal(t, rules.StatusPass, ok.Status)

	long := check(t, "short-paragraphs", rules.Context{Content: "<p>" + words(121) + "</p><p>ngắn</p>"})
	assert.Equal(t, rules.StatusFail, long.Status)
	assert.Equal(t, 1, long.Data.Int("longParagraphs"))
	assert.Equal(t, "Có 1 đoạn văn quá dài (>120 từ). Hãy chia nhỏ hơn.", message(t, rules.LocaleVietnamese, "short-paragraphs", long.Status, long.Data))
}

func TestHasMedia(t *testing.T) {
	res := check(t, "has-media", rules.Context{Content: "![ảnh](a.png) xem https://youtu.be/abc"})
	assert.Equal(t, rules.StatusPass, res.Status)
	assert.Equal(t, 1, res.Data.Int("imageCount"))
	assert.Equal(t, 1, res.Data.Int("videoCount"))
	assert.Equal(t, rules.StatusFail, check(t, "has-media", rules.Context{Content: "chỉ có chữ"}).Status)
}

func TestSentenceLength(t *testing.T) {
	short := "Câu ngắn. Một câu khác. Thêm câu nữa. Câu cuối."
	assert.Equal(t, rules.StatusPass, check(t, "sentence-length", rules.Context{Content: short}).Status)

	long := words(21) + ". Câu ngắn. " + words(25) + "."
	res := check(t, "sentence-length", rules.Context{Content: long})
	assert.Equal(t, rules.StatusFail, res.Status)
	assert.Equal(t, 2, res.Data.Int("longCount"))
}

func TestTransitionWords(t *testing.T) {
	good := "Tuy nhiên, " + words(198)
	res := check(t, "transition-words", rules.Context{Content: good})
	assert.Equal(t, rules.StatusPass, res.Status)
	assert.Equal(t, 1, res.Data.Int("transitionCount"))

	assert.Equal(t, rules.StatusFail, check(t, "transition-words", rules.Context{Content: words(200)}).Status)
	assert.Equal(t, rules.StatusSkip, check(t, "transition-words", rules.Context{Content: words(199)}).Status)
}

func TestTransitionWordsKeepDiacritics(t *testing.T) {
	// "những" is a plural marker, not the transition word "nhưng".
	body := strings.Repeat("Những học sinh đến trường mỗi ngày vào buổi sáng sớm. ", 25)
	res := check(t, "transition-words", rules.Context{Content: body})
	assert.Equal(t, rules.StatusFail, res.Status)
	assert.Equal(t, 0, res.Data.Int("transitionCount"))
	assert.Equal(t, 275, res.Data.Int("wordCount"))

	res = check(t, "transition-words", rules.Context{Content: "NHƯNG " + body})
	assert.Equal(t, 1, res.Data.Int("transitionCount"))
}

func TestQuestionInHeadings(t *testing.T) {
	assert.Equal(t, rules.StatusPass, check(t, "question-in-headings", rules.Context{Content: "## Tại sao nên học tiếng Anh"}).Status)
	assert.Equal(t, rules.StatusPass, check(t, "question-in-headings", rules.Context{Content: "<h2>Học bao lâu?</h2>"}).Status)
	assert.Equal(t, rules.StatusFail, check(t, "question-in-headings", rules.Context{Content: "## Giới thiệu"}).Status)
	assert.Equal(t, rules.StatusSkip, check(t, "question-in-headings", rules.Context{Content: "không có tiêu đề"}).Status)

	unaccented := check(t, "question-in-headings", rules.Context{Content: "## Tai sao\n\n## Tài sản"})
	assert.Equal(t, rules.StatusFail, unaccented.Status)
	assert.Equal(t, 0, unaccented.Data.Int("questionCount"))
}

func TestDescriptiveAnchorText(t *testing.T) {
	generic := check(t, "descriptive-anchor-text", rules.Context{Content: `<a href="/x">Xem thêm</a> [hướng dẫn](/y)`})
	assert.Equal(t, rules.StatusFail, generic.Status)
	assert.Equal(t, 1, generic.Data.Int("genericCount"))

	assert.Equal(t, rules.StatusPass, check(t, "descriptive-anchor-text", rules.Context{Content: "[hướng dẫn học tiếng anh](/y)"}).Status)
	assert.Equal(t, rules.StatusSkip, check(t, "descriptive-anchor-text", rules.Context{Content: "không có liên kết"}).Status)
}

func TestPassiveVoiceOnlyReports(t *testing.T) {
	res := check(t, "passive-voice", rules.Context{Content: "Bài viết được viết bởi tôi. Nó bị lỗi."})
	assert.Equal(t, rules.StatusSkip, res.Status)
	assert.Equal(t, 2, res.Data.Int("passiveCount"))
	assert.Contains(t, message(t, rules.LocaleVietnamese, "passive-voice", res.Status, res.Data), "Tìm thấy 2")

	res = check(t, "passive-voice", rules.Context{Content: "Đây là bí mật. Bỉ là một quốc gia."})
	assert.Equal(t, 0, res.Data.Int("passiveCount"))

	en, ok := rules.Default(rules.LocaleEnglish).Lookup("passive-voice")
	require.True(t, ok)
	res = en.Check(rules.Context{Content: "The cake was eaten. The ball was blue."})
	assert.Equal(t, rules.StatusSkip, res.Status)
	assert.Equal(t, 1, res.Data.Int("passiveCount"))
}
