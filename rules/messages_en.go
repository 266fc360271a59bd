package rules

import "fmt"

var english = localization{
	groupNames: map[Group]string{
		GroupBasic:              "Basic SEO",
		GroupAdditional:         "Additional",
		GroupTitleReadability:   "Title Readability",
		GroupContentReadability: "Content Readability",
	},
	skipMessage: "Skipped.",
	lexicon: Lexicon{
		TransitionWords: []string{
			"however", "therefore", "moreover", "furthermore", "in addition", "for example",
			"for instance", "in conclusion", "in summary", "on the other hand", "consequently",
			"nevertheless", "meanwhile", "similarly", "in contrast", "as a result", "first",
			"second", "finally", "also", "because", "although", "in other words", "specifically",
		},
		QuestionWords:   []string{"how", "why", "what", "when", "where", "who", "which"},
		GenericAnchors:  []string{"click here", "here", "read more", "more", "this link", "link", "learn more"},
		PassiveMarkers:  []string{"is", "are", "was", "were", "be", "been", "being"},
		PassiveSuffixes: []string{"ed", "en"},
	},
	rules: map[string]ruleText{
		"keyword-in-title": {
			name:        "Keyphrase in SEO title",
			description: "The focus keyphrase should appear in the SEO title, ideally at the start",
			messages: Messages{
				Pass: func(d Data) string {
					if d.Bool("atBeginning") {
						return "Great! The focus keyphrase appears at the beginning of the SEO title."
					}
					return "The focus keyphrase appears in the title. Moving it to the start is even better."
				},
				Fail: Literal("The focus keyphrase does not appear in the SEO title. Add it!"),
				Skip: Literal("A title and a focus keyphrase are needed for this check."),
			},
		},
		"title-length": {
			name:        "SEO title length",
			description: "The title should be between 30 and 60 characters",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("The title is %d characters long. Ideal length!", d.Int("length"))
				},
				Fail: func(d Data) string {
					if d.Int("length") < titleMinLength {
						return fmt.Sprintf("The title is too short (%d characters). Use at least %d.", d.Int("length"), titleMinLength)
					}
					return fmt.Sprintf("The title is too long (%d characters). Keep it under %d.", d.Int("length"), titleMaxLength)
				},
				Skip: Literal("There is no title to analyze."),
			},
		},
		"keyword-in-description": {
			name:        "Keyphrase in meta description",
			description: "The focus keyphrase should appear in the meta description",
			messages: Messages{
				Pass: Literal("The focus keyphrase appears in the meta description."),
				Fail: Literal("The meta description does not contain the focus keyphrase."),
				Skip: Literal("A meta description and a focus keyphrase are needed for this check."),
			},
		},
		"description-length": {
			name:        "Meta description length",
			description: "The meta description should be between 120 and 160 characters",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("The meta description is %d characters long. Well done!", d.Int("length"))
				},
				Fail: func(d Data) string {
					if d.Int("length") < descriptionMinLength {
						return fmt.Sprintf("The meta description is too short (%d characters). Use at least %d.", d.Int("length"), descriptionMinLength)
					}
					return fmt.Sprintf("The meta description is too long (%d characters). Keep it under %d.", d.Int("length"), descriptionMaxLength)
				},
				Skip: Literal("There is no meta description to analyze."),
			},
		},
		"keyword-in-url": {
			name:        "Keyphrase in URL",
			description: "The focus keyphrase should appear in the URL slug",
			messages: Messages{
				Pass: Literal("The focus keyphrase is used in the URL."),
				Fail: Literal("The URL does not contain the focus keyphrase."),
				Skip: Literal("A URL slug and a focus keyphrase are needed for this check."),
			},
		},
		"keyword-in-first-10-percent": {
			name:        "Keyphrase in introduction",
			description: "The focus keyphrase should appear in the first 10% of the content",
			messages: Messages{
				Pass: Literal("The focus keyphrase appears in the first 10% of the content."),
				Fail: Literal("The focus keyphrase does not appear at the start of the content."),
				Skip: func(d Data) string {
					if n := d.Int("wordCount"); n > 0 {
						return fmt.Sprintf("The content has only %d words, too short to judge keyphrase position (at least %d needed).", n, positionMinWords)
					}
					return "Content and a focus keyphrase are needed for this check."
				},
			},
		},
		"keyword-in-end": {
			name:        "Keyphrase in conclusion",
			description: "The focus keyphrase should appear again in the last 10% of the content",
			messages: Messages{
				Pass: Literal("The focus keyphrase is repeated in the conclusion."),
				Fail: Literal("Repeat the focus keyphrase in the conclusion to reinforce the topic."),
				Skip: func(d Data) string {
					if n := d.Int("wordCount"); n > 0 {
						return fmt.Sprintf("The content has only %d words, too short to judge keyphrase position (at least %d needed).", n, positionMinWords)
					}
					return "Content and a focus keyphrase are needed for this check."
				},
			},
		},
		"content-length": {
			name:        "Content length",
			description: "Content should have at least 600 words",
			messages: Messages{
				Pass: func(d Data) string {
					n := d.Int("wordCount")
					switch {
					case n >= contentBestWords:
						return fmt.Sprintf("This piece is %d words long. Excellent for in-depth SEO!", n)
					case n >= contentGoodWords:
						return fmt.Sprintf("The content is %d words long. Very good!", n)
					}
					return fmt.Sprintf("The content is %d words long. Acceptable.", n)
				},
				Fail: func(d Data) string {
					return fmt.Sprintf("The content has only %d words. Recommended: %d (acceptable), %d (good), %d (excellent).",
						d.Int("wordCount"), contentMinWords, contentGoodWords, contentBestWords)
				},
				Skip: Literal("There is no content to analyze."),
			},
		},

		"keyword-in-subheadings": {
			name:        "Keyphrase in subheadings",
			description: "The focus keyphrase should appear in at least one subheading (H2-H6)",
			messages: Messages{
				Pass: Literal("The focus keyphrase appears in a subheading."),
				Fail: Literal("Add the focus keyphrase to at least one subheading (H2-H6)."),
				Skip: Literal("No subheadings were found in the content."),
			},
		},
		"keyword-in-image-alt": {
			name:        "Keyphrase in image alt text",
			description: "The focus keyphrase should appear in the alt attribute of at least one image",
			messages: Messages{
				Pass: Literal("The focus keyphrase appears in an image alt text."),
				Fail: Literal("No image has alt text containing the focus keyphrase."),
				Skip: Literal("No images were found in the content."),
			},
		},
		"keyword-density": {
			name:        "Keyphrase density",
			description: "Keyphrase density should be between 0.5% and 2.5%",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Keyphrase density: %s%% (%d times). Good!", round1(d.Float("density")), d.Int("occurrences"))
				},
				Fail: func(d Data) string {
					if d.Float("density") < densityMin {
						return fmt.Sprintf("Keyphrase density is too low: %s%%. Aim for %v%% to %v%%.", round1(d.Float("density")), densityMin, densityMax)
					}
					return fmt.Sprintf("Keyphrase density is too high: %s%%. Aim for %v%% to %v%%.", round1(d.Float("density")), densityMin, densityMax)
				},
				Skip: Literal("The content is too short to measure keyphrase density."),
			},
		},
		"url-length": {
			name:        "URL length",
			description: "The URL should be short, no more than 75 characters",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("The URL is %d characters long. Good!", d.Int("urlLength"))
				},
				Fail: func(d Data) string {
					return fmt.Sprintf("The URL is too long (%d characters). Keep it under %d.", d.Int("urlLength"), urlMaxLength)
				},
				Skip: Literal("There is no URL slug to analyze."),
			},
		},
		"external-links": {
			name:        "Outbound links",
			description: "Content should link to other websites",
			messages: Messages{
				Pass: func(d Data) string {
					if d.Int("dofollowCount") > 0 {
						return fmt.Sprintf("Found %d outbound links (%d dofollow).", d.Int("externalCount"), d.Int("dofollowCount"))
					}
					return fmt.Sprintf("Found %d outbound links (all nofollow).", d.Int("externalCount"))
				},
				Fail: Literal("The content has no outbound links. Link to trustworthy external sources."),
				Skip: Literal("There is no content to analyze."),
			},
		},
		"internal-links": {
			name:        "Internal links",
			description: "Content should link to other pages of the same site",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Found %d internal links.", d.Int("internalCount"))
				},
				Fail: Literal("The content has no internal links. Link to related articles on your site."),
				Skip: Literal("There is no content to analyze."),
			},
		},

		"number-in-title": {
			name:        "Number in title",
			description: "Titles containing a number tend to attract more attention",
			messages: Messages{
				Pass: Literal("Your title contains a number. Great!"),
				Fail: Literal("Consider adding a number to the title to attract more attention."),
				Skip: Literal("There is no title to analyze."),
			},
		},

		"table-of-contents": {
			name:        "Table of contents",
			description: "Long content should have a table of contents for easier navigation",
			messages: Messages{
				Pass: Literal("It looks like you are using a table of contents to break up the text."),
				Fail: Literal("The content is long. Consider adding a table of contents."),
				Skip: Literal("The content is not long enough to need a table of contents."),
			},
		},
		"short-paragraphs": {
			name:        "Short paragraphs",
			description: "Paragraphs should stay under 120 words",
			messages: Messages{
				Pass: Literal("You are using short paragraphs. Good!"),
				Fail: func(d Data) string {
					return fmt.Sprintf("%d paragraphs are too long (>%d words). Split them up.", d.Int("longParagraphs"), paragraphMaxWords)
				},
				Skip: Literal("No paragraphs were found in the content."),
			},
		},
		"has-media": {
			name:        "Images or videos",
			description: "Content should include images or videos to increase engagement",
			messages: Messages{
				Pass: Literal("Your content contains images and/or videos."),
				Fail: Literal("Add images or videos to the content."),
				Skip: Literal("There is no content to analyze."),
			},
		},
		"sentence-length": {
			name:        "Sentence length",
			description: "No more than 25% of sentences should exceed 20 words",
			messages: Messages{
				Pass: Literal("Sentence length is fine."),
				Fail: func(d Data) string {
					return fmt.Sprintf("%.0f%% of sentences are too long (>%d words). Keep it under %.0f%%.", d.Float("percentage"), sentenceMaxWords, longSentenceMaxPct)
				},
				Skip: Literal("No sentences were found in the content."),
			},
		},
		"transition-words": {
			name:        "Transition words",
			description: "Transition words (however, therefore, ...) make the text flow better",
			messages: Messages{
				Pass: func(d Data) string {
					return fmt.Sprintf("Well done! You used %d transition words (%v%%).", d.Int("transitionCount"), d.Float("percentage"))
				},
				Fail: func(d Data) string {
					return fmt.Sprintf("The text reads a bit dry (%v%% transition words). Add words like \"however\", \"therefore\" or \"in addition\".", d.Float("percentage"))
				},
				Skip: Literal("The text is too short to judge its flow."),
			},
		},
		"question-in-headings": {
			name:        "Questions in subheadings",
			description: "Question subheadings help the article reach featured snippets",
			messages: Messages{
				Pass: Literal("Great! You have a question in a subheading, which helps with featured snippets."),
				Fail: Literal("Add at least one question subheading (for example \"Why...?\" or \"How...?\") to improve featured snippet chances."),
				Skip: Literal("No subheadings were found to analyze."),
			},
		},
		"descriptive-anchor-text": {
			name:        "Descriptive anchor text",
			description: "Avoid generic anchor texts such as \"click here\" or \"read more\"",
			messages: Messages{
				Pass: Literal("Your links use descriptive anchor text."),
				Fail: Literal("Some links use generic text such as \"click here\" or \"read more\". Describe the target page instead."),
				Skip: Literal("No links were found to analyze."),
			},
		},
		"passive-voice": {
			name:        "Passive voice",
			description: "Limit passive constructions to keep the text direct",
			messages: Messages{
				Pass: Literal("The text uses little passive voice."),
				Fail: Literal("The text uses a lot of passive voice."),
				Skip: func(d Data) string {
					if _, ok := d["passiveCount"]; !ok {
						return "There is no content to analyze."
					}
					return fmt.Sprintf("Found %d passive constructions in %d sentences. For reference only.", d.Int("passiveCount"), d.Int("sentenceCount"))
				},
			},
		},
	},
}
