package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/seo-optimizer/contentseo/analyzer"
	"github.com/seo-optimizer/contentseo/config"
	"github.com/seo-optimizer/contentseo/logging"
	"github.com/seo-optimizer/contentseo/page"
	"github.com/seo-optimizer/contentseo/rules"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one article",
	Long: `Analyze an article for one or more comma separated keyphrases.

The body is read from --file, fetched from --url, or read from stdin.
With --url the title, description and slug come from the page unless
given explicitly.`,
	Example: `  contentseo analyze --keyphrase "học tiếng anh, tiếng anh" --title "10 Cách Học Tiếng Anh" --file post.html
  contentseo analyze --keyphrase "go modules" --url https://example.com/blog/go-modules --format json`,
	RunE: runAnalyze,
}

type analyzeFlags struct {
	keyphrase   string
	title       string
	description string
	slug        string
	siteURL     string
	file        string
	url         string
	format      string
	locale      string
}

var analyzeOpts analyzeFlags

func init() {
	rootCmd.AddCommand(analyzeCmd)
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeOpts.keyphrase, "keyphrase", "k", "", "Comma separated keyphrases, the first is primary")
	f.StringVarP(&analyzeOpts.title, "title", "t", "", "SEO title")
	f.StringVarP(&analyzeOpts.description, "description", "d", "", "Meta description")
	f.StringVarP(&analyzeOpts.slug, "slug", "s", "", "URL slug")
	f.StringVar(&analyzeOpts.siteURL, "site-url", "", "Site URL used to classify internal links")
	f.StringVarP(&analyzeOpts.file, "file", "f", "", "Read content from a file (- for stdin)")
	f.StringVarP(&analyzeOpts.url, "url", "u", "", "Fetch the article from a URL")
	f.StringVarP(&analyzeOpts.format, "format", "o", "text", "Output format: text, json or yaml")
	f.StringVarP(&analyzeOpts.locale, "locale", "l", "", "Catalogue locale (vi or en)")
	_ = analyzeCmd.MarkFlagRequired("keyphrase")
	analyzeCmd.MarkFlagsMutuallyExclusive("file", "url")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	locale := cfg.Locale()
	if analyzeOpts.locale != "" {
		if locale, err = rules.ParseLocale(analyzeOpts.locale); err != nil {
			return err
		}
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	base, err := buildContext(cmd.Context(), cmd.InOrStdin(), cfg, logger)
	if err != nil {
		return err
	}

	a := analyzer.New(rules.Default(locale),
		analyzer.WithLogger(logger.Named("analyzer")),
		analyzer.WithWorkers(cfg.Analysis.Workers),
	)
	result := a.AnalyzeMultiKeyphrase(analyzeOpts.keyphrase, base)
	if len(result.Keywords) == 0 {
		return errors.New("no keyphrase given")
	}

	return writeResult(cmd.OutOrStdout(), analyzeOpts.format, result)
}

// buildContext assembles the article from flags plus the selected source.
func buildContext(ctx context.Context, stdin io.Reader, cfg *config.Config, logger *zap.Logger) (rules.Context, error) {
	var base rules.Context
	if analyzeOpts.url != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		format := page.FormatHTML
		if cfg.Fetch.ConvertToMarkdown {
			format = page.FormatMarkdown
		}
		fetcher := page.NewFetcher(page.Options{
			Timeout:   cfg.Fetch.Timeout,
			UserAgent: cfg.Fetch.UserAgent,
			Format:    format,
		}, page.WithLogger(logger.Named("fetcher")))
		p, err := fetcher.Fetch(ctx, analyzeOpts.url)
		if err != nil {
			return base, err
		}
		base = p.Context("")
	} else {
		content, err := readContent(stdin, analyzeOpts.file)
		if err != nil {
			return base, err
		}
		base.Content = content
		base.SiteURL = cfg.Analysis.SiteURL
	}

	if analyzeOpts.title != "" {
		base.Title = analyzeOpts.title
	}
	if analyzeOpts.description != "" {
		base.MetaDescription = analyzeOpts.description
	}
	if analyzeOpts.slug != "" {
		base.Slug = analyzeOpts.slug
	}
	if analyzeOpts.siteURL != "" {
		base.SiteURL = analyzeOpts.siteURL
	}
	return base, nil
}

func readContent(stdin io.Reader, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "" || file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

func writeResult(w io.Writer, format string, result analyzer.MultiKeywordResult) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case "", "text":
		return writeText(w, result)
	}
	return fmt.Errorf("unsupported output format %q", format)
}
