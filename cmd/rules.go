package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seo-optimizer/contentseo/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalogue",
	RunE:  runRules,
}

var rulesLocale string

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringVarP(&rulesLocale, "locale", "l", "", "Catalogue locale (vi or en), defaults to the configured locale")
}

func runRules(cmd *cobra.Command, args []string) error {
	locale, err := resolveLocale(rulesLocale)
	if err != nil {
		return err
	}
	cat := rules.Default(locale)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGROUP\tNAME")
	for _, r := range cat.Rules() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, cat.GroupName(r.Group), r.Name)
	}
	return w.Flush()
}

// resolveLocale parses flag, falling back to the configured locale.
func resolveLocale(flag string) (rules.Locale, error) {
	if flag != "" {
		return rules.ParseLocale(flag)
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Locale(), nil
}
