package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/seo-optimizer/contentseo/analyzer"
	"github.com/seo-optimizer/contentseo/rules"
)

var statusMarks = map[rules.Status]string{
	rules.StatusPass: "[+]",
	rules.StatusFail: "[x]",
	rules.StatusSkip: "[-]",
}

func writeText(w io.Writer, result analyzer.MultiKeywordResult) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Overall score: %d/100\n", result.OverallScore)

	for _, kw := range result.Keywords {
		role := "secondary"
		if kw.IsPrimary {
			role = "primary"
		}
		fmt.Fprintf(bw, "\n%q (%s) score %d/100\n", kw.Keyword, role, kw.Score)
		for _, g := range kw.GroupedResults {
			fmt.Fprintf(bw, "  %s (%d passed, %d failed)\n", g.GroupName, g.PassCount, g.FailCount)
			for _, r := range g.Results {
				fmt.Fprintf(bw, "    %s %s: %s\n", statusMarks[r.Status], r.Name, r.Message)
			}
		}
	}
	return bw.Flush()
}
