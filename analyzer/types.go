package analyzer

import "github.com/seo-optimizer/contentseo/rules"

// RuleResult is the outcome of one rule for one keyphrase
type RuleResult struct {
	ID      string       `json:"id" yaml:"id"`
	Group   rules.Group  `json:"group" yaml:"group"`
	Name    string       `json:"name" yaml:"name"`
	Status  rules.Status `json:"status" yaml:"status"`
	Message string       `json:"message" yaml:"message"`
	Keyword string       `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Data    rules.Data   `json:"data,omitempty" yaml:"data,omitempty"`
}

// GroupedResults holds the results of one group in rule order
type GroupedResults struct {
	Group     rules.Group  `json:"group" yaml:"group"`
	GroupName string       `json:"groupName" yaml:"groupName"`
	Results   []RuleResult `json:"results" yaml:"results"`
	PassCount int          `json:"passCount" yaml:"passCount"`
	FailCount int          `json:"failCount" yaml:"failCount"`
	SkipCount int          `json:"skipCount" yaml:"skipCount"`
}

// KeywordResult is the full analysis for a single keyphrase
type KeywordResult struct {
	Keyword        string           `json:"keyword" yaml:"keyword"`
	IsPrimary      bool             `json:"isPrimary" yaml:"isPrimary"`
	Score          int              `json:"score" yaml:"score"`
	Results        []RuleResult     `json:"results" yaml:"results"`
	GroupedResults []GroupedResults `json:"groupedResults" yaml:"groupedResults"`
}

// MultiKeywordResult is the analysis of a comma separated keyphrase list
type MultiKeywordResult struct {
	Keywords         []KeywordResult `json:"keywords" yaml:"keywords"`
	OverallScore     int             `json:"overallScore" yaml:"overallScore"`
	PrimaryKeyphrase string          `json:"primaryKeyphrase" yaml:"primaryKeyphrase"`
}

// Counts tallies results by status
type Counts struct {
	Pass int `json:"pass"`
	Fail int `json:"fail"`
	Skip int `json:"skip"`
}

// Count tallies results by status. Statuses outside the three known ones
// are not counted.
func Count(results []RuleResult) Counts {
	var c Counts
	for _, r := range results {
		switch r.Status {
		case rules.StatusPass:
			c.Pass++
		case rules.StatusFail:
			c.Fail++
		case rules.StatusSkip:
			c.Skip++
		}
	}
	return c
}
