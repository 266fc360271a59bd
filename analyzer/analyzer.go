// Package analyzer runs rule catalogues against article contexts, scores
// the outcome and aggregates results across several keyphrases.
package analyzer

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seo-optimizer/contentseo/keyword"
	"github.com/seo-optimizer/contentseo/rules"
)

const (
	primaryWeight   = 0.7
	secondaryWeight = 0.3
)

// Observer is notified about analysis activity. Implementations must be
// safe for concurrent use.
type Observer interface {
	RuleEvaluated(ruleID string, status rules.Status)
	RulePanicked(ruleID string)
	AnalysisCompleted(keyphrases int, elapsed time.Duration)
}

// Analyzer evaluates a rule catalogue. It holds no per-request state and is
// safe for concurrent use.
type Analyzer struct {
	catalogue *rules.Catalogue
	logger    *zap.Logger
	workers   int
	observers []Observer
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used to report recovered rule panics
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithWorkers bounds how many keyphrases are analyzed at once
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithObserver adds an observer
func WithObserver(o Observer) Option {
	return func(a *Analyzer) {
		if o != nil {
			a.observers = append(a.observers, o)
		}
	}
}

// New creates a new Analyzer for the given catalogue
func New(catalogue *rules.Catalogue, opts ...Option) *Analyzer {
	if catalogue == nil {
		catalogue = rules.Default(rules.DefaultLocale)
	}
	a := &Analyzer{
		catalogue: catalogue,
		logger:    zap.NewNop(),
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Catalogue returns the catalogue the analyzer evaluates
func (a *Analyzer) Catalogue() *rules.Catalogue {
	return a.catalogue
}

// RunRule evaluates one rule. A check that panics, or returns an unknown
// status, is reported as skipped with the cause in Data["error"].
func (a *Analyzer) RunRule(rule rules.Rule, ctx rules.Context) RuleResult {
	res := a.check(rule, ctx)
	for _, o := range a.observers {
		o.RuleEvaluated(rule.ID, res.Status)
	}
	return RuleResult{
		ID:      rule.ID,
		Group:   rule.Group,
		Name:    rule.Name,
		Status:  res.Status,
		Message: a.message(rule, res),
		Data:    res.Data,
	}
}

func (a *Analyzer) check(rule rules.Rule, ctx rules.Context) (res rules.Result) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("rule check panicked",
				zap.String("rule", rule.ID),
				zap.String("keyword", ctx.FocusKeyphrase),
				zap.Any("panic", r),
			)
			for _, o := range a.observers {
				o.RulePanicked(rule.ID)
			}
			res = rules.Skip(rules.Data{"error": fmt.Sprint(r)})
		}
	}()

	if rule.Check == nil {
		return rules.Skip(rules.Data{"error": "rule has no check"})
	}
	res = rule.Check(ctx)
	if !res.Status.Valid() {
		a.logger.Warn("rule returned unknown status",
			zap.String("rule", rule.ID),
			zap.String("status", string(res.Status)),
		)
		return rules.Skip(rules.Data{"error": fmt.Sprintf("unknown status %q", res.Status)})
	}
	return res
}

// message renders only the template for the status that occurred
func (a *Analyzer) message(rule rules.Rule, res rules.Result) (msg string) {
	var tmpl rules.Template
	switch res.Status {
	case rules.StatusPass:
		tmpl = rule.Messages.Pass
	case rules.StatusFail:
		tmpl = rule.Messages.Fail
	default:
		tmpl = rule.Messages.Skip
		if tmpl == nil {
			return a.catalogue.SkipMessage()
		}
	}
	if tmpl == nil {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("rule message panicked", zap.String("rule", rule.ID), zap.Any("panic", r))
			msg = a.catalogue.SkipMessage()
		}
	}()
	data := res.Data
	if data == nil {
		data = rules.Data{}
	}
	return tmpl(data)
}

// Analyze runs every rule of the catalogue against ctx in catalogue order
func (a *Analyzer) Analyze(ctx rules.Context) []RuleResult {
	catalogueRules := a.catalogue.Rules()
	results := make([]RuleResult, 0, len(catalogueRules))
	for _, rule := range catalogueRules {
		results = append(results, a.RunRule(rule, ctx))
	}
	return results
}

// AnalyzeGrouped is Group(Analyze(ctx))
func (a *Analyzer) AnalyzeGrouped(ctx rules.Context) []GroupedResults {
	return a.Group(a.Analyze(ctx))
}

// Group partitions results by group. Known groups come first in their fixed
// order; any other group follows in the order it was first seen. Empty
// groups are omitted and results keep their relative order.
func (a *Analyzer) Group(results []RuleResult) []GroupedResults {
	buckets := make(map[rules.Group][]RuleResult)
	var extra []rules.Group
	known := make(map[rules.Group]bool)
	for _, g := range rules.Groups() {
		known[g] = true
	}
	for _, r := range results {
		if _, seen := buckets[r.Group]; !seen && !known[r.Group] {
			extra = append(extra, r.Group)
		}
		buckets[r.Group] = append(buckets[r.Group], r)
	}

	var grouped []GroupedResults
	for _, g := range append(rules.Groups(), extra...) {
		members := buckets[g]
		if len(members) == 0 {
			continue
		}
		c := Count(members)
		grouped = append(grouped, GroupedResults{
			Group:     g,
			GroupName: a.catalogue.GroupName(g),
			Results:   members,
			PassCount: c.Pass,
			FailCount: c.Fail,
			SkipCount: c.Skip,
		})
	}
	return grouped
}

// Score is round(100 × pass / (pass + fail)). Skipped results do not count;
// with nothing scorable the score is 0.
func Score(results []RuleResult) int {
	c := Count(results)
	scorable := c.Pass + c.Fail
	if scorable == 0 {
		return 0
	}
	return int(math.Round(float64(c.Pass) * 100 / float64(scorable)))
}

// OverallScore weights the primary score at 70% and the mean of the
// secondary scores at 30%. Without secondaries it is the primary score.
func OverallScore(primary int, secondary []int) int {
	if len(secondary) == 0 {
		return primary
	}
	sum := 0
	for _, s := range secondary {
		sum += s
	}
	avg := float64(sum) / float64(len(secondary))
	return int(math.Round(primaryWeight*float64(primary) + secondaryWeight*avg))
}

// AnalyzeKeyphrase analyzes base with its focus keyphrase replaced
func (a *Analyzer) AnalyzeKeyphrase(kw string, isPrimary bool, base rules.Context) KeywordResult {
	results := a.Analyze(base.WithKeyphrase(kw))
	for i := range results {
		results[i].Keyword = kw
	}
	return KeywordResult{
		Keyword:        kw,
		IsPrimary:      isPrimary,
		Score:          Score(results),
		Results:        results,
		GroupedResults: a.Group(results),
	}
}

// AnalyzeMultiKeyphrase splits raw on commas and analyzes base once per
// keyphrase. The first keyphrase is primary. Keyphrases are evaluated
// concurrently but returned in input order. Without a primary keyphrase no
// rule runs and the result is empty.
func (a *Analyzer) AnalyzeMultiKeyphrase(raw string, base rules.Context) MultiKeywordResult {
	start := time.Now()
	kp := keyword.Parse(raw)
	if kp.Empty() {
		return MultiKeywordResult{Keywords: []KeywordResult{}}
	}

	all := kp.All()
	results := make([]KeywordResult, len(all))
	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, kw := range all {
		g.Go(func() error {
			results[i] = a.AnalyzeKeyphrase(kw, i == 0, base)
			return nil
		})
	}
	_ = g.Wait()

	secondary := make([]int, 0, len(results)-1)
	for _, r := range results[1:] {
		secondary = append(secondary, r.Score)
	}

	elapsed := time.Since(start)
	for _, o := range a.observers {
		o.AnalysisCompleted(len(all), elapsed)
	}
	a.logger.Debug("analysis completed",
		zap.String("primary", kp.Primary),
		zap.Int("keyphrases", len(all)),
		zap.Duration("elapsed", elapsed),
	)

	return MultiKeywordResult{
		Keywords:         results,
		OverallScore:     OverallScore(results[0].Score, secondary),
		PrimaryKeyphrase: kp.Primary,
	}
}
