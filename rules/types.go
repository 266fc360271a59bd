// Package rules holds the SEO rule model and the localized rule catalogues.
package rules

import (
	"fmt"
	"math"
)

// Group is the category a rule belongs to.
type Group string

const (
	GroupBasic              Group = "basic"
	GroupAdditional         Group = "additional"
	GroupTitleReadability   Group = "title-readability"
	GroupContentReadability Group = "content-readability"
)

var groupOrder = []Group{GroupBasic, GroupAdditional, GroupTitleReadability, GroupContentReadability}

// Groups returns the groups in presentation order.
func Groups() []Group {
	return append([]Group(nil), groupOrder...)
}

// Status is the outcome of a rule check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusPass || s == StatusFail || s == StatusSkip
}

// Context is the article under analysis.
type Context struct {
	Title           string `json:"title" yaml:"title"`
	MetaDescription string `json:"metaDescription" yaml:"metaDescription"`
	Slug            string `json:"slug" yaml:"slug"`
	Content         string `json:"content" yaml:"content"`
	FocusKeyphrase  string `json:"focusKeyphrase" yaml:"focusKeyphrase"`
	// SiteURL is used to tell internal absolute links from external ones.
	SiteURL string `json:"siteUrl,omitempty" yaml:"siteUrl,omitempty"`
}

// WithKeyphrase returns a copy of c with FocusKeyphrase replaced.
func (c Context) WithKeyphrase(keyphrase string) Context {
	c.FocusKeyphrase = keyphrase
	return c
}

// Data carries the values a check computed, for use by message templates.
type Data map[string]any

// Int returns d[key] as an int, or 0.
func (d Data) Int(key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Float returns d[key] as a float64, or 0.
func (d Data) Float(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns d[key] as a bool, or false.
func (d Data) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Result is what a check returns.
type Result struct {
	Status Status
	Data   Data
}

func Pass(data Data) Result { return Result{Status: StatusPass, Data: data} }
func Fail(data Data) Result { return Result{Status: StatusFail, Data: data} }
func Skip(data Data) Result { return Result{Status: StatusSkip, Data: data} }

// Template renders a message from check data. Templates must tolerate
// missing keys.
type Template func(Data) string

// Literal returns a Template that always renders s.
func Literal(s string) Template {
	return func(Data) string { return s }
}

// Messages holds one template per status. A nil Skip falls back to the
// catalogue's default skip message.
type Messages struct {
	Pass Template
	Fail Template
	Skip Template
}

// CheckFunc inspects a context. It must not mutate it.
type CheckFunc func(Context) Result

// Rule is a single named SEO check.
type Rule struct {
	ID          string
	Group       Group
	Name        string
	Description string
	Check       CheckFunc
	Messages    Messages
}

func round1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
