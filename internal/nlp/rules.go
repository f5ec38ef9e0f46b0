// Package nlp implements the keyword-driven stand-ins for text
// classification: chat intent detection and task duration prediction.
package nlp

import "strings"

// Predicate reports whether a rule applies to lowercased input text.
type Predicate func(text string) bool

// AnyKeyword matches when text contains at least one of the keywords.
func AnyKeyword(keywords ...string) Predicate {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

// Rule pairs a predicate with the result it selects.
type Rule[T any] struct {
	Name   string
	Match  Predicate
	Result T
}

// Table is an ordered rule list evaluated first-match-wins.
type Table[T any] struct {
	Rules   []Rule[T]
	Default T
}

// Match lowercases text and returns the result of the first matching rule,
// or the table default with matched=false.
func (t Table[T]) Match(text string) (result T, matched bool) {
	text = strings.ToLower(text)
	for _, r := range t.Rules {
		if r.Match(text) {
			return r.Result, true
		}
	}
	return t.Default, false
}
