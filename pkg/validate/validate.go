// Package validate evaluates ordered, fail-fast rule sets over entries.
//
// A rule pairs a predicate with the message shown when it fails. Rules run in
// declaration order and evaluation stops at the first failure, so the caller
// always gets exactly one, specific reason.
package validate

import "fmt"

// ValidationError names the rule and field that rejected an entry.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: failed %s", e.Field, e.Rule)
}

// Rule checks one field of T.
type Rule[T any] struct {
	Field   string
	Rule    string
	Message string
	Check   func(T) bool
}

// Rules is an ordered rule set.
type Rules[T any] []Rule[T]

// Check evaluates the rules in order and returns the first failure.
func (rs Rules[T]) Check(entry T) *ValidationError {
	for _, r := range rs {
		if !r.Check(entry) {
			return &ValidationError{Field: r.Field, Rule: r.Rule, Message: r.Message}
		}
	}
	return nil
}

// Validate implements collection.Validator. The current entries are not
// consulted by field rules.
func (rs Rules[T]) Validate(entry T, _ []T) error {
	if verr := rs.Check(entry); verr != nil {
		return verr
	}
	return nil
}

// Field builds a rule that applies pred to the string field returned by get.
func Field[T any](field string, get func(T) string, pred Predicate, message string) Rule[T] {
	return Rule[T]{
		Field:   field,
		Rule:    pred.Name,
		Message: message,
		Check:   func(e T) bool { return pred.Test(get(e)) },
	}
}
