package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DateLayout is the form-field date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Predicate is a named test over a string field value.
type Predicate struct {
	Name string
	Test func(string) bool
}

// NotEmpty rejects empty and whitespace-only values.
func NotEmpty() Predicate {
	return Predicate{"not-empty", func(s string) bool {
		return strings.TrimSpace(s) != ""
	}}
}

// NotDigitInitial rejects values whose first character is a digit. Empty
// values pass; pair with NotEmpty.
func NotDigitInitial() Predicate {
	return Predicate{"not-digit-initial", func(s string) bool {
		r, _ := utf8.DecodeRuneInString(s)
		return r == utf8.RuneError || !unicode.IsDigit(r)
	}}
}

// NoDigits rejects values containing any digit.
func NoDigits() Predicate {
	return Predicate{"no-digits", func(s string) bool {
		return strings.IndexFunc(s, unicode.IsDigit) < 0
	}}
}

// Number accepts values that parse as a finite number.
func Number() Predicate {
	return Predicate{"number", func(s string) bool {
		_, ok := ParseNumber(s)
		return ok
	}}
}

// NonNegativeNumber accepts finite numbers >= 0.
func NonNegativeNumber() Predicate {
	return Predicate{"non-negative-number", func(s string) bool {
		f, ok := ParseNumber(s)
		return ok && f >= 0
	}}
}

// ParseNumber parses s the way Number does: trimmed, finite.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IntBetween accepts integers in [lo, hi].
func IntBetween(lo, hi int) Predicate {
	return Predicate{"int-between", func(s string) bool {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return err == nil && n >= lo && n <= hi
	}}
}

// Contains accepts values containing every one of subs.
func Contains(subs ...string) Predicate {
	return Predicate{"contains", func(s string) bool {
		for _, sub := range subs {
			if !strings.Contains(s, sub) {
				return false
			}
		}
		return true
	}}
}

// Matches accepts values matching re.
func Matches(re *regexp.Regexp) Predicate {
	return Predicate{"matches", re.MatchString}
}

// NotMatches rejects values matching re.
func NotMatches(re *regexp.Regexp) Predicate {
	return Predicate{"not-matches", func(s string) bool { return !re.MatchString(s) }}
}

// MinLength accepts values of at least n characters after trimming.
func MinLength(n int) Predicate {
	return Predicate{"min-length", func(s string) bool {
		return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
	}}
}

// DateOnOrBefore accepts dates no later than cutoff's calendar day.
func DateOnOrBefore(cutoff time.Time) Predicate {
	last := civil(cutoff)
	return Predicate{"date-on-or-before", func(s string) bool {
		d, err := time.Parse(DateLayout, strings.TrimSpace(s))
		return err == nil && !d.After(last)
	}}
}

// DateAtLeastDaysFromNow accepts dates at least n calendar days after the
// day now returns.
func DateAtLeastDaysFromNow(n int, now func() time.Time) Predicate {
	if now == nil {
		now = time.Now
	}
	return Predicate{"date-at-least-days-from-now", func(s string) bool {
		d, err := time.Parse(DateLayout, strings.TrimSpace(s))
		if err != nil {
			return false
		}
		return !d.Before(civil(now()).AddDate(0, 0, n))
	}}
}

// MIMEPrefix accepts MIME types starting with prefix, e.g. "image/".
func MIMEPrefix(prefix string) Predicate {
	return Predicate{"mime-prefix", func(s string) bool {
		return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), prefix)
	}}
}

// civil drops the clock and zone, keeping the calendar day as UTC midnight.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
