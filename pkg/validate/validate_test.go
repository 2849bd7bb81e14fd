package validate

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name  string
	Price string
}

func formRules() Rules[form] {
	name := func(f form) string { return f.Name }
	price := func(f form) string { return f.Price }
	return Rules[form]{
		Field("name", name, NotEmpty(), "name is required"),
		Field("price", price, NotEmpty(), "price is required"),
		Field("name", name, NotDigitInitial(), "name must start with a letter"),
		Field("price", price, Number(), "price must be a number"),
	}
}

func TestRulesFailFast(t *testing.T) {
	tests := []struct {
		name      string
		in        form
		wantField string
		wantRule  string
	}{
		{"valid", form{"Haircut", "50"}, "", ""},
		{"first rule wins", form{"", ""}, "name", "not-empty"},
		{"declaration order", form{"7Wash", ""}, "price", "not-empty"},
		{"digit initial", form{"7Wash", "10"}, "name", "not-digit-initial"},
		{"not a number", form{"Wash", "ten"}, "price", "number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := formRules().Check(tt.in)
			if tt.wantRule == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantRule, verr.Rule)
		})
	}
}

func TestValidateReturnsValidationError(t *testing.T) {
	err := formRules().Validate(form{"7Wash", "10"}, nil)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name must start with a letter", err.Error())

	assert.NoError(t, formRules().Validate(form{"Wash", "10"}, nil))
}

func TestValidationErrorWithoutMessage(t *testing.T) {
	err := &ValidationError{Field: "email", Rule: "contains"}
	assert.Equal(t, "email: failed contains", err.Error())
}

func TestPredicates(t *testing.T) {
	twoWords := regexp.MustCompile(`^[A-Za-z]+\s+[A-Za-z]+$`)
	symbols := regexp.MustCompile(`[0-9?!@]`)
	fixed := func() time.Time { return time.Date(2026, 10, 19, 15, 30, 0, 0, time.Local) }

	tests := []struct {
		name string
		pred Predicate
		in   string
		want bool
	}{
		{"not empty", NotEmpty(), "a", true},
		{"empty", NotEmpty(), "", false},
		{"blank", NotEmpty(), "   ", false},
		{"letter initial", NotDigitInitial(), "Haircut", true},
		{"digit initial", NotDigitInitial(), "7Wash", false},
		{"arabic-indic digit initial", NotDigitInitial(), "٣Wash", false},
		{"empty is not digit initial", NotDigitInitial(), "", true},
		{"no digits", NoDigits(), "Sarah Omar", true},
		{"trailing digits", NoDigits(), "John123", false},
		{"integer", Number(), "50", true},
		{"decimal", Number(), " 12.5 ", true},
		{"negative number", Number(), "-3", true},
		{"word", Number(), "fifty", false},
		{"nan", Number(), "NaN", false},
		{"inf", Number(), "Inf", false},
		{"non-negative zero", NonNegativeNumber(), "0", true},
		{"non-negative rejects negative", NonNegativeNumber(), "-1", false},
		{"rating in range", IntBetween(1, 5), "4", true},
		{"rating zero", IntBetween(1, 5), "0", false},
		{"rating empty", IntBetween(1, 5), "", false},
		{"email", Contains("@", "."), "sarah@example.com", true},
		{"email without dot", Contains("@", "."), "sarah@example", false},
		{"two words", Matches(twoWords), "Sarah Omar", true},
		{"one word", Matches(twoWords), "Sarah", false},
		{"digits in name", Matches(twoWords), "John123 Smith", false},
		{"symbols", NotMatches(symbols), "Sarah Omar!", false},
		{"clean", NotMatches(symbols), "Sarah Omar", true},
		{"long enough", MinLength(3), "abc", true},
		{"counts characters", MinLength(3), "äöü", true},
		{"trimmed before counting", MinLength(3), " ab ", false},
		{"dob before cutoff", DateOnOrBefore(time.Date(2008, 12, 31, 0, 0, 0, 0, time.UTC)), "2008-12-31", true},
		{"dob after cutoff", DateOnOrBefore(time.Date(2008, 12, 31, 0, 0, 0, 0, time.UTC)), "2009-01-01", false},
		{"dob unparsable", DateOnOrBefore(time.Date(2008, 12, 31, 0, 0, 0, 0, time.UTC)), "31/12/2008", false},
		{"due exactly five days", DateAtLeastDaysFromNow(5, fixed), "2026-10-24", true},
		{"due four days", DateAtLeastDaysFromNow(5, fixed), "2026-10-23", false},
		{"due far", DateAtLeastDaysFromNow(5, fixed), "2027-01-01", true},
		{"due empty", DateAtLeastDaysFromNow(5, fixed), "", false},
		{"image", MIMEPrefix("image/"), "image/png", true},
		{"image upper", MIMEPrefix("image/"), "IMAGE/JPEG", true},
		{"pdf", MIMEPrefix("image/"), "application/pdf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred.Test(tt.in), "%s(%q)", tt.pred.Name, tt.in)
		})
	}
}

func TestDateAtLeastDaysFromNowDefaultsToWallClock(t *testing.T) {
	p := DateAtLeastDaysFromNow(5, nil)
	assert.True(t, p.Test(time.Now().AddDate(0, 0, 6).Format(DateLayout)))
	assert.False(t, p.Test(time.Now().Format(DateLayout)))
}
