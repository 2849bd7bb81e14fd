// Package evaluation validates service evaluations and picks the reply.
package evaluation

import (
	"strconv"

	"github.com/sw33tLie/svcbook/pkg/validate"
)

// Evaluation rates a service from 1 to 5 with written feedback.
type Evaluation struct {
	Service  string
	Rating   int
	Feedback string
}

// Rules is the evaluation form's rule set.
var Rules = validate.Rules[Evaluation]{
	validate.Field("service", func(e Evaluation) string { return e.Service }, validate.NotEmpty(), "Please select a service."),
	validate.Field("rating", func(e Evaluation) string { return strconv.Itoa(e.Rating) }, validate.IntBetween(1, 5), "Please add a rating."),
	validate.Field("feedback", func(e Evaluation) string { return e.Feedback }, validate.NotEmpty(), "Please write your feedback."),
}

// Submit validates e and returns the reply for its rating.
func Submit(e Evaluation) (string, error) {
	if verr := Rules.Check(e); verr != nil {
		return "", verr
	}
	switch {
	case e.Rating >= 4:
		return "Thank you for your positive feedback!", nil
	case e.Rating <= 2:
		return "We are sorry, we will try to improve.", nil
	default:
		return "Thank you for your evaluation.", nil
	}
}
