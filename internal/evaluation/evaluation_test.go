package evaluation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw33tLie/svcbook/pkg/validate"
)

func TestSubmitReplies(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{5, "Thank you for your positive feedback!"},
		{4, "Thank you for your positive feedback!"},
		{3, "Thank you for your evaluation."},
		{2, "We are sorry, we will try to improve."},
		{1, "We are sorry, we will try to improve."},
	}
	for _, tt := range tests {
		got, err := Submit(Evaluation{Service: "Haircut", Rating: tt.rating, Feedback: "ok"})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "rating %d", tt.rating)
	}
}

func TestSubmitRejects(t *testing.T) {
	tests := []struct {
		name    string
		eval    Evaluation
		message string
	}{
		{"no service", Evaluation{Rating: 3, Feedback: "ok"}, "Please select a service."},
		{"no rating", Evaluation{Service: "Haircut", Feedback: "ok"}, "Please add a rating."},
		{"rating out of range", Evaluation{Service: "Haircut", Rating: 6, Feedback: "ok"}, "Please add a rating."},
		{"no feedback", Evaluation{Service: "Haircut", Rating: 3, Feedback: "  "}, "Please write your feedback."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Submit(tt.eval)
			var verr *validate.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}
