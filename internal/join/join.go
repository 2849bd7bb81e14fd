// Package join validates applications sent through the join-our-team form.
package join

import (
	"fmt"
	"time"

	"github.com/sw33tLie/svcbook/pkg/validate"
)

// Application is a join-our-team submission. PhotoType is the MIME type of
// the attached photo, empty when none was attached.
type Application struct {
	FullName  string
	DOB       string
	PhotoType string
}

// LatestDOB is the last accepted date of birth.
var LatestDOB = time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC)

func fullName(a Application) string { return a.FullName }

// Rules is the join form's rule set. The photo is optional, but if one is
// attached it must be an image.
var Rules = validate.Rules[Application]{
	validate.Field("fullName", fullName, validate.NotEmpty(), "Error: Full Name is required."),
	validate.Field("dob", func(a Application) string { return a.DOB }, validate.NotEmpty(), "Error: Date of Birth is required."),
	validate.Field("fullName", fullName, validate.NotDigitInitial(), "Error: Full Name cannot start with a number."),
	validate.Field("dob", func(a Application) string { return a.DOB }, validate.DateOnOrBefore(LatestDOB), "Error: Date of Birth must be on or before 2008."),
	{
		Field:   "photo",
		Rule:    "mime-prefix",
		Message: "Error: Photo field must contain an image file (e.g., JPEG, PNG).",
		Check: func(a Application) bool {
			return a.PhotoType == "" || validate.MIMEPrefix("image/").Test(a.PhotoType)
		},
	},
}

// Validate returns the first rule a breaks, or nil.
func Validate(a Application) error {
	if verr := Rules.Check(a); verr != nil {
		return verr
	}
	return nil
}

// Submit validates a and returns the confirmation shown to the applicant.
func Submit(a Application) (string, error) {
	if err := Validate(a); err != nil {
		return "", err
	}
	return fmt.Sprintf("Submission Successful!\n\nThank you, %s, for your interest in joining our team. We will be in touch shortly.", a.FullName), nil
}
