// Package requests validates new service requests and keeps the ones sent
// during the current session. Nothing here is persisted.
package requests

import (
	"regexp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sw33tLie/svcbook/pkg/validate"
)

// MinLeadDays is how many days ahead a due date must be.
const MinLeadDays = 5

// MinDescription is the minimum description length in characters.
const MinDescription = 100

// ServiceRequest asks a provider for a service by a due date.
type ServiceRequest struct {
	ID          string `json:"id"`
	Service     string `json:"service"`
	Name        string `json:"name"`
	DueDate     string `json:"dueDate"`
	Description string `json:"description"`
}

var (
	fullName = regexp.MustCompile(`^[A-Za-z]+\s+[A-Za-z]+$`)
	badChars = regexp.MustCompile(`[0-9?!@]`)
)

// Rules returns the request form's rule set with due dates measured from now.
func Rules(now func() time.Time) validate.Rules[ServiceRequest] {
	name := func(r ServiceRequest) string { return r.Name }
	const badName = "Full name is invalid. Make sure it has two words and no numbers or symbols."
	return validate.Rules[ServiceRequest]{
		validate.Field("service", func(r ServiceRequest) string { return r.Service }, validate.NotEmpty(), "Please select a service."),
		validate.Field("name", name, validate.Matches(fullName), badName),
		validate.Field("name", name, validate.NotMatches(badChars), badName),
		validate.Field("dueDate", func(r ServiceRequest) string { return r.DueDate }, validate.DateAtLeastDaysFromNow(MinLeadDays, now), "Due date must be at least 5 days from today."),
		validate.Field("description", func(r ServiceRequest) string { return r.Description }, validate.MinLength(MinDescription), "Description is too short. Minimum 100 characters."),
	}
}

// Session holds the requests sent while the process runs.
type Session struct {
	mu    sync.Mutex
	rules validate.Rules[ServiceRequest]
	list  []ServiceRequest
}

// NewSession starts an empty session. A nil now uses the wall clock.
func NewSession(now func() time.Time) *Session {
	return &Session{rules: Rules(now)}
}

// Submit validates r and records it with a fresh ID. The returned slice is
// the whole session list.
func (s *Session) Submit(r ServiceRequest) ([]ServiceRequest, error) {
	if verr := s.rules.Check(r); verr != nil {
		return nil, verr
	}
	r.ID = uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = append(s.list, r)
	return slices.Clone(s.list), nil
}

// List returns the requests sent so far.
func (s *Session) List() []ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.list)
}
