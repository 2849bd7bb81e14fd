// Package staff manages the provider's staff roster, stored under the
// "members" collection and seeded with the founding team.
package staff

import (
	"context"

	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/validate"
)

// CollectionName is the storage key of the roster.
const CollectionName = "members"

// StaffEntry is one staff member. Seeded members only carry a name and image.
type StaffEntry struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	DOB       string `json:"dob,omitempty"`
	Email     string `json:"email,omitempty"`
	Expertise string `json:"expertise,omitempty"`
	Skills    string `json:"skills,omitempty"`
	Education string `json:"education,omitempty"`
}

// Defaults seeds the roster the first time it is read.
var Defaults = []StaffEntry{
	{Name: "Ahmed Salem", Image: "images/Staff1.PNG"},
	{Name: "Fahad Nasser", Image: "images/Staff2.PNG"},
	{Name: "Sarah Omar", Image: "images/Staff3.PNG"},
}

const fillAll = "Please fill in all fields before submitting."

func name(s StaffEntry) string      { return s.Name }
func expertise(s StaffEntry) string { return s.Expertise }
func skills(s StaffEntry) string    { return s.Skills }
func education(s StaffEntry) string { return s.Education }

// Rules is the add-staff form's rule set.
var Rules = validate.Rules[StaffEntry]{
	validate.Field("name", name, validate.NotEmpty(), fillAll),
	validate.Field("dob", func(s StaffEntry) string { return s.DOB }, validate.NotEmpty(), fillAll),
	validate.Field("email", func(s StaffEntry) string { return s.Email }, validate.NotEmpty(), fillAll),
	validate.Field("expertise", expertise, validate.NotEmpty(), fillAll),
	validate.Field("skills", skills, validate.NotEmpty(), fillAll),
	validate.Field("education", education, validate.NotEmpty(), fillAll),
	validate.Field("image", func(s StaffEntry) string { return s.Image }, validate.NotEmpty(), fillAll),
	validate.Field("name", name, validate.NotDigitInitial(), "The staff name cannot start with a number."),
	validate.Field("name", name, validate.NoDigits(), "The staff name cannot contain numbers."),
	validate.Field("expertise", expertise, validate.NotDigitInitial(), "Expertise must start with a letter, not a number."),
	validate.Field("skills", skills, validate.NotDigitInitial(), "Skills must start with a letter, not a number."),
	validate.Field("education", education, validate.NotDigitInitial(), "Education must start with a letter, not a number."),
	validate.Field("email", func(s StaffEntry) string { return s.Email }, validate.Contains("@", "."), "Please enter a valid email address."),
}

// Roster reads and edits the staff collection.
type Roster struct {
	members *collection.Collection[StaffEntry]
}

// New returns a roster over store.
func New(store *collection.Store, opts ...collection.Option[StaffEntry]) *Roster {
	opts = append([]collection.Option[StaffEntry]{collection.WithSeed(Defaults...)}, opts...)
	return &Roster{members: collection.New(store, CollectionName, opts...)}
}

// Collection exposes the underlying collection, e.g. to attach renderers.
func (r *Roster) Collection() *collection.Collection[StaffEntry] { return r.members }

// List returns the roster, seeding it on first use.
func (r *Roster) List(ctx context.Context) ([]StaffEntry, error) {
	return r.members.Load(ctx, nil)
}

// Add validates and appends a member.
func (r *Roster) Add(ctx context.Context, s StaffEntry) ([]StaffEntry, error) {
	return r.members.Append(ctx, s, Rules)
}

// Delete removes the members at the given positions. With no positions, or
// none in range, it returns collection.ErrEmptySelection.
func (r *Roster) Delete(ctx context.Context, indices ...int) ([]StaffEntry, error) {
	if len(indices) == 0 {
		return nil, collection.ErrEmptySelection
	}
	return r.members.RemoveWhere(ctx, collection.Indices(indices...))
}
