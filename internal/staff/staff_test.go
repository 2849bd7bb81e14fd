package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/kv"
	"github.com/sw33tLie/svcbook/pkg/validate"
)

func validMember() StaffEntry {
	return StaffEntry{
		Name:      "Nora Ali",
		Image:     "data:image/png;base64,AAAA",
		DOB:       "1995-04-02",
		Email:     "nora@example.com",
		Expertise: "Hair styling",
		Skills:    "Coloring",
		Education: "Diploma",
	}
}

func TestListSeeds(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory(0)
	r := New(collection.NewStore(mem, nil))

	members, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults, members)

	raw, err := mem.Get(ctx, CollectionName)
	require.NoError(t, err)
	assert.Contains(t, raw, `"Ahmed Salem"`)
	assert.NotContains(t, raw, `"email"`, "seeded members carry only name and image")
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	r := New(collection.NewStore(kv.NewMemory(0), nil))

	members, err := r.Add(ctx, validMember())
	require.NoError(t, err)
	require.Len(t, members, 4)
	assert.Equal(t, "Nora Ali", members[3].Name)

	mutate := func(f func(*StaffEntry)) StaffEntry {
		m := validMember()
		f(&m)
		return m
	}
	tests := []struct {
		name  string
		entry StaffEntry
		field string
		rule  string
	}{
		{"missing dob", mutate(func(m *StaffEntry) { m.DOB = "" }), "dob", "not-empty"},
		{"missing photo", mutate(func(m *StaffEntry) { m.Image = "" }), "image", "not-empty"},
		{"digit initial name", mutate(func(m *StaffEntry) { m.Name = "7Nora" }), "name", "not-digit-initial"},
		{"digits in name", mutate(func(m *StaffEntry) { m.Name = "John123" }), "name", "no-digits"},
		{"digit initial expertise", mutate(func(m *StaffEntry) { m.Expertise = "1st aid" }), "expertise", "not-digit-initial"},
		{"digit initial skills", mutate(func(m *StaffEntry) { m.Skills = "3D art" }), "skills", "not-digit-initial"},
		{"digit initial education", mutate(func(m *StaffEntry) { m.Education = "2 years" }), "education", "not-digit-initial"},
		{"email without at", mutate(func(m *StaffEntry) { m.Email = "nora.example.com" }), "email", "contains"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Add(ctx, tt.entry)
			var verr *validate.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.rule, verr.Rule)
		})
	}

	members, err = r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 4)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := New(collection.NewStore(kv.NewMemory(0), nil))

	_, err := r.Delete(ctx)
	require.ErrorIs(t, err, collection.ErrEmptySelection)

	members, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 3)

	members, err = r.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []StaffEntry{Defaults[0], Defaults[2]}, members)
}

func TestRenderAfterMutation(t *testing.T) {
	ctx := context.Background()
	var seen [][]StaffEntry
	r := New(collection.NewStore(kv.NewMemory(0), nil),
		collection.WithRenderer[StaffEntry](func(_ context.Context, m []StaffEntry) { seen = append(seen, m) }))

	_, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, seen, "loading is not a mutation")

	_, err = r.Delete(ctx, 0)
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Len(t, seen[0], 2)
}
