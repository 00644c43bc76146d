package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_ID(t *testing.T) {
	withUUID := User{Email: "a@example.com", Login: Login{UUID: "uuid-1"}}
	withoutUUID := User{Email: "b@example.com"}

	assert.Equal(t, "uuid-1", withUUID.ID())
	assert.Equal(t, "b@example.com", withoutUUID.ID())
	assert.Equal(t, "uuid-1", IDOf(withUUID))
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Brad Gibson", User{Name: Name{First: "Brad", Last: "Gibson"}}.FullName())
	assert.Equal(t, "Brad", User{Name: Name{First: "Brad"}}.FullName())
	assert.Equal(t, "Brad", User{Name: Name{First: "Brad", Last: "Gibson"}}.FirstName())
}

func TestSort(t *testing.T) {
	in := []User{
		{Name: Name{First: "carol", Last: "Diaz"}, Email: "c@example.com"},
		{Name: Name{First: "Alice", Last: "Moore"}, Email: "a@example.com"},
		{Name: Name{First: "bob", Last: "Adams"}, Email: "b@example.com"},
	}

	firsts := func(us []User) []string {
		out := make([]string, 0, len(us))
		for _, u := range us {
			out = append(out, u.Name.First)
		}
		return out
	}

	tests := []struct {
		name  string
		field string
		order string
		want  []string
	}{
		{name: "first asc", field: "first", order: SortOrderAsc, want: []string{"Alice", "bob", "carol"}},
		{name: "first desc", field: "first", order: SortOrderDesc, want: []string{"carol", "bob", "Alice"}},
		{name: "last asc", field: "last", order: SortOrderAsc, want: []string{"bob", "carol", "Alice"}},
		{name: "unknown field keeps order", field: "age", order: SortOrderAsc, want: []string{"carol", "Alice", "bob"}},
		{name: "empty field keeps order", field: "", order: SortOrderAsc, want: []string{"carol", "Alice", "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firsts(Sort(in, tt.field, tt.order)))
		})
	}

	assert.Equal(t, "carol", in[0].Name.First, "input must not be reordered")
}

func TestSortFields(t *testing.T) {
	assert.Equal(t, []string{"email", "first", "last", "name"}, SortFields())
	assert.True(t, IsValidSortField("email"))
	assert.False(t, IsValidSortField("age"))
}
