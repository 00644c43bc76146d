package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/userdir/internal/listing"
)

func TestPrefixFold(t *testing.T) {
	match := listing.PrefixFold(func(s string) string { return s })

	tests := []struct {
		name   string
		record string
		query  string
		want   bool
	}{
		{name: "exact", record: "Alice", query: "Alice", want: true},
		{name: "lower query", record: "Alice", query: "al", want: true},
		{name: "upper query", record: "alice", query: "ALI", want: true},
		{name: "not a prefix", record: "Alice", query: "lic", want: false},
		{name: "longer than record", record: "Al", query: "Alice", want: false},
		{name: "unicode folding", record: "Ödön", query: "öd", want: true},
		{name: "sharp s", record: "Straße", query: "STRASS", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match(tt.record, tt.query))
		})
	}
}

func TestContainsFold(t *testing.T) {
	type row struct{ first, email string }
	match := listing.ContainsFold(
		func(r row) string { return r.first },
		func(r row) string { return r.email },
	)

	r := row{first: "Brad", email: "brad.gibson@example.com"}
	assert.True(t, match(r, "RAD"))
	assert.True(t, match(r, "gibson"))
	assert.False(t, match(r, "smith"))
}
