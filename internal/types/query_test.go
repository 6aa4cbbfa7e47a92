//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  SortKey
	}{
		{"title", SortTitle},
		{"Location", SortLocation},
		{" company ", SortCompany},
		{"", SortNone},
		{"salary", SortNone},
		{"none", SortNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.input))
		})
	}
}

func TestQuery_IsZero(t *testing.T) {
	assert.True(t, Query{}.IsZero())
	assert.True(t, Query{Sort: "bogus"}.IsZero())
	assert.False(t, Query{Search: "x"}.IsZero())
	assert.False(t, Query{Location: "x"}.IsZero())
	assert.False(t, Query{Sort: SortTitle}.IsZero())
}
