package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTimeOrderedID(t *testing.T) {
	const n = 100
	ids := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NextTimeOrderedID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	assert.True(t, sort.StringsAreSorted(ids), "ids should sort by issue order")
}
