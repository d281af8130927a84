package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaekwonkang/gomines/util/collections"
)

func TestSet(t *testing.T) {
	set := make(collections.Set[int])

	assert.False(t, set.Contains(3))

	set.Add(3)
	set.Add(3)
	set.Add(7)
	assert.True(t, set.Contains(3))
	assert.True(t, set.Contains(7))
	assert.Len(t, set, 2)

	set.Remove(3)
	assert.False(t, set.Contains(3))

	// Removing an absent element is a no-op.
	set.Remove(42)
	assert.Len(t, set, 1)
}
