package utils

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestOr(t *testing.T) {
	assert.Equal(t, "a", Or("", "a", "b"))
	assert.Equal(t, "", Or("", ""))
	assert.Equal(t, 3, Or(0, 0, 3))
}

func TestFilterSlice(t *testing.T) {
	evens := FilterSlice([]int{1, 2, 3, 4}, func(v int) (int, bool) {
		return v * 10, v%2 == 0
	})
	assert.Equal(t, []int{20, 40}, evens)

	empty := FilterSlice(nil, func(v int) (int, bool) { return v, true })
	assert.Empty(t, empty)
}
