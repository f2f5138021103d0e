package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catcoat/backend/pkg/utils"
)

func TestRoundTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9.5, utils.RoundTo(9.5, 1))
	assert.Equal(t, 9.3, utils.RoundTo(9.34, 1))
	assert.Equal(t, 9.4, utils.RoundTo(9.35, 1))
	assert.Equal(t, -20.0, utils.RoundTo(-20.0000001, 1))
	assert.Equal(t, 3.14, utils.RoundTo(3.14159, 2))
	assert.Equal(t, 3.0, utils.RoundTo(3.14159, 0))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", utils.Truncate("abc", 5))
	assert.Equal(t, "abc", utils.Truncate("abc", 3))
	assert.Equal(t, "ab", utils.Truncate("abc", 2))
	assert.Equal(t, "", utils.Truncate("abc", 0))
	assert.Equal(t, "abc", utils.Truncate("abc", -1))
}
