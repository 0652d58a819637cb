package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorToString(t *testing.T) {
	assert.Equal(t, "[0.1,0.25,-3]", vectorToString([]float32{0.1, 0.25, -3}))
	assert.Equal(t, "[]", vectorToString(nil))
	assert.Equal(t, "[1e-07]", vectorToString([]float32{0.0000001}))
}
