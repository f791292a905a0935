package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeil(t *testing.T) {
	assert.Equal(t, 0, Ceil(0, 4))
	assert.Equal(t, 1, Ceil(4, 4))
	assert.Equal(t, 2, Ceil(5, 4))
	assert.Equal(t, 3, Max(3, 2))
	assert.Equal(t, 2, Min(3, 2))
}

func TestLog2Floor(t *testing.T) {
	assert.Equal(t, 0, Log2Floor(big.NewInt(1), big.NewInt(1)))
	assert.Equal(t, 1, Log2Floor(big.NewInt(3), big.NewInt(1)))
	assert.Equal(t, 2, Log2Floor(big.NewInt(4), big.NewInt(1)))
	assert.Equal(t, -1, Log2Floor(big.NewInt(1), big.NewInt(2)))
	assert.Equal(t, -2, Log2Floor(big.NewInt(1), big.NewInt(3)))
	assert.Equal(t, -24, Log2Floor(big.NewInt(1), big.NewInt(1<<24)))
	assert.Equal(t, 0, Log2Floor(big.NewInt(7), big.NewInt(4)))
	assert.Equal(t, -1, Log2Floor(big.NewInt(7), big.NewInt(8)))
}

func TestScaleFloor(t *testing.T) {
	// 3/4 * 2^2 = 3
	q, r, _ := ScaleFloor(big.NewInt(3), big.NewInt(4), 2)
	assert.Equal(t, int64(3), q.Int64())
	assert.Equal(t, int64(0), r.Int64())

	// 3/4 * 2^-1 = 0.375
	q, r, d := ScaleFloor(big.NewInt(3), big.NewInt(4), -1)
	assert.Equal(t, int64(0), q.Int64())
	assert.Equal(t, int64(3), r.Int64())
	assert.Equal(t, int64(8), d.Int64())
}
