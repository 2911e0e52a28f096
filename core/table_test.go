package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowIndexRoundTrip(t *testing.T) {
	t.Parallel()

	// First parent is the most-significant bit.
	assert.Equal(t, 0, RowIndex(0, 0))
	assert.Equal(t, 1, RowIndex(0, 1))
	assert.Equal(t, 2, RowIndex(1, 0))
	assert.Equal(t, 3, RowIndex(1, 1))
	assert.Equal(t, 0, RowIndex())

	for p := 0; p <= 4; p++ {
		for r := 0; r < RowsFor(p); r++ {
			assert.Equal(t, r, RowIndex(ParentStates(r, p)...), "p=%d r=%d", p, r)
		}
	}
	assert.Equal(t, []int{1, 0}, ParentStates(2, 2))
}

func TestValidateTable(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateTable([][]float64{{0.125, 0.875}, {0.5, 0.5}}, 1, DefaultTolerance))
	assert.NoError(t, ValidateTable([][]float64{{0.1, 0.2 + 0.7}}, 0, DefaultTolerance))

	assert.ErrorIs(t, ValidateTable(nil, 0, DefaultTolerance), ErrRowCount)
	assert.ErrorIs(t, ValidateTable([][]float64{{math.NaN(), 1}}, 0, DefaultTolerance), ErrProbability)
	assert.ErrorIs(t, ValidateTable([][]float64{{math.Inf(1), 0}}, 0, DefaultTolerance), ErrProbability)
	assert.ErrorIs(t, ValidateTable([][]float64{{1}}, 0, DefaultTolerance), ErrRowWidth)
	assert.ErrorIs(t, ValidateTable([][]float64{{0.4, 0.4}}, 0, DefaultTolerance), ErrRowSum)
}

func TestCloneTable(t *testing.T) {
	t.Parallel()

	src := [][]float64{{0.5, 0.5}}
	dst := CloneTable(src)
	dst[0][0] = 1
	assert.Equal(t, 0.5, src[0][0])
	assert.Nil(t, CloneTable(nil))
}
