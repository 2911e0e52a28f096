// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dynpgm/core"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, core.DefaultTolerance, cfg.tolerance)
	assert.Equal(t, core.Range(DefaultNumericLow, DefaultNumericHigh), cfg.numeric)
	for r := Role(0); r < roleCount; r++ {
		assert.Len(t, cfg.table(r), 1<<r.ParentCount(), r.String())
		assert.NoError(t, core.ValidateTable(cfg.table(r), r.ParentCount(), core.DefaultTolerance), r.String())
	}

	// Config tables are copies; mutating one must not touch the defaults.
	cfg.tables[RoleA0][0][0] = 1
	assert.Equal(t, 0.25, newBuilderConfig().table(RoleA0)[0][0])
}

func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithTolerance(0.1), WithTolerance(0.2))
	assert.Equal(t, 0.2, cfg.tolerance)

	cfg = newBuilderConfig(
		WithTable(RoleC0, [][]float64{{1, 0}}),
		WithTable(RoleC0, [][]float64{{0, 1}}),
	)
	assert.Equal(t, [][]float64{{0, 1}}, cfg.table(RoleC0))
}

func TestRoleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A0", RoleA0.String())
	assert.Equal(t, "C", RoleC.String())
	assert.Equal(t, "Role(42)", Role(42).String())
	assert.Nil(t, DefaultTable(Role(-1)))
	assert.Equal(t, defaultTables[RoleB], DefaultTable(RoleB))
}
