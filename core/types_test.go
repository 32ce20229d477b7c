package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cassowary/core"
)

// TestVariable_Identity verifies that every allocation is a distinct
// identity, even with identical names.
func TestVariable_Identity(t *testing.T) {
	a := core.NewNamedVariable("width")
	b := core.NewNamedVariable("width")

	assert.NotEqual(t, a, b, "two allocations must be distinct identities")
	assert.Equal(t, a, a, "a variable equals itself")
}

// TestVariable_MapKey verifies Variables behave as map keys.
func TestVariable_MapKey(t *testing.T) {
	a := core.NewVariable()
	b := core.NewVariable()

	seen := map[core.Variable]int{a: 1}
	seen[b] = 2

	assert.Len(t, seen, 2)
	assert.Equal(t, 1, seen[a])
	assert.Equal(t, 2, seen[b])
}

// TestVariable_String covers named and anonymous rendering.
func TestVariable_String(t *testing.T) {
	named := core.NewNamedVariable("height")
	assert.Equal(t, "height", named.String())
	assert.Equal(t, "height", named.Name())

	anon := core.NewVariable()
	assert.Empty(t, anon.Name())
	assert.Regexp(t, `^v\d+$`, anon.String())
}

// TestTerm_String checks the coefficient·variable rendering.
func TestTerm_String(t *testing.T) {
	x := core.NewNamedVariable("x")
	assert.Equal(t, "2.5·x", core.NewTerm(x, 2.5).String())
}

// TestRelationalOperator_String covers all three operators.
func TestRelationalOperator_String(t *testing.T) {
	assert.Equal(t, "<=", core.OpLE.String())
	assert.Equal(t, "==", core.OpEQ.String())
	assert.Equal(t, ">=", core.OpGE.String())
}
