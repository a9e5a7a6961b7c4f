package pathvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Set Tests
// ============================================================================

func TestSet_TopLevelKey(t *testing.T) {
	t.Parallel()
	target := map[string]any{}

	Set(target, "name", "ada")

	assert.Equal(t, map[string]any{"name": "ada"}, target)
}

func TestSet_CreatesIntermediateMaps(t *testing.T) {
	t.Parallel()
	target := map[string]any{}

	Set(target, "address.geo.lat", 38.7)
	Set(target, "address.city", "Lisbon")

	assert.Equal(t, map[string]any{
		"address": map[string]any{
			"city": "Lisbon",
			"geo":  map[string]any{"lat": 38.7},
		},
	}, target)
}

func TestSet_ReplacesScalarInTheWay(t *testing.T) {
	t.Parallel()
	target := map[string]any{"a": 1}

	Set(target, "a.b", 2)

	assert.Equal(t, map[string]any{"a": map[string]any{"b": 2}}, target)
}

func TestSet_ShallowWriteReplacesSubtree(t *testing.T) {
	t.Parallel()
	target := map[string]any{}

	Set(target, "a.b", 2)
	Set(target, "a", 1)

	assert.Equal(t, map[string]any{"a": 1}, target)
}

// ============================================================================
// Get Tests
// ============================================================================

func TestGet(t *testing.T) {
	t.Parallel()
	target := map[string]any{}
	Set(target, "a.b.c", "deep")

	got, ok := Get(target, "a.b.c")
	require.True(t, ok)
	assert.Equal(t, "deep", got)

	_, ok = Get(target, "a.x")
	assert.False(t, ok)

	_, ok = Get(target, "a.b.c.d")
	assert.False(t, ok)
}

// ============================================================================
// Merge Tests
// ============================================================================

func TestMerge_SourceWinsAndNestedMapsMerge(t *testing.T) {
	t.Parallel()
	dst := map[string]any{
		"name":    "ada",
		"role":    "user",
		"address": map[string]any{"city": "Lisbon", "zip": "1000"},
	}
	src := map[string]any{
		"role":    "admin",
		"address": map[string]any{"city": "Porto"},
	}

	out := Merge(dst, src)

	assert.Equal(t, map[string]any{
		"name":    "ada",
		"role":    "admin",
		"address": map[string]any{"city": "Porto", "zip": "1000"},
	}, out)
}

func TestMerge_CopiesSourceMaps(t *testing.T) {
	t.Parallel()
	src := map[string]any{"meta": map[string]any{"k": "v"}}

	out := Merge(nil, src)
	Set(out, "meta.k", "changed")

	assert.Equal(t, "v", src["meta"].(map[string]any)["k"])
}
