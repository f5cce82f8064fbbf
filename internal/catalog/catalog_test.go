package catalog

import (
	"testing"

	"pattern_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 22)

	seen := make(map[string]bool)
	for _, p := range all {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestCountByCategory(t *testing.T) {
	counts := CountByCategory()
	assert.Equal(t, 5, counts[model.CategoryCreational])
	assert.Equal(t, 7, counts[model.CategoryStructural])
	assert.Equal(t, 10, counts[model.CategoryBehavioral])
}

func TestByID(t *testing.T) {
	p, ok := ByID("singleton")
	require.True(t, ok)
	assert.Equal(t, "Singleton", p.Name)
	assert.Equal(t, model.CategoryCreational, p.Category)

	_, ok = ByID("no-such-pattern")
	assert.False(t, ok)

	assert.True(t, Exists("observer"))
	assert.False(t, Exists(""))
}

func TestSearch(t *testing.T) {
	assert.Len(t, Search(""), 22)
	assert.Len(t, Search("   "), 22)

	result := Search("FACTORY")
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Contains(t, []string{"factory-method", "abstract-factory"}, p.ID)
	}

	assert.Empty(t, Search("没有这种模式"))
}

func TestFilterByCategory(t *testing.T) {
	creational := FilterByCategory(model.CategoryCreational)
	assert.Len(t, creational, 5)
	for _, p := range creational {
		assert.Equal(t, model.CategoryCreational, p.Category)
	}

	assert.Empty(t, FilterByCategory(model.PatternCategory("unknown")))
}
