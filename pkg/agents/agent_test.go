package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupKey(t *testing.T) {
	assert.Equal(t, "web/frontend", Agent{Category: "web", Subcategory: "frontend"}.GroupKey())
	assert.Equal(t, "services", Agent{Category: "services"}.GroupKey())
	assert.Equal(t, "", Agent{}.GroupKey())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "react-engineer.md", Agent{Name: "react-engineer"}.FileName())
}

func TestGroupByCategoryIsOrderPreservingPartition(t *testing.T) {
	input := []Agent{
		{Name: "a", Category: "web", Subcategory: "frontend"},
		{Name: "b", Category: "web"},
		{Name: "c", Category: "services"},
		{Name: "d", Category: "web", Subcategory: "frontend"},
	}

	groups := GroupByCategory(input)

	assert.Len(t, groups, 3)
	assert.Equal(t, []string{"a", "d"}, names(groups["web/frontend"]))
	assert.Equal(t, []string{"b"}, names(groups["web"]))
	assert.Equal(t, []string{"c"}, names(groups["services"]))

	// Union of all groups equals the input.
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	assert.Equal(t, len(input), total)
}

func names(list []Agent) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Name)
	}
	return out
}
