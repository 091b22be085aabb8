package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caoforge/caoforge/pkg/agents"
)

func TestFilterInstalled(t *testing.T) {
	list := []agents.Agent{
		{Name: "a", Category: "web"},
		{Name: "b", Category: "web"},
		{Name: "c", Category: "services"},
	}

	filtered := filterInstalled(list, map[string]bool{"a": true})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].Name)

	assert.Empty(t, filterInstalled(list, map[string]bool{}))
}

func TestIsAffirmative(t *testing.T) {
	assert.True(t, isAffirmative("y"))
	assert.True(t, isAffirmative("Yes"))
	assert.True(t, isAffirmative(" YES "))
	assert.False(t, isAffirmative(""))
	assert.False(t, isAffirmative("n"))
	assert.False(t, isAffirmative("nope"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "a-much-...", truncate("a-much-longer-string", 10))
}
