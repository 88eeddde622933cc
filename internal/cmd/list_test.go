package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/genmake/internal/generator"
)

func TestListCommand(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(generator.All())+1)
	assert.Contains(t, lines[0], "NAME")

	for _, g := range generator.All() {
		assert.Contains(t, stdout, g.Name)
		assert.Contains(t, stdout, g.FileName)
	}
	assert.Contains(t, stdout, "Nmake")
	assert.Contains(t, stdout, "Watcom")
}

func TestListRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "list", "extra")
	assert.Error(t, err)
}
