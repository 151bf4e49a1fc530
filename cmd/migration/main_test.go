package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)
	_, err = parseSteps([]string{"two"})
	assert.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	v, err := parseVersion("1760832001")
	require.NoError(t, err)
	assert.Equal(t, 1760832001, v)

	_, err = parseVersion("-1")
	assert.Error(t, err)

	target, err := parseTarget("1760832002")
	require.NoError(t, err)
	assert.Equal(t, uint(1760832002), target)

	_, err = parseTarget("latest")
	assert.Error(t, err)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("IPL_FLAG", "Yes")
	assert.True(t, envBool("IPL_FLAG"))
	t.Setenv("IPL_FLAG", "off")
	assert.False(t, envBool("IPL_FLAG"))
}
