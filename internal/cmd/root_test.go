package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct{ closed int }

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestCloseLog(t *testing.T) {
	c := &countingCloser{}
	logCloser = c
	t.Cleanup(func() { logCloser = nil })

	require.NoError(t, closeLog())
	require.NoError(t, closeLog())

	assert.Equal(t, 1, c.closed)
	assert.Nil(t, logCloser)
}
