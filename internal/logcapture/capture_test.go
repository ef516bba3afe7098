package logcapture

import (
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureInterceptsDefaultLogger(t *testing.T) {
	c := New(10)
	c.Start()
	defer c.Stop()

	log.Println("primeira linha")
	log.Println("segunda linha")

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "primeira linha")
	assert.Contains(t, entries[1].Message, "segunda linha")
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestCaptureKeepsOnlyLastEntries(t *testing.T) {
	c := New(3)
	for i := 0; i < 5; i++ {
		fmt.Fprintf(c, "linha %d\n", i)
	}

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "linha 2", entries[0].Message)
	assert.Equal(t, "linha 4", entries[2].Message)
}

func TestCaptureClear(t *testing.T) {
	c := New(10)
	fmt.Fprintln(c, "algo")
	require.NotEmpty(t, c.Entries())

	c.Clear()
	assert.Empty(t, c.Entries())
}

func TestCaptureStopRestoresLogger(t *testing.T) {
	c := New(10)
	c.Start()
	c.Stop()

	log.Println("depois do stop")
	assert.Empty(t, c.Entries())
}

func TestCaptureDefaultMax(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultMaxEntries, c.max)
}
