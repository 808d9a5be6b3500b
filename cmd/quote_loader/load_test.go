package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei/quote-harvester/internal/sources"
)

func TestFilterAdaptersKeepsPriorityOrder(t *testing.T) {
	adapters := sources.Defaults(sources.Config{})

	out, err := filterAdapters(adapters, []string{"quotable", "curated-en"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Order follows the default list, not the flag order.
	assert.Equal(t, "curated-en", out[0].Name())
	assert.Equal(t, "quotable", out[1].Name())
}

func TestFilterAdaptersUnknownSource(t *testing.T) {
	adapters := sources.Defaults(sources.Config{})

	_, err := filterAdapters(adapters, []string{"brainyquote"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brainyquote")
}

func TestFilterAdaptersEmptySelection(t *testing.T) {
	_, err := filterAdapters(nil, nil)
	require.Error(t, err)
}

func TestLoadCommandRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["load"])
	assert.True(t, names["stats"])
	assert.True(t, names["list"])
}
