//go:build e2e && unix

package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	d := startWithDataset(t, http.StatusOK)
	require.True(t, d.Ready(), "Should draw the title bar")

	require.NoError(t, d.Quit())

	exited, err := d.Exited(3 * time.Second)
	if !exited {
		_ = d.Keys(KeyCtrlC)
		t.Fatal("application did not exit on q")
	}
	require.NoError(t, err, "q should exit cleanly")
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	d := startWithDataset(t, http.StatusOK)
	require.True(t, d.Loaded("4"))

	require.NoError(t, d.Keys(KeyCtrlC))

	exited, err := d.Exited(3 * time.Second)
	require.True(t, exited, "application did not exit on ctrl+c")
	require.NoError(t, err)
}
