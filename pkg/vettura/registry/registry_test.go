package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type window struct{ title string }

func TestEmptyRegistry(t *testing.T) {
	r := New[*window]()

	w, ok := r.MainWindow()
	require.False(t, ok)
	require.Nil(t, w)
}

func TestFirstWriteWins(t *testing.T) {
	r := New[*window]()
	first := &window{title: "first"}
	second := &window{title: "second"}

	require.True(t, r.SetMainWindow(first))
	require.False(t, r.SetMainWindow(second))

	w, ok := r.MainWindow()
	require.True(t, ok)
	require.Same(t, first, w)
}
