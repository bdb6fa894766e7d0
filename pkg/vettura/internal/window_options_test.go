package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsToSDLFlags(t *testing.T) {
	require.Equal(t, uint32(sdl.WINDOW_SHOWN), WindowOptions{}.ToSDLFlags())

	flags := WindowOptions{Fullscreen: true, Borderless: true}.ToSDLFlags()
	require.NotZero(t, flags&sdl.WINDOW_FULLSCREEN)
	require.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	require.NotZero(t, flags&sdl.WINDOW_SHOWN)

	hidden := WindowOptions{Hidden: true}.ToSDLFlags()
	require.Zero(t, hidden&sdl.WINDOW_SHOWN)
}

func TestWindowOptionsIsZero(t *testing.T) {
	require.True(t, WindowOptions{}.IsZero())
	require.False(t, WindowOptions{Resizable: true}.IsZero())
}

func TestPaddingInset(t *testing.T) {
	p := UniformPadding(10)
	rect := p.Inset(sdl.Rect{X: 0, Y: 0, W: 100, H: 80})
	require.Equal(t, sdl.Rect{X: 10, Y: 10, W: 80, H: 60}, rect)
}
