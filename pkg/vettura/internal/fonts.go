package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Font sizes used by the onboard UI.
const (
	SmallFontSize = 24
	BodyFontSize  = 36
	TitleFontSize = 56
)

// DefaultFontSizes are the sizes opened at startup.
var DefaultFontSizes = []int{SmallFontSize, BodyFontSize, TitleFontSize}

var fonts map[int]*ttf.Font

func initFonts(sizes []int) error {
	fonts = make(map[int]*ttf.Font, len(sizes))

	path := GetTheme().FontPath
	for _, size := range sizes {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			closeFonts()
			return fmt.Errorf("open font %s at %dpt: %w", path, size, err)
		}
		fonts[size] = font
	}
	return nil
}

// GetFont returns the font opened at the given size, or nil if fonts
// failed to load. Callers must treat nil as "skip text rendering".
func GetFont(size int) *ttf.Font {
	return fonts[size]
}

func closeFonts() {
	for _, font := range fonts {
		font.Close()
	}
	fonts = nil
}

// RenderText renders text into a texture with the given font and
// color, returning the texture and its pixel dimensions.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32, error) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("upload text texture: %w", err)
	}
	return texture, surface.W, surface.H, nil
}
