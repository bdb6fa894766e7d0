package internal

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the visual appearance of the onboard UI.
type Theme struct {
	TextColor           sdl.Color // Default text color
	HintColor           sdl.Color // Secondary/status text
	AccentColor         sdl.Color // Brand mark and highlights
	AlertColor          sdl.Color // Warning banners
	BackgroundColor     sdl.Color // Screen background color
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// NightTheme returns the low-glare palette used while driving.
func NightTheme(fontPath, backgroundPath string) Theme {
	return Theme{
		TextColor:           HexToColor(0xF2F2F2),
		HintColor:           HexToColor(0x8A8A8A),
		AccentColor:         HexToColor(0x33AB4C),
		AlertColor:          HexToColor(0xC92231),
		BackgroundColor:     HexToColor(0x07090F),
		FontPath:            fontPath,
		BackgroundImagePath: backgroundPath,
	}
}

// DayTheme returns the high-contrast daylight palette.
func DayTheme(fontPath, backgroundPath string) Theme {
	return Theme{
		TextColor:           HexToColor(0x16181D),
		HintColor:           HexToColor(0x5C6066),
		AccentColor:         HexToColor(0x1E7A34),
		AlertColor:          HexToColor(0xB01E2C),
		BackgroundColor:     HexToColor(0xE9EAEC),
		FontPath:            fontPath,
		BackgroundImagePath: backgroundPath,
	}
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
