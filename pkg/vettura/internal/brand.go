package internal

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/logo.svg
var brandLogoSVG []byte

// BrandLogoTexture rasterizes the embedded brand mark at the given
// pixel size and uploads it as a texture.
func BrandLogoTexture(renderer *sdl.Renderer, w, h int) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(brandLogoSVG))
	if err != nil {
		return nil, fmt.Errorf("parse brand logo: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, fmt.Errorf("wrap logo surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("upload logo texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
