package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with a font
// that carries the icon plane; with the plain UI font they fall back
// to the replacement glyph, which is acceptable in dev mode.
const (
	Vehicle     = "\U000F010B" // Car silhouette
	WiFi        = ""     // WiFi signal icon
	GPS         = "\U000F05CC" // GPS crosshair icon
	Cellular    = "\U000F0860" // Cellular signal icon
	Alert       = "\U000F0026" // Warning triangle
	Thermometer = "\U000F050F" // Temperature icon
)
