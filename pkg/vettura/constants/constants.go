// Package constants defines shared constants and environment-derived
// configuration values used throughout vettura.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names recognized at startup.
const (
	HardwareEnvVar       = "VETTURA_HARDWARE" // Overrides device-tree hardware detection
	WindowWidthEnvVar    = "WINDOW_WIDTH"     // Window width override in dev mode
	WindowHeightEnvVar   = "WINDOW_HEIGHT"    // Window height override in dev mode
	BackgroundPathEnvVar = "BACKGROUND_PATH"  // Custom background image path
	LogLevelEnvVar       = "LOG_LEVEL"        // Minimum log level (debug, info, warn, error)
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Fixed on-device paths.
const (
	ConfigPath          = "/data/vettura/vettura.toml"        // Device configuration file
	CertBundlePath      = "/usr/etc/tls/cert.pem"             // CA bundle present on Strada units
	FontPath            = "/usr/share/vettura/fonts/UI.ttf"   // Primary UI font
	BackgroundImagePath = "/usr/share/vettura/background.png" // Theme background image
	DefaultLogPath      = "/data/vettura/logs/vettura.log"
)

// Localization defaults. The catalog file is <CatalogName>.<locale>.toml
// inside TranslationsDir.
const (
	CatalogName     = "main"
	TranslationsDir = "translations"
)

// Power button handling on Strada hardware.
const (
	PowerButtonCode      = 116 // KEY_POWER
	PowerButtonDevice    = "/dev/input/event1"
	PowerShortPressMax   = 2 * time.Second
	PowerCoolDownTime    = 1 * time.Second
	DisplayToggleScript  = "/usr/bin/vettura-display"
	PowerShutdownCommand = "/sbin/poweroff"
)
