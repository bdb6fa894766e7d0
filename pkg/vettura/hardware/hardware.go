// Package hardware identifies the device class the process runs on.
//
// Detection happens once at startup; the resulting Profile is a value
// treated as read-only afterwards.
package hardware

import (
	"os"
	"strings"

	"github.com/vettura-project/vettura/pkg/vettura/constants"
)

// Device-tree model prefix reported by Strada head units.
const stradaModelPrefix = "vettura,strada"

var modelPaths = []string{
	"/proc/device-tree/model",
	"/sys/firmware/devicetree/base/model",
}

// Profile describes the detected hardware target.
type Profile struct {
	Model string
}

// Detect reads the device identity from the device tree. The
// VETTURA_HARDWARE environment variable overrides detection for
// development.
func Detect() Profile {
	if v := os.Getenv(constants.HardwareEnvVar); v != "" {
		return Profile{Model: v}
	}

	for _, path := range modelPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// Device-tree strings are NUL terminated
		return Profile{Model: strings.TrimRight(string(data), "\x00\n")}
	}

	return Profile{}
}

// IsStrada reports whether the process runs on the Strada head unit,
// the supported embedded hardware target.
func (p Profile) IsStrada() bool {
	return strings.HasPrefix(p.Model, stradaModelPrefix)
}

func (p Profile) String() string {
	if p.Model == "" {
		return "unknown"
	}
	return p.Model
}
