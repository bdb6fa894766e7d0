// Package internal contains the SDL plumbing for vettura: surface
// format and window setup, theming, fonts, logging, and hardware
// button handling. Types and functions in this package are not part
// of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Baseline CA roots; device images ship without a system trust store
