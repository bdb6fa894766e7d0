package internal

import (
	"os/exec"
	"strings"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig describes how the hardware power button is
// watched and what runs on short and long presses.
type PowerButtonConfig struct {
	DevicePath          string        // evdev input device carrying the button
	ButtonCode          uint16        // Key code (KEY_POWER on Strada)
	ShortPressMax       time.Duration // Presses at or beyond this run the shutdown command
	CoolDownTime        time.Duration // Minimum spacing between handled presses
	DisplayToggleScript string        // Short press: toggle the display
	ShutdownCommand     string        // Long press: power the unit off
}

// watchPowerButton reads the input device until stop is closed.
// Closing the device unblocks the pending read.
func watchPowerButton(pbc PowerButtonConfig, stop <-chan struct{}) {
	log := GetLogger()

	dev, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		log.Error("failed to open power button device", "path", pbc.DevicePath, "error", err)
		return
	}

	go func() {
		<-stop
		dev.Close()
	}()

	var pressedAt time.Time
	var lastHandled time.Time

	for {
		event, err := dev.ReadOne()
		if err != nil {
			// Device closed during shutdown, or unplugged
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != evdev.EvCode(pbc.ButtonCode) {
			continue
		}

		switch event.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if pressedAt.IsZero() {
				continue
			}
			if !lastHandled.IsZero() && time.Since(lastHandled) < pbc.CoolDownTime {
				continue
			}

			held := time.Since(pressedAt)
			lastHandled = time.Now()
			pressedAt = time.Time{}

			if held >= pbc.ShortPressMax {
				log.Info("power button long press", "held", held)
				runScript(pbc.ShutdownCommand)
			} else {
				log.Info("power button short press", "held", held)
				runScript(pbc.DisplayToggleScript)
			}
		}
	}
}

func runScript(cmdline string) {
	if cmdline == "" {
		return
	}

	parts := strings.Fields(cmdline)
	if err := exec.Command(parts[0], parts[1:]...).Run(); err != nil {
		GetLogger().Error("power action failed", "command", cmdline, "error", err)
	}
}
