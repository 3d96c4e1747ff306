// Firmware for the xG27-Sensor environmental beacon: samples three
// sensor channels once per second, packs the readings into a fixed
// manufacturer-data payload and broadcasts it as a non-connectable BLE
// advertisement. A hardware watchdog resets the board if the loop ever
// stalls.
//
// Build with tinygo for real hardware; a plain go build produces a host
// simulation with synthetic sensors and a logging radio.
package main

import (
	"time"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/broadcast"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/loop"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/sense"
)

const (
	cyclePeriod    = time.Second
	radioBootDelay = 500 * time.Millisecond
)

// platform bundles everything the loop needs from the underlying
// hardware, filled in by the build-tagged initPlatform variants.
type platform struct {
	climate  sense.ClimateSource
	light    sense.LightSource
	magnetic sense.MagneticSource
	radio    broadcast.Radio
	dog      loop.Watchdog
	debug    loop.Sink
}

func main() {
	p, err := initPlatform()
	if err != nil {
		fail("platform init failed", err)
	}

	ctrl := broadcast.New(p.radio)

	// The BLE stack reports readiness asynchronously relative to the
	// sampling loop. Until Activate fires, pushed cycles are dropped.
	go func() {
		time.Sleep(radioBootDelay)
		if err := ctrl.Activate(); err != nil {
			println("ble: advertising start failed:", err.Error())
		}
	}()

	sched := loop.New(loop.Config{
		Climate:  p.climate,
		Light:    p.light,
		Magnetic: p.magnetic,
		Radio:    ctrl,
		Dog:      p.dog,
		Debug:    p.debug,
		Period:   cyclePeriod,
	})
	sched.Run()
}
