//go:build tinygo || baremetal

// Hardware wiring: BME280 (temperature/humidity) and BH1750 (ambient
// light) and LSM303AGR (magnetometer) on the I2C bus, BLE advertising
// through the on-board radio, and the MCU watchdog as the liveness
// guarantee.
package main

import (
	"fmt"
	"machine"
	"time"

	"tinygo.org/x/bluetooth"
	"tinygo.org/x/drivers/bh1750"
	"tinygo.org/x/drivers/bme280"
	"tinygo.org/x/drivers/lsm303agr"

	"github.com/belavarga1117/xg27-sensor-dashboard/internal/payload"
	"github.com/belavarga1117/xg27-sensor-dashboard/internal/sense"
)

const (
	deviceName  = "xG27-Sensor"
	advInterval = 100 * time.Millisecond

	// The loop feeds once per second; 5 s covers slow I2C transactions
	// without masking a genuine stall.
	watchdogWindowMs = 5000
)

func initPlatform() (platform, error) {
	machine.Serial.Configure(machine.UARTConfig{})
	// Give the host time to enumerate the USB serial device.
	time.Sleep(1500 * time.Millisecond)

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		return platform{}, err
	}

	climate := &climateSensor{dev: bme280.New(i2c)}
	climate.dev.Configure()

	light := &lightSensor{dev: bh1750.New(i2c)}
	light.dev.Configure()

	magnet := &magnetSensor{dev: lsm303agr.New(i2c)}
	if err := magnet.dev.Configure(lsm303agr.Configuration{}); err != nil {
		return platform{}, err
	}

	radio, err := newAdvertiser()
	if err != nil {
		return platform{}, err
	}

	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: watchdogWindowMs}); err != nil {
		return platform{}, err
	}
	if err := machine.Watchdog.Start(); err != nil {
		return platform{}, err
	}

	return platform{
		climate:  climate,
		light:    light,
		magnetic: magnet,
		radio:    radio,
		dog:      hardwareWatchdog{},
		debug:    serialSink{},
	}, nil
}

type climateSensor struct{ dev bme280.Device }

func (s *climateSensor) ReadClimate() (temp, hum sense.Value, err error) {
	t, err := s.dev.ReadTemperature() // milli-°C
	if err != nil {
		return sense.Value{}, sense.Value{}, err
	}
	h, err := s.dev.ReadHumidity() // hundredths of %RH
	if err != nil {
		return sense.Value{}, sense.Value{}, err
	}
	return sense.Value{Int: t / 1000, Frac: (t % 1000) * 1000},
		sense.Value{Int: h / 100, Frac: (h % 100) * 10_000}, nil
}

type lightSensor struct{ dev bh1750.Device }

func (s *lightSensor) ReadLight() (sense.Value, error) {
	mlx := s.dev.Illuminance()
	return sense.Value{Int: mlx / 1000, Frac: (mlx % 1000) * 1000}, nil
}

type magnetSensor struct{ dev lsm303agr.Device }

func (s *magnetSensor) ReadMagnetic() (sense.Value, error) {
	_, _, z, err := s.dev.ReadMagneticField() // nT
	if err != nil {
		return sense.Value{}, err
	}
	// 1 G = 100 µT = 100000 nT; fractional part in micro-gauss.
	return sense.Value{Int: z / 100_000, Frac: (z % 100_000) * 10}, nil
}

type bleAdvertiser struct {
	adv *bluetooth.Advertisement
}

func newAdvertiser() (*bleAdvertiser, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, err
	}
	return &bleAdvertiser{adv: adapter.DefaultAdvertisement()}, nil
}

func (r *bleAdvertiser) options(p []byte) bluetooth.AdvertisementOptions {
	return bluetooth.AdvertisementOptions{
		AdvertisementType: bluetooth.AdvertisingTypeNonConnInd,
		LocalName:         deviceName,
		Interval:          bluetooth.NewDuration(advInterval),
		ManufacturerData: []bluetooth.ManufacturerDataElement{
			// The stack emits the company ID itself, so only the bytes
			// after the payload's two-byte prefix go in Data.
			{CompanyID: payload.CompanyID, Data: p[2:]},
		},
	}
}

func (r *bleAdvertiser) Start(p []byte) error {
	if err := r.adv.Configure(r.options(p)); err != nil {
		return err
	}
	return r.adv.Start()
}

// Update re-configures the running advertisement so the broadcast
// frames carry the new payload bytes.
func (r *bleAdvertiser) Update(p []byte) error {
	return r.adv.Configure(r.options(p))
}

type hardwareWatchdog struct{}

func (hardwareWatchdog) Feed() { machine.Watchdog.Update() }

// serialSink prints one JSON line per cycle on the serial console, the
// same shape the dashboard tooling tails.
type serialSink struct{}

func (serialSink) Cycle(f payload.Fields, pushErr error) {
	frac := int(f.Temperature) % 100
	if frac < 0 {
		frac = -frac
	}
	fmt.Printf("{\"t\":%d.%02d,\"h\":%d,\"l\":%d,\"m\":%d,\"f\":%d}\n",
		int(f.Temperature)/100, frac, f.Humidity, f.Illuminance, f.Magnetic, byte(f.Flags))
	if pushErr != nil {
		fmt.Println("ble: payload update failed:", pushErr)
	}
}

func fail(msg string, err error) {
	for {
		fmt.Println("FATAL:", msg+":", err)
		time.Sleep(time.Second)
	}
}
