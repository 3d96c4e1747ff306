// Package scan watches for the beacon's advertisements on a host
// machine and fans decoded readings out to MQTT and the dashboard API.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tinygo.org/x/bluetooth"
)

// Match is a single observation of the beacon.
type Match struct {
	Address   string
	RSSI      int16
	LocalName string
	CompanyID uint16
	Data      []byte
	SeenAt    time.Time
}

type Options struct {
	Adapter    string // "hci0" by default
	DeviceName string // advertisement local name to accept
	CompanyID  uint16 // manufacturer data element to accept
}

// Listener wraps BlueZ scanning with context cancellation.
type Listener struct {
	adapter *bluetooth.Adapter
	opts    Options
}

func NewListener(opts Options) *Listener {
	if opts.Adapter == "" {
		opts.Adapter = "hci0"
	}

	return &Listener{
		adapter: bluetooth.NewAdapter(opts.Adapter),
		opts:    opts,
	}
}

func (l *Listener) Run(ctx context.Context, onMatch func(Match)) error {
	slog.Info("ble: enabling adapter", "adapter", l.opts.Adapter)
	if err := l.adapter.Enable(); err != nil {
		return fmt.Errorf("ble enable (%s): %w", l.opts.Adapter, err)
	}

	go func() {
		<-ctx.Done()
		_ = l.adapter.StopScan()
	}()

	slog.Info("ble: scanning started",
		"filter_name", l.opts.DeviceName,
		"filter_company", hex4(l.opts.CompanyID),
	)

	// adapter.Scan blocks until StopScan() or error.
	err := l.adapter.Scan(func(a *bluetooth.Adapter, r bluetooth.ScanResult) {
		if l.opts.DeviceName != "" && r.LocalName() != l.opts.DeviceName {
			return
		}

		for _, md := range r.ManufacturerData() {
			if md.CompanyID != l.opts.CompanyID {
				continue
			}

			if onMatch != nil {
				onMatch(Match{
					Address:   r.Address.String(),
					RSSI:      r.RSSI,
					LocalName: r.LocalName(),
					CompanyID: md.CompanyID,
					Data:      append([]byte(nil), md.Data...),
					SeenAt:    time.Now(),
				})
			}
			return
		}
	})

	// If ctx canceled, treat as clean shutdown.
	if ctx.Err() != nil {
		slog.Info("ble: scanning stopped (context canceled)")
		return nil
	}

	if err != nil {
		return fmt.Errorf("ble scan: %w", err)
	}

	slog.Info("ble: scanning stopped")
	return nil
}
