// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package co2mon

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"

	"github.com/lnicola/co2mon/zgco2"
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Key is the 8-byte session encryption key sent to the device at open
	// time. There is normally no need to change it from all zeroes.
	Key [8]byte
	// Timeout is the timeout for reading a single frame. 0 means no
	// timeout. It must convert to a non-negative 32-bit millisecond count,
	// anything else fails with ErrInvalidTimeout at open time.
	Timeout time.Duration
	// SerialNumber opens the device with the given serial number instead
	// of the first vendor/product id match.
	SerialNumber string
	// Path opens the device at the given platform-specific path. Takes
	// precedence over SerialNumber.
	Path string
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Timeout: 5 * time.Second,
}

// noTimeout makes the HID layer block indefinitely.
const noTimeout = -1 * time.Millisecond

func (o *Opts) readTimeout() (time.Duration, error) {
	if o.Timeout == 0 {
		return noTimeout, nil
	}
	if o.Timeout < 0 || o.Timeout.Milliseconds() > math.MaxInt32 {
		return 0, ErrInvalidTimeout
	}
	return o.Timeout, nil
}

// Reading is a combined temperature and CO₂ measurement.
type Reading struct {
	Temperature physic.Temperature
	CO2         zgco2.PPM
}

func (r Reading) String() string {
	return fmt.Sprintf("Temperature: %s CO2: %s", r.Temperature, r.CO2)
}

// Dev represents an open CO₂ monitor.
//
// The monitor reports one value at a time, so all reads are serial. A Dev
// must not be shared between goroutines unless the underlying Transport
// supports concurrent use, which the stock HID handle does not guarantee.
type Dev struct {
	t       Transport
	key     [8]byte
	timeout time.Duration // negative blocks indefinitely

	mu     sync.Mutex
	chHalt chan struct{}
}

// New wraps an already opened transport. It validates the configured
// timeout and sends the feature report that selects the session encryption
// key. Open is the usual entry point; New exists for custom transports such
// as recordings.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	timeout, err := opts.readTimeout()
	if err != nil {
		return nil, err
	}

	// Report id 0, followed by the key.
	report := make([]byte, 9)
	copy(report[1:], opts.Key[:])
	if _, err := t.SendFeatureReport(report); err != nil {
		return nil, fmt.Errorf("co2mon: set encryption key: %w", err)
	}

	return &Dev{t: t, key: opts.Key, timeout: timeout}, nil
}

// Read takes a single measurement from the sensor, blocking up to the
// configured timeout. A frame shorter than 8 bytes, including a HID-level
// timeout, fails with zgco2.ErrInvalidMessage.
func (d *Dev) Read() (zgco2.Measurement, error) {
	return d.read(d.timeout)
}

func (d *Dev) read(timeout time.Duration) (zgco2.Measurement, error) {
	var frame [8]byte
	n, err := d.t.ReadWithTimeout(frame[:], timeout)
	if err != nil {
		return nil, fmt.Errorf("co2mon: read frame: %w", err)
	}
	if n != len(frame) {
		return nil, zgco2.ErrInvalidMessage
	}
	if frame[4] != zgco2.Terminator {
		// Older firmware obfuscates the frame. Newer firmware sends it in
		// the clear, recognizable by the terminator in the raw frame.
		frame = Decrypt(frame, d.key)
	}
	return zgco2.Decode([5]byte(frame[:5]))
}

// ReadCombined reads measurements until both a temperature and a CO₂ value
// have been observed and returns them as one Reading. The sensor emits the
// two kinds at its own cadence, interleaved with other kinds; the last
// observed value of each wins, so the two halves of the result may have
// been sampled a few frames apart.
//
// timeout bounds the whole accumulation. It is checked after each frame;
// once it elapses, ReadCombined fails with ErrTimeout. A timeout of 0 or
// less waits for as long as it takes, paced only by the per-frame timeout.
// Decode and transport failures abort immediately and propagate unchanged.
func (d *Dev) ReadCombined(timeout time.Duration) (Reading, error) {
	var deadline time.Time
	if timeout > 0 {
		if timeout.Milliseconds() > math.MaxInt32 {
			return Reading{}, ErrInvalidTimeout
		}
		deadline = time.Now().Add(timeout)
	}

	var (
		reading  Reading
		haveTemp bool
		haveCO2  bool
	)
	for {
		readTimeout := d.timeout
		if !deadline.IsZero() {
			// Spend whatever is left of the budget on this frame.
			readTimeout = time.Until(deadline)
			if readTimeout < time.Millisecond {
				readTimeout = time.Millisecond
			}
		}
		m, err := d.read(readTimeout)
		if err != nil {
			return Reading{}, err
		}
		switch m := m.(type) {
		case zgco2.Temperature:
			reading.Temperature = physic.Temperature(m)
			haveTemp = true
		case zgco2.CO2:
			reading.CO2 = zgco2.PPM(m)
			haveCO2 = true
		}
		if haveTemp && haveCO2 {
			return reading, nil
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return Reading{}, ErrTimeout
		}
	}
}

// ReadContinuous produces a combined reading on the returned channel every
// interval until Halt is called. Readings that do not complete within one
// interval are skipped. The device must not be read from elsewhere while a
// continuous read is running.
func (d *Dev) ReadContinuous(interval time.Duration) (<-chan Reading, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.chHalt != nil {
		return nil, errors.New("co2mon: ReadContinuous() running already")
	}
	d.chHalt = make(chan struct{})
	chHalt := d.chHalt

	channel := make(chan Reading, 16)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(channel)
		for {
			select {
			case <-chHalt:
				return
			case <-ticker.C:
				r, err := d.ReadCombined(interval)
				if err == nil && len(channel) < cap(channel) {
					channel <- r
				}
			}
		}
	}()
	return channel, nil
}

// Halt stops a continuous read started by ReadContinuous.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.chHalt != nil {
		close(d.chHalt)
		d.chHalt = nil
	}
	return nil
}

// Close halts any continuous read and closes the transport.
func (d *Dev) Close() error {
	_ = d.Halt()
	return d.t.Close()
}

func (d *Dev) String() string {
	return fmt.Sprintf("co2mon: ZyAura ZG (%04x:%04x)", VendorID, ProductID)
}
