// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package co2mon

import (
	"fmt"
	"time"

	"github.com/sstallion/go-hid"
)

// VendorID and ProductID identify the Holtek USB-zyTemp HID interface used
// by the ZyAura ZG monitors.
const (
	VendorID  uint16 = 0x04D9
	ProductID uint16 = 0xA052
)

// Transport is the HID link to the monitor. *hid.Device implements it; the
// co2montest package provides scripted implementations for tests.
type Transport interface {
	// SendFeatureReport writes a feature report, report id first.
	SendFeatureReport(p []byte) (int, error)
	// ReadWithTimeout reads one input report. A negative timeout blocks
	// indefinitely. A read that times out at the HID level reports 0 bytes
	// and no error.
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)
	Close() error
}

var _ Transport = (*hid.Device)(nil)

// Open opens the monitor and configures its session encryption key. With
// nil opts it opens the first device matching VendorID and ProductID, using
// an all-zero key and a 5 second frame timeout. A device path or serial
// number set in opts selects a specific device instead.
func Open(opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if _, err := opts.readTimeout(); err != nil {
		return nil, err
	}
	if err := hid.Init(); err != nil {
		return nil, fmt.Errorf("co2mon: %w", err)
	}

	var (
		t   *hid.Device
		err error
	)
	switch {
	case opts.Path != "":
		t, err = hid.OpenPath(opts.Path)
	case opts.SerialNumber != "":
		t, err = hid.Open(VendorID, ProductID, opts.SerialNumber)
	default:
		t, err = hid.OpenFirst(VendorID, ProductID)
	}
	if err != nil {
		return nil, fmt.Errorf("co2mon: %w", err)
	}

	d, err := New(t, opts)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	return d, nil
}
