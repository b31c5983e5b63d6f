// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package co2mon

import "errors"

var (
	// ErrTimeout is returned by ReadCombined when the deadline elapses
	// before both a temperature and a CO₂ reading have been observed.
	ErrTimeout = errors.New("co2mon: timeout waiting for readings")
	// ErrInvalidTimeout is returned when a configured timeout cannot be
	// represented as a non-negative 32-bit millisecond count, which is what
	// the HID layer expects.
	ErrInvalidTimeout = errors.New("co2mon: timeout out of range")
)
