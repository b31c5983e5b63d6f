//go:build examples
// +build examples

// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package co2mon_test

import (
	"fmt"
	"log"
	"time"

	"github.com/lnicola/co2mon"
)

// Basic example program for the ZyAura ZG USB monitors using this library.
// It needs a monitor plugged in and accessible, see the package
// documentation for the udev rule.
func Example() {
	dev, err := co2mon.Open(nil)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	reading, err := dev.ReadCombined(30 * time.Second)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reading)
	// Output: Temperature: 24.845°C CO2: 581 PPM
}

// Polling the monitor on a fixed interval.
func Example_continuous() {
	dev, err := co2mon.Open(&co2mon.Opts{Timeout: 10 * time.Second})
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	ch, err := dev.ReadContinuous(30 * time.Second)
	if err != nil {
		log.Fatal(err)
	}
	for reading := range ch {
		fmt.Println(reading)
	}
}
