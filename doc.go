// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package co2mon is a driver for the Holtek (ZyAura ZG) CO₂ USB monitors,
// such as the TFA-Dostmann AIRCO2NTROL MINI.
//
// The monitor is a USB HID device that reports one value per 8-byte frame.
// Older firmware obfuscates the frames with a session key set at open time;
// newer firmware sends them in the clear. Open handles both:
//
//	dev, err := co2mon.Open(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Close()
//	reading, err := dev.ReadCombined(30 * time.Second)
//
// The wire protocol itself lives in the zgco2 package.
//
// # Permissions
//
// On Linux, the HID device node must be accessible. A udev rule such as the
// following (saved to /etc/udev/rules.d/60-co2mon.rules) makes the device
// available to every local user:
//
//	ACTION=="add|change", SUBSYSTEMS=="usb", ATTRS{idVendor}=="04d9", ATTRS{idProduct}=="a052", MODE:="0666"
//
// # References
//
// The USB HID protocol is not documented, but was reverse engineered. See
// https://hackaday.io/project/5301/ and https://revspace.nl/CO2MeterHacking.
package co2mon
