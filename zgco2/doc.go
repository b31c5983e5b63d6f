// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package zgco2 implements the ZyAura ZG CO₂ sensor wire protocol.
//
// The sensor reports one value per 5-byte message: relative humidity,
// temperature, CO₂ concentration, or a kind this package does not know
// about. Decode validates a message and returns it as a typed Measurement.
//
// This package is pure protocol handling. To read messages from one of the
// commercially available USB monitors, use the parent co2mon package.
//
// # References
//
// The protocol is not documented by the vendor, but has been reverse
// engineered before. See https://revspace.nl/CO2MeterHacking for details.
package zgco2
