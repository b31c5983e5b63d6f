// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package zgco2

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Terminator is the fixed last byte of every valid 5-byte message. The
// driver also uses it to recognize frames that newer firmware transmits
// unencrypted.
const Terminator byte = 0x0D

var (
	// ErrInvalidMessage is returned when a message does not end with
	// Terminator.
	ErrInvalidMessage = errors.New("zgco2: invalid message")
	// ErrChecksum is returned when the additive checksum does not match.
	ErrChecksum = errors.New("zgco2: checksum error")
)

// PPM is a CO₂ concentration in parts per million.
type PPM uint16

func (p PPM) String() string {
	return fmt.Sprintf("%d PPM", p)
}

// Measurement is a single reading reported by the sensor.
//
// The set of kinds is open ended: the sensor hardware emits message kinds
// beyond the three decoded here, and future firmware may add more. Consumers
// must not switch exhaustively over the known variants; always keep a
// default case alongside Unknown.
type Measurement interface {
	fmt.Stringer
	measurement()
}

// Humidity is a relative humidity reading.
type Humidity physic.RelativeHumidity

func (Humidity) measurement() {}

// Percent returns the reading in percent relative humidity.
func (h Humidity) Percent() float64 {
	return float64(h) / float64(physic.PercentRH)
}

func (h Humidity) String() string {
	return physic.RelativeHumidity(h).String()
}

// Temperature is a temperature reading.
type Temperature physic.Temperature

func (Temperature) measurement() {}

// Celsius returns the reading in degrees Celsius.
func (t Temperature) Celsius() float64 {
	return physic.Temperature(t).Celsius()
}

func (t Temperature) String() string {
	return physic.Temperature(t).String()
}

// CO2 is a CO₂ concentration reading.
type CO2 PPM

func (CO2) measurement() {}

func (c CO2) String() string {
	return PPM(c).String()
}

// Unknown is a syntactically valid reading of a kind this package does not
// decode. Kind is the raw tag byte and Value the raw 16-bit payload, both
// preserved verbatim.
type Unknown struct {
	Kind  byte
	Value uint16
}

func (Unknown) measurement() {}

func (u Unknown) String() string {
	return fmt.Sprintf("unknown reading 0x%02x (0x%04x)", u.Kind, u.Value)
}

// The device reports temperature in 1/16 Kelvin steps.
const kelvinSixteenth = 62500 * physic.MicroKelvin

// Decode validates a 5-byte message and returns the measurement it carries.
//
// A message must end with Terminator and its fourth byte must equal the
// 8-bit wrapping sum of the first three. Byte 0 tags the kind, bytes 1 and 2
// form the big-endian value.
func Decode(packet [5]byte) (Measurement, error) {
	if packet[4] != Terminator {
		return nil, ErrInvalidMessage
	}
	if packet[0]+packet[1]+packet[2] != packet[3] {
		return nil, ErrChecksum
	}

	value := uint16(packet[1])<<8 | uint16(packet[2])
	switch packet[0] {
	case 'A':
		// Hundredths of a percent. Widen before scaling, RelativeHumidity
		// is only 32 bits.
		rh := int64(value) * int64(physic.PercentRH) / 100
		return Humidity(physic.RelativeHumidity(rh)), nil
	case 'B':
		return Temperature(physic.Temperature(value) * kelvinSixteenth), nil
	case 'P':
		return CO2(value), nil
	default:
		return Unknown{Kind: packet[0], Value: value}, nil
	}
}
