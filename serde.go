// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package co2mon

import (
	"encoding/json"

	"periph.io/x/conn/v3/physic"

	"github.com/lnicola/co2mon/zgco2"
)

// The interchange form of a Reading: temperature in degrees Celsius as a
// 32-bit float, CO₂ in ppm.
type readingJSON struct {
	Temperature float32   `json:"temperature"`
	CO2         zgco2.PPM `json:"co2"`
}

func (r Reading) MarshalJSON() ([]byte, error) {
	return json.Marshal(readingJSON{
		Temperature: float32(r.Temperature.Celsius()),
		CO2:         r.CO2,
	})
}

func (r *Reading) UnmarshalJSON(data []byte) error {
	var v readingJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.Temperature = physic.ZeroCelsius + physic.Temperature(float64(v.Temperature)*float64(physic.Celsius))
	r.CO2 = v.CO2
	return nil
}
