// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package zgco2

import (
	"encoding/json"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Measurements marshal as a single-key object tagged by the variant name.
// The known variants carry one scalar: humidity in percent, temperature in
// degrees Celsius, CO₂ in ppm. Unknown carries the [kind, value] pair.
//
//	{"Temperature": 21.4125}
//	{"Unknown": [79, 13415]}

func (h Humidity) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{"Humidity": h.Percent()})
}

func (t Temperature) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{"Temperature": t.Celsius()})
}

func (c CO2) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]uint16{"CO2": uint16(c)})
}

func (u Unknown) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string][2]uint16{"Unknown": {uint16(u.Kind), u.Value}})
}

// UnmarshalMeasurement decodes a measurement serialized by MarshalJSON.
func UnmarshalMeasurement(data []byte) (Measurement, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if len(fields) != 1 {
		return nil, fmt.Errorf("zgco2: expected a single variant, got %d fields", len(fields))
	}
	for name, raw := range fields {
		switch name {
		case "Humidity":
			var v float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
			return Humidity(physic.RelativeHumidity(v * float64(physic.PercentRH))), nil
		case "Temperature":
			var v float64
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
			return Temperature(physic.ZeroCelsius + physic.Temperature(v*float64(physic.Celsius))), nil
		case "CO2":
			var v uint16
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
			return CO2(v), nil
		case "Unknown":
			var v [2]uint16
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
			if v[0] > 0xFF {
				return nil, fmt.Errorf("zgco2: kind 0x%x does not fit in a byte", v[0])
			}
			return Unknown{Kind: byte(v[0]), Value: v[1]}, nil
		}
		return nil, fmt.Errorf("zgco2: unknown variant %q", name)
	}
	return nil, fmt.Errorf("zgco2: empty measurement")
}
