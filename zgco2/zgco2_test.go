// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package zgco2

import (
	"errors"
	"math"
	"testing"
)

func TestDecodeCO2(t *testing.T) {
	m, err := Decode([5]byte{0x50, 0x04, 0x57, 0xab, 0x0d})
	if err != nil {
		t.Fatal(err)
	}
	co2, ok := m.(CO2)
	if !ok {
		t.Fatalf("expected CO2, got %T", m)
	}
	if co2 != 1111 {
		t.Errorf("expected 1111 PPM, got %s", co2)
	}
}

func TestDecodeHumidity(t *testing.T) {
	m, err := Decode([5]byte{0x41, 0x00, 0x00, 0x41, 0x0d})
	if err != nil {
		t.Fatal(err)
	}
	h, ok := m.(Humidity)
	if !ok {
		t.Fatalf("expected Humidity, got %T", m)
	}
	if math.Abs(h.Percent()) > 1e-9 {
		t.Errorf("expected 0%%rH, got %s", h)
	}
}

func TestDecodeTemperature(t *testing.T) {
	m, err := Decode([5]byte{0x42, 0x12, 0x69, 0xbd, 0x0d})
	if err != nil {
		t.Fatal(err)
	}
	temp, ok := m.(Temperature)
	if !ok {
		t.Fatalf("expected Temperature, got %T", m)
	}
	if diff := math.Abs(temp.Celsius() - 21.4125); diff > 1e-6 {
		t.Errorf("expected 21.4125°C, got %s (diff %g)", temp, diff)
	}
}

func TestDecodeBadTerminator(t *testing.T) {
	if _, err := Decode([5]byte{0x42, 0x12, 0x69, 0xbd, 0x00}); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestDecodeBadChecksum(t *testing.T) {
	if _, err := Decode([5]byte{0x42, 0x12, 0x69, 0x00, 0x0d}); !errors.Is(err, ErrChecksum) {
		t.Errorf("expected ErrChecksum, got %v", err)
	}
}

// The checksum wraps at 8 bits.
func TestDecodeChecksumWraps(t *testing.T) {
	packet := [5]byte{0x50, 0xff, 0xff, 0x4e, 0x0d}
	m, err := Decode(packet)
	if err != nil {
		t.Fatal(err)
	}
	if co2 := m.(CO2); co2 != 0xffff {
		t.Errorf("expected 65535 PPM, got %s", co2)
	}
}

// Every kind outside 'A', 'B' and 'P' decodes as Unknown with the tag and
// value preserved verbatim.
func TestDecodeUnknownKinds(t *testing.T) {
	for kind := 0; kind < 256; kind++ {
		switch byte(kind) {
		case 'A', 'B', 'P':
			continue
		}
		packet := [5]byte{byte(kind), 0x12, 0x34, byte(kind) + 0x12 + 0x34, 0x0d}
		m, err := Decode(packet)
		if err != nil {
			t.Fatalf("kind 0x%02x: %v", kind, err)
		}
		u, ok := m.(Unknown)
		if !ok {
			t.Fatalf("kind 0x%02x: expected Unknown, got %T", kind, m)
		}
		if u.Kind != byte(kind) || u.Value != 0x1234 {
			t.Errorf("kind 0x%02x: got %s", kind, u)
		}
	}
}

func TestString(t *testing.T) {
	var tests = []struct {
		packet [5]byte
		want   string
	}{
		{[5]byte{0x50, 0x04, 0x57, 0xab, 0x0d}, "1111 PPM"},
		{[5]byte{0x4f, 0x34, 0x67, 0xea, 0x0d}, "unknown reading 0x4f (0x3467)"},
	}
	for _, tt := range tests {
		m, err := Decode(tt.packet)
		if err != nil {
			t.Fatal(err)
		}
		if s := m.String(); s != tt.want {
			t.Errorf("expected %q, got %q", tt.want, s)
		}
	}
}
