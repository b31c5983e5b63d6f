// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package co2mon

import "testing"

func TestDecrypt(t *testing.T) {
	frame := [8]byte{0x6c, 0xa4, 0xa2, 0xb6, 0x5d, 0x9a, 0x9c, 0x08}
	want := [8]byte{0x50, 0x04, 0x57, 0xab, 0x0d, 0x00, 0x00, 0x00}

	got := Decrypt(frame, [8]byte{})
	if got != want {
		t.Errorf("expected % x, got % x", want, got)
	}
	// Pure function, same output every time.
	if again := Decrypt(frame, [8]byte{}); again != got {
		t.Errorf("expected % x, got % x", got, again)
	}
}

func TestDecryptKeyed(t *testing.T) {
	frame := [8]byte{0x5f, 0xf1, 0xb3, 0x3e, 0x7f, 0xed, 0xfa, 0x4c}
	key := [8]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}
	want := [8]byte{0x50, 0x04, 0x57, 0xab, 0x0d, 0x00, 0x00, 0x00}

	if got := Decrypt(frame, key); got != want {
		t.Errorf("expected % x, got % x", want, got)
	}
}
