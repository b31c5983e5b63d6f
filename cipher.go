// Copyright 2026 The co2mon Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package co2mon

// The frame obfuscation subtracts this fixed string, nibble-swapped, as the
// final step.
var magicWord = [8]byte{'H', 't', 'e', 'm', 'p', '9', '9', 'e'}

// Decrypt deobfuscates one 8-byte frame read from a device running the older
// firmware. The transform is fixed: a byte permutation, a position-wise XOR
// with the session key, a right rotation of the whole frame by 3 bits (most
// significant byte first, wrapping), and a per-byte wrapping subtraction of
// the nibble-swapped magic word.
//
// Decrypt is pure and unconditional. Frames from newer firmware arrive in
// cleartext, carrying zgco2.Terminator at index 4 of the raw frame; callers
// detect those on the raw frame and skip decryption entirely.
func Decrypt(frame, key [8]byte) [8]byte {
	frame[0], frame[2] = frame[2], frame[0]
	frame[1], frame[4] = frame[4], frame[1]
	frame[3], frame[7] = frame[7], frame[3]
	frame[5], frame[6] = frame[6], frame[5]

	for i, k := range key {
		frame[i] ^= k
	}

	tmp := frame[7] << 5
	for i := 7; i > 0; i-- {
		frame[i] = frame[i-1]<<5 | frame[i]>>3
	}
	frame[0] = tmp | frame[0]>>3

	for i, m := range magicWord {
		frame[i] -= m<<4 | m>>4
	}

	return frame
}
