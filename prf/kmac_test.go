// kbkdf-go: NIST SP 800-108 key derivation functions
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prf

import (
	"bytes"
	"testing"
)

// Sample #1 from the NIST SP 800-185 KMAC example values.
// https://csrc.nist.gov/CSRC/media/Projects/Cryptographic-Standards-and-Guidelines/documents/examples/KMAC_samples.pdf
func TestKMAC128Sample(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(0x40 + i)
	}
	data := []byte{0x00, 0x01, 0x02, 0x03}
	want := mustDecode("e5780b0d3ea6f7d3a429c5706aa43a00fadbd7d49628839e3187243f456ee14e")

	if got := sum(KMAC128(32), key, data); !bytes.Equal(got, want) {
		t.Errorf("KMAC128 = %x, want %x", got, want)
	}
}

func TestLeftEncode(t *testing.T) {
	tests := []struct {
		n   uint64
		out string
	}{
		{0, "0100"},
		{1, "0101"},
		{136, "0188"},
		{168, "01a8"},
		{256, "020100"},
		{65536, "03010000"},
	}
	for _, tc := range tests {
		if got := leftEncode(tc.n); !bytes.Equal(got, mustDecode(tc.out)) {
			t.Errorf("leftEncode(%d) = %x, want %s", tc.n, got, tc.out)
		}
	}
}

func TestRightEncode(t *testing.T) {
	tests := []struct {
		n   uint64
		out string
	}{
		{0, "0001"},
		{1, "0101"},
		{255, "ff01"},
		{256, "010002"},
		{2048, "080002"},
		{65536, "01000003"},
	}
	for _, tc := range tests {
		if got := rightEncode(tc.n); !bytes.Equal(got, mustDecode(tc.out)) {
			t.Errorf("rightEncode(%d) = %x, want %s", tc.n, got, tc.out)
		}
	}
}
