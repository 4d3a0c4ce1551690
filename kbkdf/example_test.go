// kbkdf-go: NIST SP 800-108 key derivation functions
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kbkdf_test

import (
	"crypto/sha256"
	"fmt"

	"github.com/dark-bio/kbkdf-go/kbkdf"
	"github.com/dark-bio/kbkdf-go/prf"
)

// Derive a 32-byte key with Counter-mode KBKDF over HMAC-SHA256, including
// the counter, separator, and length fields in every round.
func ExampleNewCounter() {
	kdf, err := kbkdf.NewCounter(prf.HMAC(sha256.New), 32, 4)
	if err != nil {
		panic(err)
	}

	key, err := kdf.Derive([]byte("input keying material"), true, true, true,
		[]byte("encryption"), []byte("session 42"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", key)
	// Output: 550608c6c1be99f222a6f845952247910488a49441fc72f863a63b57c0484ee3
}
