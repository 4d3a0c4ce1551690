// kbkdf-go: NIST SP 800-108 key derivation functions
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prf

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// cSHAKE rates in bytes, per FIPS 202.
const (
	rate128 = 168
	rate256 = 136
)

// KMAC128 returns the KMAC128 PRF family of NIST SP 800-185 producing
// size-byte outputs, with an empty customization string. Keys of any
// length are accepted.
//
// https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-185.pdf
func KMAC128(size int) Family {
	if size < 1 {
		panic("prf: invalid KMAC output size")
	}
	return kmacFamily{size: size, rate: rate128, newCShake: sha3.NewCShake128}
}

// KMAC256 returns the KMAC256 PRF family of NIST SP 800-185 producing
// size-byte outputs, with an empty customization string. Keys of any
// length are accepted.
func KMAC256(size int) Family {
	if size < 1 {
		panic("prf: invalid KMAC output size")
	}
	return kmacFamily{size: size, rate: rate256, newCShake: sha3.NewCShake256}
}

type kmacFamily struct {
	size      int
	rate      int
	newCShake func(n, s []byte) sha3.ShakeHash
}

func (f kmacFamily) Size() int { return f.size }

func (f kmacFamily) New(key []byte) PRF {
	h := f.newCShake([]byte("KMAC"), nil)
	writeKeyBlock(h, key, f.rate)
	return &kmacPRF{h: h, size: f.size}
}

type kmacPRF struct {
	h    sha3.ShakeHash
	size int
}

func (p *kmacPRF) Write(b []byte) (int, error) { return p.h.Write(b) }

func (p *kmacPRF) Sum(b []byte) []byte {
	p.h.Write(rightEncode(uint64(p.size) * 8))
	out := make([]byte, p.size)
	if _, err := io.ReadFull(p.h, out); err != nil {
		panic("prf: " + err.Error())
	}
	return append(b, out...)
}

// writeKeyBlock absorbs bytepad(encode_string(key), rate), SP 800-185
// section 4.3.
func writeKeyBlock(h io.Writer, key []byte, rate int) {
	prefix := leftEncode(uint64(rate))
	enc := leftEncode(uint64(len(key)) * 8)
	h.Write(prefix)
	h.Write(enc)
	h.Write(key)
	if pad := (len(prefix) + len(enc) + len(key)) % rate; pad != 0 {
		h.Write(make([]byte, rate-pad))
	}
}

// leftEncode returns n as a minimal big-endian integer preceded by its byte
// length, SP 800-185 section 2.3.1.
func leftEncode(n uint64) []byte {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[1:], n)
	i := 1
	for i < 8 && buf[i] == 0 {
		i++
	}
	buf[i-1] = byte(9 - i)
	return buf[i-1:]
}

// rightEncode returns n as a minimal big-endian integer followed by its
// byte length, SP 800-185 section 2.3.1.
func rightEncode(n uint64) []byte {
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[:8], n)
	i := 0
	for i < 7 && buf[i] == 0 {
		i++
	}
	buf[8] = byte(8 - i)
	return buf[i:]
}
