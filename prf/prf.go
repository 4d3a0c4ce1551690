// kbkdf-go: NIST SP 800-108 key derivation functions
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prf provides keyed pseudorandom function families for key
// derivation: HMAC, KMAC, keyed BLAKE2b, and key-prefix XOF constructions.
package prf

import (
	"crypto/hmac"
	"hash"
	"io"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/blake2b"
)

// PRF is a single keyed computation in progress. Message bytes are absorbed
// with Write, which never fails, and the fixed-length output is produced by
// Sum. A computation is finished once Sum has been called; writing to it
// afterwards is undefined.
type PRF interface {
	io.Writer

	// Sum appends the computation's output to b and returns the result.
	Sum(b []byte) []byte
}

// Family describes a keyed pseudorandom function with a fixed output
// length. The same key may be used to start any number of independent
// computations.
type Family interface {
	// Size returns the output length in bytes of a single computation.
	Size() int

	// New starts a fresh computation keyed with key.
	New(key []byte) PRF
}

// HMAC returns the PRF family of HMAC over the given hash constructor, for
// example HMAC-SHA256 via sha256.New. Keys of any length are accepted.
//
// https://datatracker.ietf.org/doc/html/rfc2104
func HMAC(h func() hash.Hash) Family {
	return hmacFamily{h: h}
}

type hmacFamily struct {
	h func() hash.Hash
}

func (f hmacFamily) Size() int { return f.h().Size() }

func (f hmacFamily) New(key []byte) PRF { return hmac.New(f.h, key) }

// BLAKE2b returns the keyed BLAKE2b PRF family producing size-byte outputs,
// 1 <= size <= 64. Keying is native to BLAKE2b but limits the key to 64
// bytes; New panics on longer keys.
//
// https://datatracker.ietf.org/doc/html/rfc7693
func BLAKE2b(size int) Family {
	if size < 1 || size > blake2b.Size {
		panic("prf: invalid BLAKE2b output size")
	}
	return blake2bFamily{size: size}
}

type blake2bFamily struct {
	size int
}

func (f blake2bFamily) Size() int { return f.size }

func (f blake2bFamily) New(key []byte) PRF {
	h, err := blake2b.New(f.size, key)
	if err != nil {
		panic("prf: " + err.Error())
	}
	return h
}

// XOF returns a PRF family built from an extendable-output function by
// absorbing the key as a prefix of the input and reading size bytes of
// output. This is the usual keyed-sponge construction for SHAKE and
// KangarooTwelve; it is only sound for XOFs with a sponge-style keying
// claim.
func XOF(id xof.ID, size int) Family {
	if size < 1 {
		panic("prf: invalid XOF output size")
	}
	return xofFamily{id: id, size: size}
}

type xofFamily struct {
	id   xof.ID
	size int
}

func (f xofFamily) Size() int { return f.size }

func (f xofFamily) New(key []byte) PRF {
	h := f.id.New()
	if _, err := h.Write(key); err != nil {
		panic("prf: " + err.Error())
	}
	return &xofPRF{h: h, size: f.size}
}

type xofPRF struct {
	h    xof.XOF
	size int
}

func (p *xofPRF) Write(b []byte) (int, error) { return p.h.Write(b) }

func (p *xofPRF) Sum(b []byte) []byte {
	out := make([]byte, p.size)
	if _, err := io.ReadFull(p.h, out); err != nil {
		panic("prf: " + err.Error())
	}
	return append(b, out...)
}
