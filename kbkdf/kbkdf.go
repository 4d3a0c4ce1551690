// kbkdf-go: NIST SP 800-108 key derivation functions
// Copyright 2026 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kbkdf implements the NIST SP 800-108 key-based key derivation
// functions in Counter, Feedback, and Double-Pipeline mode.
//
// A Mode fixes the PRF family, the derived key length, the width of the
// encoded round counter, and the chaining strategy; Derive then stretches
// input keying material together with a label and a context into the
// derived key.
//
// https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-108r1-upd1.pdf
package kbkdf

import (
	"encoding/binary"
	"errors"

	"github.com/dark-bio/kbkdf-go/prf"
)

const (
	// MinCounterWidth and MaxCounterWidth bound the byte width of the
	// encoded round counter.
	MinCounterWidth = 1
	MaxCounterWidth = 4
)

// maxSize bounds the derived key length so that its bit count is
// representable in the 32-bit length field.
const maxSize = (1<<32 - 1) / 8

// ErrInvalidRequestSize is returned by Derive when the number of PRF
// rounds needed for the requested output length cannot be represented in
// the configured counter width.
var ErrInvalidRequestSize = errors.New("kbkdf: requested output size is too large for the configured counter width")

// Mode is a configured KBKDF variant. A Mode is immutable and safe for
// concurrent use; every Derive call runs an independent computation.
type Mode struct {
	prf      prf.Family
	size     int // derived key length in bytes
	width    int // counter field width in bytes
	feedback bool
	pipeline bool
	iv       []byte
}

func newMode(f prf.Family, size, width int) (*Mode, error) {
	switch {
	case f == nil:
		return nil, errors.New("kbkdf: nil PRF family")
	case f.Size() < 1:
		return nil, errors.New("kbkdf: PRF output size must be positive")
	case size < 1:
		return nil, errors.New("kbkdf: output size must be positive")
	case size > maxSize:
		return nil, errors.New("kbkdf: output size exceeds 2^32-1 bits")
	case width < MinCounterWidth || width > MaxCounterWidth:
		return nil, errors.New("kbkdf: counter width must be between 1 and 4 bytes")
	}
	return &Mode{prf: f, size: size, width: width}, nil
}

// NewCounter returns a Counter-mode KBKDF deriving size-byte keys with f,
// encoding the round counter in width bytes.
func NewCounter(f prf.Family, size, width int) (*Mode, error) {
	return newMode(f, size, width)
}

// NewFeedback returns a Feedback-mode KBKDF deriving size-byte keys with
// f, encoding the round counter in width bytes. The optional iv seeds the
// first round's chaining value and must be nil or exactly f.Size() bytes;
// a nil iv omits the chaining term from the first round entirely.
func NewFeedback(f prf.Family, size, width int, iv []byte) (*Mode, error) {
	m, err := newMode(f, size, width)
	if err != nil {
		return nil, err
	}
	if iv != nil && len(iv) != f.Size() {
		return nil, errors.New("kbkdf: IV length must equal the PRF output size")
	}
	m.feedback = true
	if iv != nil {
		m.iv = append([]byte(nil), iv...)
	}
	return m, nil
}

// NewDoublePipeline returns a Double-Pipeline-mode KBKDF deriving
// size-byte keys with f, encoding the round counter in width bytes.
func NewDoublePipeline(f prf.Family, size, width int) (*Mode, error) {
	m, err := newMode(f, size, width)
	if err != nil {
		return nil, err
	}
	m.pipeline = true
	return m, nil
}

// Size returns the derived key length in bytes.
func (m *Mode) Size() int { return m.size }

// rounds returns the number of PRF rounds needed to fill the output, or
// ErrInvalidRequestSize when the counter width cannot address that many
// rounds. Pure arithmetic; no PRF runs before this check passes.
func (m *Mode) rounds() (uint64, error) {
	l := uint64(m.size) * 8
	h := uint64(m.prf.Size()) * 8
	n := (l + h - 1) / h
	if n > uint64(1)<<(8*m.width)-1 {
		return 0, ErrInvalidRequestSize
	}
	return n, nil
}

// Derive stretches key into Size() bytes of derived key material. The
// label and context are mixed into every round's message; useL,
// useSeparator, and useCounter select whether the big-endian 32-bit output
// bit length, a single zero separator byte, and the round counter are
// included as well. Whether a protocol requires the length field is the
// caller's decision.
func (m *Mode) Derive(key []byte, useL, useSeparator, useCounter bool, label, context []byte) ([]byte, error) {
	n, err := m.rounds()
	if err != nil {
		return nil, err
	}

	out := make([]byte, m.size)
	rest := out

	// Feedback chaining value for round 1, present only when an IV was
	// configured.
	ki := m.iv

	// Seed pipeline value A(0) over label and context. The length field is
	// never part of this message even when useL is set, and the value is
	// computed in every mode to keep the PRF call sequence uniform.
	h := m.prf.New(key)
	h.Write(label)
	if useSeparator {
		h.Write(zero)
	}
	h.Write(context)
	a := h.Sum(nil)

	for counter := uint64(1); counter <= n; counter++ {
		if counter > 1 {
			h := m.prf.New(key)
			h.Write(a)
			a = h.Sum(nil)
		}

		h := m.prf.New(key)
		if m.feedback && ki != nil {
			h.Write(ki)
		}
		if m.pipeline {
			h.Write(a)
		}
		if useCounter {
			var enc [4]byte
			binary.BigEndian.PutUint32(enc[:], uint32(counter))
			h.Write(enc[4-m.width:])
		}
		h.Write(label)
		if useSeparator {
			h.Write(zero)
		}
		h.Write(context)
		if useL {
			var enc [4]byte
			binary.BigEndian.PutUint32(enc[:], uint32(m.size)*8)
			h.Write(enc[:])
		}

		kout := h.Sum(nil)
		ki = kout
		rest = rest[copy(rest, kout):]
	}

	if len(rest) != 0 {
		panic("kbkdf: output has uninitialized bytes")
	}
	return out, nil
}

var zero = []byte{0}
