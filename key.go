/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

// Package wgkeys implements the three key kinds used by WireGuard: the
// curve25519 private key, its corresponding public key, and the 32-byte
// preshared key. Each kind is a distinct fixed-size array type, so a
// public key can never be handed to an operation expecting a private one.
//
// Keys move between binary and text through strict codecs (base64, hex,
// base32); see Parse and the From* functions. The String form of a
// private or preshared key is a redacted fingerprint, never the raw
// material. Go offers no destruction hook, so holders of high-sensitivity
// material should call Zero before dropping the last reference.
package wgkeys

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
)

// KeySize is the size, in bytes, of every WireGuard key kind.
const KeySize = 32

type (
	// PublicKey is a curve25519 point used as a WireGuard public key.
	PublicKey [KeySize]byte

	// PrivateKey is a curve25519 scalar used as a WireGuard private key.
	PrivateKey [KeySize]byte

	// PresharedKey is 32 bytes of symmetric material mixed into the
	// handshake. It is not a curve scalar and is never clamped.
	PresharedKey [chacha20poly1305.KeySize]byte
)

// Key constrains the key kinds for the generic decode functions.
type Key interface {
	PublicKey | PrivateKey | PresharedKey
}

// NewPrivateKey generates a private key from the system entropy source,
// clamped per https://cr.yp.to/ecdh.html.
func NewPrivateKey() (PrivateKey, error) {
	var sk PrivateKey
	if _, err := rand.Read(sk[:]); err != nil {
		return PrivateKey{}, &RandomError{Err: err}
	}
	sk.Clamp()
	return sk, nil
}

// NewPresharedKey generates 32 bytes of symmetric key material from the
// system entropy source. No transform is applied.
func NewPresharedKey() (PresharedKey, error) {
	var psk PresharedKey
	if _, err := rand.Read(psk[:]); err != nil {
		return PresharedKey{}, &RandomError{Err: err}
	}
	return psk, nil
}

// Clamp clears and sets the scalar bits required by X25519.
func (sk *PrivateKey) Clamp() {
	sk[0] &= 248
	sk[31] = (sk[31] & 127) | 64
}

// Valid reports whether the key is non-zero and carries the clamp bits a
// generated key would have. Decoding does not clamp, so keys produced
// elsewhere may legitimately fail this check.
func (sk PrivateKey) Valid() bool {
	if sk.IsZero() {
		return false
	}
	clamped := sk
	clamped.Clamp()
	return sk.Equal(clamped)
}

// Public computes the public key matching this private key. The mapping
// is deterministic and one-way.
func (sk PrivateKey) Public() (pk PublicKey) {
	apk := (*[KeySize]byte)(&pk)
	ask := (*[KeySize]byte)(&sk)
	curve25519.ScalarBaseMult(apk, ask)
	return
}

// SharedSecret computes the X25519 shared secret between this private key
// and a peer's public key.
func (sk PrivateKey) SharedSecret(pk PublicKey) ([KeySize]byte, error) {
	ss, err := curve25519.X25519(sk[:], pk[:])
	if err != nil {
		return [KeySize]byte{}, err
	}
	var out [KeySize]byte
	copy(out[:], ss)
	return out, nil
}

func (k PublicKey) Equal(tar PublicKey) bool {
	return subtle.ConstantTimeCompare(k[:], tar[:]) == 1
}

func (sk PrivateKey) Equal(tar PrivateKey) bool {
	return subtle.ConstantTimeCompare(sk[:], tar[:]) == 1
}

func (psk PresharedKey) Equal(tar PresharedKey) bool {
	return subtle.ConstantTimeCompare(psk[:], tar[:]) == 1
}

func (k PublicKey) IsZero() bool {
	return k.Equal(PublicKey{})
}

func (sk PrivateKey) IsZero() bool {
	return sk.Equal(PrivateKey{})
}

func (psk PresharedKey) IsZero() bool {
	return psk.Equal(PresharedKey{})
}
