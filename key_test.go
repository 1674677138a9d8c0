/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

package wgkeys

import (
	"bytes"
	"errors"
	"testing"
)

func assertNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestKeyBasics(t *testing.T) {
	sk1, err := NewPrivateKey()
	assertNil(t, err)
	k1 := sk1.Public()

	t.Run("second key", func(t *testing.T) {
		// Different keys should be different.
		sk2, err := NewPrivateKey()
		assertNil(t, err)
		k2 := sk2.Public()
		if bytes.Equal(k1[:], k2[:]) {
			t.Fatalf("k1 %v == k2 %v", k1[:], k2[:])
		}
		if b1, b2 := k1.String(), k2.String(); b1 == b2 {
			t.Fatalf("base64-encoded keys match: %s, %s", b1, b2)
		}
	})
}

func TestClamping(t *testing.T) {
	sk, err := NewPrivateKey()
	assertNil(t, err)
	if sk[0]&7 != 0 {
		t.Fatal("low bits not cleared")
	}
	if sk[31]&128 != 0 {
		t.Fatal("high bit not cleared")
	}
	if sk[31]&64 == 0 {
		t.Fatal("second-highest bit not set")
	}
	if !sk.Valid() {
		t.Fatal("generated key reported invalid")
	}
}

func TestValid(t *testing.T) {
	if (PrivateKey{}).Valid() {
		t.Fatal("zero key reported valid")
	}
	var all PrivateKey
	for i := range all {
		all[i] = 255
	}
	if all.Valid() {
		t.Fatal("unclamped key reported valid")
	}
}

func TestDerivationDeterministic(t *testing.T) {
	sk, err := NewPrivateKey()
	assertNil(t, err)
	if sk.Public() != sk.Public() {
		t.Fatal("derivation is not deterministic")
	}
}

func TestSharedSecret(t *testing.T) {
	sk1, err := NewPrivateKey()
	assertNil(t, err)
	sk2, err := NewPrivateKey()
	assertNil(t, err)

	ss1, err1 := sk1.SharedSecret(sk2.Public())
	ss2, err2 := sk2.SharedSecret(sk1.Public())
	if ss1 != ss2 || err1 != nil || err2 != nil {
		t.Fatal("failed to compute shared secret")
	}
}

func TestPresharedKeys(t *testing.T) {
	psk1, err := NewPresharedKey()
	assertNil(t, err)
	psk2, err := NewPresharedKey()
	assertNil(t, err)
	if psk1.Equal(psk2) {
		t.Fatal("two generated preshared keys match")
	}

	// A preshared key shares nothing with the curve; it should not
	// collide with a derived public key either.
	sk, err := NewPrivateKey()
	assertNil(t, err)
	pub := sk.Public()
	if bytes.Equal(psk1[:], pub[:]) || bytes.Equal(psk2[:], pub[:]) {
		t.Fatal("preshared key equals a derived public key")
	}
}

func TestFromBytes(t *testing.T) {
	_, err := FromBytes[PublicKey](make([]byte, 3))
	var lenErr *LengthError
	if !errors.As(err, &lenErr) {
		t.Fatalf("expected LengthError, got %v", err)
	}
	if lenErr.Expected != KeySize || lenErr.Actual != 3 {
		t.Fatalf("wrong lengths reported: %+v", lenErr)
	}

	k, err := FromBytes[PublicKey](make([]byte, KeySize))
	assertNil(t, err)
	if !k.IsZero() {
		t.Fatal("expected zero key")
	}
}

func TestZero(t *testing.T) {
	sk, err := NewPrivateKey()
	assertNil(t, err)
	sk.Zero()
	if !sk.IsZero() {
		t.Fatal("private key not zeroed")
	}

	psk, err := NewPresharedKey()
	assertNil(t, err)
	cp := psk
	cp.Zero()
	if !cp.IsZero() {
		t.Fatal("copy not zeroed")
	}
	if psk.IsZero() {
		t.Fatal("zeroing a copy clobbered the original")
	}
}
