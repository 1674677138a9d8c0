/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

package wgkeys

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2s"
)

// String returns the canonical base64 form. Public keys are not secret.
func (k PublicKey) String() string {
	return k.Base64()
}

// String returns a redacted form built from a blake2s digest of the
// scalar. The raw material never appears; use Base64 or MarshalText for
// the full canonical form.
func (sk PrivateKey) String() string {
	return "privkey:" + fingerprint(sk[:])
}

// String returns a redacted form. See PrivateKey.String.
func (psk PresharedKey) String() string {
	return "psk:" + fingerprint(psk[:])
}

// GoString keeps %#v from dumping the raw scalar.
func (sk PrivateKey) GoString() string {
	return sk.String()
}

// GoString keeps %#v from dumping the raw material.
func (psk PresharedKey) GoString() string {
	return psk.String()
}

// Fingerprint returns a short blake2s digest of the public key, suitable
// for correlating peers in logs.
func (k PublicKey) Fingerprint() string {
	return fingerprint(k[:])
}

func fingerprint(b []byte) string {
	sum := blake2s.Sum256(b)
	return hex.EncodeToString(sum[:4])
}

// MarshalText implements encoding.TextMarshaler. The canonical text form
// of every key kind is standard base64.
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.Base64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any
// encoding Parse does.
func (k *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := Parse[PublicKey](string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. Serialization carries
// the full canonical base64 form; only display output is redacted.
func (sk PrivateKey) MarshalText() ([]byte, error) {
	return []byte(sk.Base64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (sk *PrivateKey) UnmarshalText(text []byte) error {
	parsed, err := Parse[PrivateKey](string(text))
	if err != nil {
		return err
	}
	*sk = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (psk PresharedKey) MarshalText() ([]byte, error) {
	return []byte(psk.Base64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (psk *PresharedKey) UnmarshalText(text []byte) error {
	parsed, err := Parse[PresharedKey](string(text))
	if err != nil {
		return err
	}
	*psk = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, emitting the raw 32
// bytes for codecs that are not text-based.
func (k PublicKey) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), k[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (k *PublicKey) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes[PublicKey](b)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sk PrivateKey) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), sk[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sk *PrivateKey) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes[PrivateKey](b)
	if err != nil {
		return err
	}
	*sk = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (psk PresharedKey) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), psk[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (psk *PresharedKey) UnmarshalBinary(b []byte) error {
	parsed, err := FromBytes[PresharedKey](b)
	if err != nil {
		return err
	}
	*psk = parsed
	return nil
}
