/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

package wgkeys

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
)

// Text lengths of a KeySize key in each supported encoding. Parse
// dispatches on them; for 32-byte keys they are pairwise distinct.
const (
	hexLen    = KeySize * 2 // lowercase, no prefix
	base64Len = 44          // standard alphabet, '=' padding
	base32Len = 56          // RFC 4648 alphabet, uppercase, '=' padding
)

func (k PublicKey) Base64() string      { return base64.StdEncoding.EncodeToString(k[:]) }
func (sk PrivateKey) Base64() string    { return base64.StdEncoding.EncodeToString(sk[:]) }
func (psk PresharedKey) Base64() string { return base64.StdEncoding.EncodeToString(psk[:]) }

func (k PublicKey) URLSafeBase64() string      { return base64.URLEncoding.EncodeToString(k[:]) }
func (sk PrivateKey) URLSafeBase64() string    { return base64.URLEncoding.EncodeToString(sk[:]) }
func (psk PresharedKey) URLSafeBase64() string { return base64.URLEncoding.EncodeToString(psk[:]) }

func (k PublicKey) Hex() string      { return hex.EncodeToString(k[:]) }
func (sk PrivateKey) Hex() string    { return hex.EncodeToString(sk[:]) }
func (psk PresharedKey) Hex() string { return hex.EncodeToString(psk[:]) }

func (k PublicKey) Base32() string      { return base32.StdEncoding.EncodeToString(k[:]) }
func (sk PrivateKey) Base32() string    { return base32.StdEncoding.EncodeToString(sk[:]) }
func (psk PresharedKey) Base32() string { return base32.StdEncoding.EncodeToString(psk[:]) }

// FromBytes copies b into a key of kind K. It fails unless b is exactly
// KeySize bytes long; no truncation or padding ever happens.
func FromBytes[K Key](b []byte) (K, error) {
	var k [KeySize]byte
	if len(b) != KeySize {
		return K(k), &LengthError{Expected: KeySize, Actual: len(b)}
	}
	copy(k[:], b)
	return K(k), nil
}

// FromHex decodes a 64-character hex string. Both letter cases are
// accepted; encoding always produces lowercase.
func FromHex[K Key](s string) (K, error) {
	b, err := hex.DecodeString(s)
	k, err := decoded("hex", b, err)
	return K(k), err
}

// FromBase64 decodes a standard base64 string with '=' padding.
func FromBase64[K Key](s string) (K, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	k, err := decoded("base64", b, err)
	return K(k), err
}

// FromURLSafeBase64 decodes a base64 string in the URL-safe alphabet.
func FromURLSafeBase64[K Key](s string) (K, error) {
	b, err := base64.URLEncoding.DecodeString(s)
	k, err := decoded("base64", b, err)
	return K(k), err
}

// FromBase32 decodes an RFC 4648 base32 string with '=' padding.
func FromBase32[K Key](s string) (K, error) {
	b, err := base32.StdEncoding.DecodeString(s)
	k, err := decoded("base32", b, err)
	return K(k), err
}

// Parse decodes a key from any supported text encoding, choosing the
// codec by string length: 64 characters is hex, 44 is base64 (standard,
// then URL-safe), 56 is base32. Any other length cannot encode exactly
// KeySize bytes and is rejected outright.
//
// Decoding never clamps. A private key parsed here carries exactly the
// bytes the text encoded; use Valid or Clamp if the source is untrusted.
func Parse[K Key](s string) (K, error) {
	switch len(s) {
	case hexLen:
		return FromHex[K](s)
	case base64Len:
		k, err := FromBase64[K](s)
		if err != nil {
			if uk, uerr := FromURLSafeBase64[K](s); uerr == nil {
				return uk, nil
			}
		}
		return k, err
	case base32Len:
		return FromBase32[K](s)
	default:
		var zero K
		return zero, &LengthError{Expected: KeySize, Actual: -1}
	}
}

func decoded(encoding string, b []byte, err error) ([KeySize]byte, error) {
	var k [KeySize]byte
	if err != nil {
		return k, &EncodingError{Encoding: encoding, Err: err}
	}
	if len(b) != KeySize {
		return k, &LengthError{Expected: KeySize, Actual: len(b)}
	}
	copy(k[:], b)
	return k, nil
}
