/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

package wgkeys

import "fmt"

// LengthError reports key material of the wrong size. Actual is the
// decoded byte count, or -1 when the input's text length matches no
// supported encoding and was never decoded.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	if e.Actual < 0 {
		return fmt.Sprintf("text length matches no encoding of a %d-byte key", e.Expected)
	}
	return fmt.Sprintf("key must be exactly %d bytes, got %d", e.Expected, e.Actual)
}

// EncodingError reports input that is not valid text for the encoding it
// was decoded as: a character outside the alphabet, or malformed padding.
type EncodingError struct {
	Encoding string // "hex", "base64" or "base32"
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid %s key: %v", e.Encoding, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// RandomError reports that the system entropy source could not supply
// bytes. It is fatal for the generating call; retrying is the caller's
// decision.
type RandomError struct {
	Err error
}

func (e *RandomError) Error() string {
	return fmt.Sprintf("reading random source: %v", e.Err)
}

func (e *RandomError) Unwrap() error {
	return e.Err
}
