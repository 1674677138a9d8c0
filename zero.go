/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

package wgkeys

import "runtime"

// memzero overwrites b with zeroes. Marked noinline so the stores are not
// elided when the buffer is dead afterwards.
//
//go:noinline
func memzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}

// Zero overwrites the key material. The collector gives no destruction
// hook, so call this before dropping the last reference to a key that
// must not linger in memory. Copies are independent arrays; each one must
// be zeroed on its own.
func (sk *PrivateKey) Zero() {
	memzero(sk[:])
}

// Zero overwrites the key material. See PrivateKey.Zero.
func (psk *PresharedKey) Zero() {
	memzero(psk[:])
}
