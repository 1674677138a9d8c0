/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

package wgkeys

import "github.com/invopop/jsonschema"

// Base64Pattern matches the canonical text form: 43 characters of the
// standard base64 alphabet and one padding byte, encoding exactly KeySize
// bytes.
const Base64Pattern = `^[A-Za-z0-9+/]{43}=$`

// JSONSchema implements the invopop/jsonschema extension interface.
func (PublicKey) JSONSchema() *jsonschema.Schema {
	return keySchema("WireGuard public key")
}

// JSONSchema implements the invopop/jsonschema extension interface.
func (PrivateKey) JSONSchema() *jsonschema.Schema {
	return keySchema("WireGuard private key")
}

// JSONSchema implements the invopop/jsonschema extension interface.
func (PresharedKey) JSONSchema() *jsonschema.Schema {
	return keySchema("WireGuard preshared key")
}

func keySchema(title string) *jsonschema.Schema {
	length := uint64(base64Len)
	return &jsonschema.Schema{
		Type:      "string",
		Title:     title,
		Pattern:   Base64Pattern,
		MinLength: &length,
		MaxLength: &length,
	}
}
