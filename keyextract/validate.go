/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

package keyextract

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	wgkeys "github.com/fractalnetworksco/wireguard-keys"
)

// TagName is the struct tag rule registered by NewValidator. A string
// field tagged `validate:"wgkey"` must parse as a WireGuard key.
const TagName = "wgkey"

// Validator adapts go-playground/validator for echo, with the wgkey rule
// installed. Assign it to echo.Echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator ready for echo.
func NewValidator() *Validator {
	v := validator.New()
	err := v.RegisterValidation(TagName, func(fl validator.FieldLevel) bool {
		_, err := wgkeys.Parse[wgkeys.PublicKey](fl.Field().String())
		return err == nil
	})
	if err != nil {
		// Registration only fails for an empty tag name.
		panic(err)
	}
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
