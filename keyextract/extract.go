/* SPDX-License-Identifier: MIT
 *
 * Copyright (C) 2021 Fractal Networks. All Rights Reserved.
 */

// Package keyextract pulls WireGuard keys out of echo requests. A key may
// arrive as a header, a path parameter, or a query parameter, in any text
// encoding wgkeys.Parse accepts. A value that was never supplied and a
// value that failed to decode are distinct failures, so handlers can
// answer each with the right client error.
package keyextract

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	wgkeys "github.com/fractalnetworksco/wireguard-keys"
)

// MissingError reports a request value that was not supplied at all.
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing key value %q", e.Name)
}

// MalformedError reports a request value that was present but did not
// decode to a key. It wraps the wgkeys decode error.
type MalformedError struct {
	Name string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed key value %q: %v", e.Name, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Header decodes the named request header into a key.
func Header[K wgkeys.Key](c echo.Context, name string) (K, error) {
	return extract[K](name, c.Request().Header.Get(name))
}

// PathParam decodes the named path parameter into a key.
func PathParam[K wgkeys.Key](c echo.Context, name string) (K, error) {
	return extract[K](name, c.Param(name))
}

// QueryParam decodes the named query parameter into a key.
func QueryParam[K wgkeys.Key](c echo.Context, name string) (K, error) {
	return extract[K](name, c.QueryParam(name))
}

func extract[K wgkeys.Key](name, value string) (K, error) {
	var zero K
	if value == "" {
		return zero, &MissingError{Name: name}
	}
	k, err := wgkeys.Parse[K](value)
	if err != nil {
		return zero, &MalformedError{Name: name, Err: err}
	}
	return k, nil
}

// HTTPError converts an extraction failure into the echo error a handler
// should return: 400 for a missing value, 422 for a malformed one.
func HTTPError(err error) *echo.HTTPError {
	var missing *MissingError
	if errors.As(err, &missing) {
		return echo.NewHTTPError(http.StatusBadRequest, missing.Error())
	}
	var malformed *MalformedError
	if errors.As(err, &malformed) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, malformed.Error()).SetInternal(malformed.Err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
}
