// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the transport layer. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthHeader is returned by the auth middleware when the request
	// carries neither an "x-auth" nor an "Authorization" header.
	ErrEmptyAuthHeader = errors.New("empty `x-auth` and `Authorization` headers")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
