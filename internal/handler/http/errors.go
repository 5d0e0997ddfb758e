// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while extracting the bearer token from the
// "Authorization" header. Matched with [errors.Is] in the auth middleware.
var (
	// ErrEmptyAuthorizationHeader: the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("missing `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header value has no token part
	// after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("malformed `Authorization` header")

	// ErrEmptyToken: the scheme prefix is present but the token itself is
	// an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
