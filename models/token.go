// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an opaque session handle issued on successful login.
//
// A token stays valid until it is logged out or until ExpiresAt passes.
// Expiry is checked at the moment of use; expired records are not removed.
type Token struct {
	// Token is the opaque identifier handed to the bearer.
	Token string `json:"token"`

	// Username identifies the account the token was issued for.
	Username string `json:"username"`

	// IssuedAt is the moment of the login that produced the token.
	IssuedAt time.Time `json:"issued_at"`

	// ExpiresAt is the instant after which the token is no longer accepted.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the token has expired at the given instant.
func (t Token) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// String returns the opaque token value.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Token
}
