// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// User is an account known to the access manager.
// PasswordHash holds a derived credential and must never contain the raw
// password.
type User struct {
	// Username is the unique account identifier.
	Username string `json:"username"`

	// PasswordHash is the encoded Argon2id credential.
	PasswordHash string `json:"-"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Groups lists the names of groups the user belongs to, in the order
	// the memberships were granted.
	Groups []string `json:"groups"`

	EmailVerified bool `json:"email_verified"`

	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`

	// Token is the user's current session token. Empty when logged out.
	Token string `json:"-"`

	// FailedAttempts counts consecutive failed logins since the last
	// successful login or the last triggered lockout.
	FailedAttempts int `json:"-"`

	// LockedUntil blocks logins while the current time is before it.
	// It is never cleared; an expired lockout is simply ignored.
	LockedUntil *time.Time `json:"-"`
}

// IsLocked reports whether the account is locked at the given instant.
func (u User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// IsMemberOf reports whether group is among the user's groups.
func (u User) IsMemberOf(group string) bool {
	return slices.Contains(u.Groups, group)
}

// Clone returns a deep copy so that callers never share slices or pointers
// with table state.
func (u User) Clone() User {
	c := u
	c.Groups = slices.Clone(u.Groups)
	if u.LastLogin != nil {
		t := *u.LastLogin
		c.LastLogin = &t
	}
	if u.LockedUntil != nil {
		t := *u.LockedUntil
		c.LockedUntil = &t
	}
	return c
}

// Profile returns the read-only projection of the user.
func (u User) Profile() Profile {
	c := u.Clone()
	return Profile{
		Username:      c.Username,
		Email:         c.Email,
		Groups:        c.Groups,
		EmailVerified: c.EmailVerified,
		CreatedAt:     c.CreatedAt,
		LastLogin:     c.LastLogin,
	}
}

// Profile is the public view of a [User]. It carries no credential or
// session data.
type Profile struct {
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Groups        []string   `json:"groups"`
	EmailVerified bool       `json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login"`
}
