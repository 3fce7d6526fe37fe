// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// access manager and the terminal client.
//
// All Msg* constants are human-readable strings shown to the user to describe
// the outcome of an operation. Keeping them in one place ensures consistent
// wording between the service layer and the UI.
package app

// Success outcomes.
const (
	MsgRegistered       = "User registered successfully"
	MsgLoggedOut        = "Logged out successfully"
	MsgPasswordUpdated  = "Password updated successfully"
	MsgGroupCreated     = "Group created"
	MsgUserAddedToGroup = "User added to group"
	MsgEmailVerified    = "Email verified"

	// MsgLoginSuccessful is a format string taking the issued token.
	MsgLoginSuccessful = "Login successful. Token: %s"
)

// Failure outcomes.
const (
	// MsgInvalidDataProvided is shown when a username or email is left blank.
	MsgInvalidDataProvided = "Username and email are required"

	MsgUserNotFound          = "User not found"
	MsgEmailAlreadyExists    = "Email already exists"
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgAccountLocked is shown for login attempts made while a lockout is
	// in force.
	MsgAccountLocked = "Account is locked. Try again later."

	// MsgAccountLockedNow is shown for the failed login that triggers the
	// lockout.
	MsgAccountLockedNow = "Account locked due to too many failed attempts."

	MsgInvalidCredentials = "Invalid credentials"
	MsgPasswordMismatch   = "Old password does not match"

	MsgInvalidToken = "Invalid token"
	MsgTokenExpired = "Token expired"

	MsgGroupAlreadyExists = "Group already exists"
	MsgGroupNotFound      = "Group not found"
	MsgUserAlreadyInGroup = "User already in group"
)
