// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is implemented by [App]. cmd/access-keeper drives the program
// through it.
type Client interface {
	// Run shows the terminal UI and blocks until the user leaves it.
	Run() error
}

// UI is the interactive surface driven by the App.
type UI interface {
	Run(ctx context.Context) error
}
