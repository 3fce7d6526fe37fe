// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory tables of the access manager.
//
// Repositories copy values on the way in and out, so callers never alias
// table state. They are not safe for concurrent use on their own: the
// service layer serialises every operation.
package store

import "github.com/MKhiriev/go-access-keeper/internal/logger"

// Storages groups the three tables owned by one access manager instance.
type Storages struct {
	UserRepository  UserRepository
	TokenRepository TokenRepository
	GroupRepository GroupRepository
}

// NewStorages creates empty tables. Every call returns independent state.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating in-memory storages")

	return &Storages{
		UserRepository:  NewUserRepository(logger),
		TokenRepository: NewTokenRepository(logger),
		GroupRepository: NewGroupRepository(logger),
	}
}
