// Package utils provides small helpers shared across the application.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque unique identifiers for session tokens and
// client sessions. Version 7 UUIDs are preferred; if one cannot be created
// a random version 4 UUID is returned instead.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
