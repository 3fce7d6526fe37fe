// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Group is a named set of usernames and the unit of access checks.
type Group struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// HasMember reports whether username belongs to the group.
func (g Group) HasMember(username string) bool {
	return slices.Contains(g.Members, username)
}

// Clone returns a copy of the group with its own member slice.
func (g Group) Clone() Group {
	return Group{Name: g.Name, Members: slices.Clone(g.Members)}
}
