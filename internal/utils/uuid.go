// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides the identifier generator and clock shared by the
// planner services.
package utils

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-study-planner/models"
)

// UUIDGenerator issues entity identifiers of the form "<kind>_<uuidv7>".
//
// Every identifier handed out, or registered through Reserve, is remembered
// until Release, so two calls within the same millisecond never collide and
// identifiers loaded from storage are never issued again. The entity store
// releases a user's identifiers on logout and reserves them again on the next
// login, which bounds the set by the loaded data plus what one session issued.
type UUIDGenerator struct {
	mu     sync.Mutex
	issued map[string]struct{}
	source func() string
}

// NewUUIDGenerator returns a generator backed by UUIDv7.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{
		issued: make(map[string]struct{}),
		source: newUUID,
	}
}

// NewID returns an identifier for kind that this generator has not issued or
// reserved before.
func (g *UUIDGenerator) NewID(kind models.EntityKind) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id := string(kind) + "_" + g.source()
		if _, taken := g.issued[id]; taken {
			continue
		}
		g.issued[id] = struct{}{}
		return id
	}
}

// Reserve marks ids as taken.
func (g *UUIDGenerator) Reserve(ids ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		g.issued[id] = struct{}{}
	}
}

// Release forgets ids.
func (g *UUIDGenerator) Release(ids ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		delete(g.issued, id)
	}
}

// Len returns the number of remembered identifiers.
func (g *UUIDGenerator) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.issued)
}

func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
