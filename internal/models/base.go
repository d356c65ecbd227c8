// Package models defines the entities stored in the shared snapshot. The JSON
// shape of each type is the persisted blob format read by every surface.
package models

import (
	"github.com/google/uuid"
)

// NewID returns a fresh UUIDv7 identifier. UUIDv7 is time-ordered, so ids
// minted by one writer sort in creation order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// IsValidID reports whether s parses as a UUID.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
