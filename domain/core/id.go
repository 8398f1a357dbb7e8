package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// RunID identifies one summarisation request end to end (service call, report).
	RunID ID
	// ColumnKey names one group of values, e.g. a CSV column header.
	ColumnKey ID
)

func (id RunID) String() string    { return ID(id).String() }
func (id RunID) IsEmpty() bool     { return ID(id).IsEmpty() }
func (k ColumnKey) String() string { return ID(k).String() }
func (k ColumnKey) IsEmpty() bool  { return ID(k).IsEmpty() }

// NewRunID returns a fresh time-ordered run identifier.
func NewRunID() RunID {
	return RunID(NewID())
}

// ParseColumnKey parses a string into ColumnKey. Surrounding whitespace is dropped.
func ParseColumnKey(s string) (ColumnKey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("column key cannot be empty")
	}
	return ColumnKey(s), nil
}
