package service

import (
	"fmt"
	"strings"
)

// RefType identifies the kind of entity a task can be attached to.
type RefType string

// Supported referenceable kinds.
const (
	RefItem    RefType = "item"
	RefStatus  RefType = "status"
	RefApp     RefType = "app"
	RefSpace   RefType = "space"
	RefComment RefType = "comment"
	RefFile    RefType = "file"
)

var refTypes = map[RefType]bool{
	RefItem:    true,
	RefStatus:  true,
	RefApp:     true,
	RefSpace:   true,
	RefComment: true,
	RefFile:    true,
}

// ParseRefType parses a reference type name, case-insensitively.
func ParseRefType(s string) (RefType, error) {
	t := RefType(strings.ToLower(strings.TrimSpace(s)))
	if !refTypes[t] {
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidReference, s)
	}
	return t, nil
}

// Reference points from a task to the entity it is attached to.
// It is an input value only; the service never echoes it back on tasks
// returned by a list-by-reference query.
type Reference struct {
	Type RefType `json:"type"`
	ID   int64   `json:"id"`
}

// Validate checks that the type is supported and the id is positive.
func (r Reference) Validate() error {
	if !refTypes[r.Type] {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidReference, r.Type)
	}
	if r.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidReference, r.ID)
	}
	return nil
}

// Path returns the query path segment "{type}/{id}" for the reference.
func (r Reference) Path() (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d", strings.ToLower(string(r.Type)), r.ID), nil
}
