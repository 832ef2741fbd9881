package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors the storage adapter translates driver failures into.
// Nothing above the service layer ever sees a raw pgx error.
var (
	ErrNotFound          = errors.New("report not found")
	ErrDuplicateID       = errors.New("duplicate report id")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// ValidationError carries per-field failures collected at the boundary.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
