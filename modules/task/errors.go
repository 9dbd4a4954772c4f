package task

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for task operations.
var (
	// ErrTaskNotFound is returned when the requested task does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError carries field-level violation messages. All supplied fields
// are checked before the error is returned, so the map is complete: either
// every field passes or nothing is written.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// add appends a message for the given field.
func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}
