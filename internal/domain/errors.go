// Package domain defines the core business entities and errors.
package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to a human-readable validation message.
// Validation collects every violation before reporting, so a single
// FieldErrors value can describe problems with several fields at once.
type FieldErrors map[string]string

// Error implements the error interface. Fields are listed in a stable order.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
