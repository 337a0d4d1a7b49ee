package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// DecodeFields decodes the request body into a generic field map, preserving
// which fields were actually present so the validator can distinguish an
// absent field from a provided-but-invalid one. An empty body decodes to an
// empty map rather than an error.
func DecodeFields(r *http.Request) (map[string]any, error) {
	fields := make(map[string]any)
	err := json.NewDecoder(r.Body).Decode(&fields)
	if err != nil {
		// Treat a fully empty body like an empty JSON object; PATCH callers
		// may legitimately send nothing.
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return fields, nil
}
