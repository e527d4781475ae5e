package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadResponse marks a backend reply that could not be parsed as the JSON
// envelope. It is never treated as an empty success.
var ErrBadResponse = errors.New("malformed response body")

// Envelope is the uniform response wrapper used by every marketplace
// endpoint: { success, data, message?, errors? }.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

// Decode unmarshals the data payload into out. A nil out skips decoding.
func (e *Envelope) Decode(out any) error {
	if out == nil || len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

// APIError is a structured rejection from the backend: non-2xx status or
// success=false, with the message and optional per-field errors it carried.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return flattenFields(e.Fields)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// NotFound reports whether the backend said the resource does not exist.
func (e *APIError) NotFound() bool {
	return e.Status == 404
}

func flattenFields(fields map[string][]string) string {
	out := ""
	for _, msgs := range fields {
		for _, m := range msgs {
			if out != "" {
				out += ", "
			}
			out += m
		}
	}
	return out
}
