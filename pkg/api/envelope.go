package api

import (
	"encoding/json"
	"fmt"
)

// Status is the remote-reported outcome of a request.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Envelope is the uniform response wrapper returned by every endpoint:
// a status, a human-readable message, an optional record count, and the
// payload itself. Data keeps the raw JSON so callers can decode it per
// endpoint (a list of records for searches, a single record for ping,
// distance and friends).
type Envelope struct {
	Status  Status          `json:"status"`
	Message string          `json:"message,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	// Raw is the response body exactly as received, kept for verbatim
	// JSON output.
	Raw []byte `json:"-"`
}

// Records decodes Data as an ordered list of record mappings. A single
// object payload is returned as a one-element list.
func (e *Envelope) Records() ([]map[string]interface{}, error) {
	if len(e.Data) == 0 {
		return nil, nil
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(e.Data, &records); err == nil {
		return records, nil
	}

	record, err := e.Record()
	if err != nil {
		return nil, err
	}
	return []map[string]interface{}{record}, nil
}

// Record decodes Data as a single record mapping.
func (e *Envelope) Record() (map[string]interface{}, error) {
	if len(e.Data) == 0 {
		return nil, nil
	}

	var record map[string]interface{}
	if err := json.Unmarshal(e.Data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode response data: %w", err)
	}
	return record, nil
}
