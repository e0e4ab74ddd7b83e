// Package drift reports responses that no longer fit the client's schema.
// Each decode failure becomes a Report published on a JetStream subject,
// so schema changes on an instance show up before users notice.
package drift

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/birbparty/perch/sdk"
)

// Report is one observed schema mismatch.
type Report struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Instance  string    `json:"instance"`
	Endpoint  string    `json:"endpoint"`
	Type      string    `json:"type"`
	Field     string    `json:"field,omitempty"`
	Snippet   string    `json:"snippet,omitempty"`
	Truncated bool      `json:"truncated"`
	Error     string    `json:"error"`
}

// NewReport builds a report for a decode failure on ep.
func NewReport(instance string, ep sdk.Endpoint, err *sdk.DecodeError) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Instance:  instance,
		Endpoint:  ep.String(),
		Type:      err.Type,
		Field:     err.Field,
		Snippet:   err.Snippet,
		Truncated: err.Truncated,
		Error:     err.Error(),
	}
}

// Marshal converts the report to JSON bytes
func (r *Report) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalReport decodes a report from JSON
func UnmarshalReport(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
