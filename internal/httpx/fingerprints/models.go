package fingerprints

import "encoding/json"

// SubmitRequest is the payload reported by the browser fingerprint script.
// swagger:model SubmitRequest
type SubmitRequest struct {
	VisitorID string          `json:"visitor_id"`
	Version   string          `json:"version"`
	Data      json.RawMessage `json:"data"`
}

// SubmitResponse acknowledges a stored submission.
// swagger:model SubmitResponse
type SubmitResponse struct {
	Success  bool `json:"success"`
	Silenced bool `json:"silenced"`
}
