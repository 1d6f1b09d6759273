package main

import (
	"strconv"

	"github.com/clarketm/json"
)

// LeadSendingResponse holds the parsed body of a 2xx answer. Any JSON value is
// accepted; its shape is not checked.
type LeadSendingResponse struct {
	Payload interface{}
}

// LeadId returns the created lead's id when the payload is an object carrying one.
func (r *LeadSendingResponse) LeadId() (string, bool) {
	if r == nil {
		return "", false
	}
	object, ok := r.Payload.(map[string]interface{})
	if !ok {
		return "", false
	}
	switch id := object["id"].(type) {
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case string:
		if id != "" {
			return id, true
		}
	}
	return "", false
}

func parseResponseBody(body []byte) (*LeadSendingResponse, error) {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &LeadSendingResponse{Payload: payload}, nil
}
