package protocol

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

type RequestType string

const (
	AdvanceState RequestType = "advance_state"
	InspectState RequestType = "inspect_state"
)

var (
	ErrMalformedRequest   = errors.New("Request is malformed, it is not valid JSON")
	ErrMissingRequestType = errors.New("Request is malformed, request_type is not a string")
	ErrMissingPayload     = errors.New("Request is missing data.payload")
	ErrMissingSender      = errors.New("Request is missing data.metadata.msg_sender")
)

// Request is a single rollup input as delivered by the node. It is consumed
// within one turn of the backend and never retained.
type Request struct {
	Type RequestType

	payload    string
	hasPayload bool

	sender    string
	hasSender bool
}

// ReadRequest parses the body of a finish response.
func ReadRequest(body []byte) (*Request, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("Failed to parse '%s': %w", string(body), ErrMalformedRequest)
	}

	requestType := gjson.GetBytes(body, "request_type")
	if requestType.Type != gjson.String {
		return nil, ErrMissingRequestType
	}

	req := &Request{Type: RequestType(requestType.Str)}

	if payload := gjson.GetBytes(body, "data.payload"); payload.Type == gjson.String {
		req.payload, req.hasPayload = payload.Str, true
	}

	if sender := gjson.GetBytes(body, "data.metadata.msg_sender"); sender.Type == gjson.String {
		req.sender, req.hasSender = sender.Str, true
	}

	return req, nil
}

func NewAdvanceRequest(payload, sender string) *Request {
	return &Request{
		Type:       AdvanceState,
		payload:    payload,
		hasPayload: true,
		sender:     sender,
		hasSender:  true,
	}
}

func NewInspectRequest(payload string) *Request {
	return &Request{
		Type:       InspectState,
		payload:    payload,
		hasPayload: true,
	}
}

func (r *Request) Payload() (string, error) {
	if !r.hasPayload {
		return "", ErrMissingPayload
	}

	return r.payload, nil
}

// Sender returns the msg_sender as given. It is treated as an opaque,
// already verified identity.
func (r *Request) Sender() (string, error) {
	if !r.hasSender {
		return "", ErrMissingSender
	}

	return r.sender, nil
}
