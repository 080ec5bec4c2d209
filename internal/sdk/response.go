package sdk

import (
	"encoding/json"
	"fmt"
)

// Response is a decoded platform answer.
type Response struct {
	// StatusCode is the HTTP status of the answer.
	StatusCode int
	// Body is the complete JSON document.
	Body json.RawMessage
	// Data is the "data" member of the envelope, when present.
	Data json.RawMessage
	// Total, Limit and Offset describe the returned page of a list endpoint.
	Total  int
	Limit  int
	Offset int
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func decodeResponse(status int, body []byte) (*Response, error) {
	resp := &Response{StatusCode: status}
	if len(body) == 0 {
		return resp, nil
	}
	resp.Body = json.RawMessage(body)

	// Only objects carry an envelope; arrays and scalars are kept as Body.
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		resp.Data = env.Data
		resp.Total = env.Total
		resp.Limit = env.Limit
		resp.Offset = env.Offset
	} else if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON in response: %w", err)
	}
	return resp, nil
}

// NewResponse builds a Response whose body and data are the JSON encoding of
// v. It is used for results computed locally rather than fetched.
func NewResponse(v interface{}) (*Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Response{Body: data, Data: data}, nil
}

// Field decodes a top-level member of the body.
func (r *Response) Field(name string) (interface{}, bool) {
	if r == nil || len(r.Body) == 0 {
		return nil, false
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(r.Body, &fields); err != nil {
		return nil, false
	}
	v, ok := fields[name]
	return v, ok
}

// StringField returns a top-level string member, or "" when absent.
func (r *Response) StringField(name string) string {
	v, ok := r.Field(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Payload returns Data when the body has a data member, otherwise Body.
func (r *Response) Payload() json.RawMessage {
	if r == nil {
		return nil
	}
	if len(r.Data) > 0 {
		return r.Data
	}
	return r.Body
}
