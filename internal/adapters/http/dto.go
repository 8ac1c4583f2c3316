package http

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errBodyNotObject = errors.New("request body must be a JSON object")

// HintRequest is the JSON body of POST /api/generate-hint.
type HintRequest struct {
	SecretWord string `json:"secretWord"`
}

// parseHintRequest accepts exactly one JSON object. secretWord may be any
// JSON value: null, false, 0, "", [] and {} count as absent, and other
// non-string values are used in their JSON text form.
func parseHintRequest(body []byte) (HintRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return HintRequest{}, err
	}
	if fields == nil {
		return HintRequest{}, errBodyNotObject
	}

	raw, ok := fields["secretWord"]
	if !ok {
		return HintRequest{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return HintRequest{}, err
	}

	var word string
	switch v := v.(type) {
	case string:
		word = v
	case bool:
		if v {
			word = "true"
		}
	case json.Number:
		if f, err := v.Float64(); err != nil || f != 0 {
			word = v.String()
		}
	case []any:
		if len(v) > 0 {
			word = string(raw)
		}
	case map[string]any:
		if len(v) > 0 {
			word = string(raw)
		}
	}
	return HintRequest{SecretWord: word}, nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}
