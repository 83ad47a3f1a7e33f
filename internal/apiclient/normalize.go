package apiclient

import "encoding/json"

// Normalize reconciles the list-response envelopes the backend is known to
// produce into one flat sequence:
//
//   - a bare JSON array is returned as-is;
//   - an object whose "content" field is an array yields that field
//     (paginated responses);
//   - an object whose "data" field is an array yields that field
//     (generic wrappers);
//   - any other shape, including null, scalars and malformed input,
//     yields an empty sequence.
//
// It is pure and never fails; every list endpoint goes through it so no
// call site re-derives shape detection.
func Normalize(body []byte) []json.RawMessage {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil && list != nil {
		return list
	}

	var envelope struct {
		Content json.RawMessage `json:"content"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if err := json.Unmarshal(envelope.Content, &list); err == nil && list != nil {
			return list
		}
		if err := json.Unmarshal(envelope.Data, &list); err == nil && list != nil {
			return list
		}
	}
	return []json.RawMessage{}
}

// decodeList normalizes a list body and decodes every element into T.
func decodeList[T any](body []byte) ([]T, error) {
	raw := Normalize(body)
	out := make([]T, 0, len(raw))
	for _, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
