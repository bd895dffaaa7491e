package catalogapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/auracraft/storefront/internal/core/domain"
)

// decodeCollection accepts both shapes the backend answers with: a bare
// JSON array or an {"items": [...]} envelope. Any other shape is
// domain.ErrMalformedResponse.
func decodeCollection[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty body: %w", domain.ErrMalformedResponse)
	}

	switch data[0] {
	case '[':
		return decodeArray[T](data)
	case '{':
		var envelope struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
		}
		items := bytes.TrimSpace(envelope.Items)
		if len(items) == 0 || items[0] != '[' {
			return nil, fmt.Errorf("envelope without items array: %w",
				domain.ErrMalformedResponse)
		}
		return decodeArray[T](items)
	}

	return nil, fmt.Errorf("unexpected json value: %w", domain.ErrMalformedResponse)
}

func decodeArray[T any](data []byte) ([]T, error) {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if vs == nil {
		vs = []T{}
	}
	return vs, nil
}

// errorDetail extracts the message of a FastAPI style error body:
// {"detail": "..."} or {"detail": [{"msg": "..."}]}.
func errorDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &list); err == nil && len(list) > 0 {
		return list[0].Msg
	}
	return ""
}
