package upstream

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipMagic is the base64 encoding of the gzip header bytes 1f 8b 08.
const gzipMagic = "H4sI"

// ErrEmptyPayload is returned when the body decodes to nothing usable.
var ErrEmptyPayload = errors.New("empty payload")

// DecodePayload parses a listing response body. Bodies starting with the
// base64 gzip signature are decoded and decompressed first, and a payload
// wrapped in a single-element array is unwrapped.
func DecodePayload(body []byte) (map[string]any, error) {
	body = bytes.TrimSpace(body)
	if bytes.HasPrefix(body, []byte(gzipMagic)) {
		raw, err := base64.StdEncoding.DecodeString(string(body))
		if err != nil {
			return nil, fmt.Errorf("decode base64 payload: %w", err)
		}
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("open gzip payload: %w", err)
		}
		defer zr.Close()
		if body, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("inflate payload: %w", err)
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}

	if arr, ok := parsed.([]any); ok {
		if len(arr) == 0 {
			return nil, ErrEmptyPayload
		}
		parsed = arr[0]
	}

	payload, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrEmptyPayload, parsed)
	}
	return payload, nil
}
