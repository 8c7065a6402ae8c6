package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSON reads a config file into a T. Unknown fields are rejected.
func ReadJSON[T any](path string) (T, error) {
	var out T

	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return out, nil
}
