package event

import "encoding/json"

// DecodePayload returns the payload as a T. Payloads published in-process are
// already the concrete struct; maps (as produced by a JSON decode) are converted.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}

	var out T
	raw, err := json.Marshal(input)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
