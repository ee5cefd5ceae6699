package jsontab

import "encoding/json"

// ToJSON serializes v as JSON text, bypassing the renderers entirely.
// Mapping key order is preserved.
func ToJSON(v Value) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
