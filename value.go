package jsontab

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is an in-memory JSON-like value: null, boolean, number, text, an
// ordered sequence, or an ordered key-unique mapping. Values are treated as
// immutable for the duration of a conversion.
type Value interface {
	isValue()
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number, held as its decimal literal text so the source
// spelling (e.g. "1.50") survives a round trip.
type Number string

// Text is a JSON string.
type Text string

// Sequence is an ordered list of values.
type Sequence []Value

// Member is a single key-value entry of a Mapping.
type Member struct {
	Key   string
	Value Value
}

// Mapping is an ordered list of members. Keys are unique within a Mapping.
type Mapping []Member

func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Number) isValue()   {}
func (Text) isValue()     {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// Get returns the value for key and whether the key is present.
func (m Mapping) Get(key string) (Value, bool) {
	for _, mem := range m {
		if mem.Key == key {
			return mem.Value, true
		}
	}
	return nil, false
}

// Keys returns the mapping's keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, mem := range m {
		keys[i] = mem.Key
	}
	return keys
}

// --- Ordered JSON serialization ---
//
// encoding/json maps lose key order, so Mapping (and the types it can
// contain) implement json.Marshaler directly.

func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

func (b Bool) MarshalJSON() ([]byte, error) { return strconv.AppendBool(nil, bool(b)), nil }

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return []byte(n), nil
}

func (t Text) MarshalJSON() ([]byte, error) { return json.Marshal(string(t)) }

func (s Sequence) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, el := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := json.Marshal(el)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mem := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mem.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(mem.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// scalarText returns the plain text content of a scalar value.
// Null renders as empty text.
func scalarText(v Value) string {
	switch t := v.(type) {
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case Number:
		return string(t)
	case Text:
		return string(t)
	}
	return ""
}
