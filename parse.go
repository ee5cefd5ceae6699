package jsontab

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Parse decodes JSON text into a Value, preserving object key order.
func Parse(data string) (Value, error) {
	return ParseReader(strings.NewReader(data))
}

// ParseReader decodes a single JSON value from r, preserving object key
// order. Trailing non-whitespace data is an error.
func ParseReader(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level JSON value")
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseMapping(dec)
		case '[':
			return parseSequence(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return Text(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

func parseSequence(dec *json.Decoder) (Value, error) {
	seq := Sequence{}
	for dec.More() {
		el, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		seq = append(seq, el)
	}
	if _, err := dec.Token(); err != nil { // closing ]
		return nil, err
	}
	return seq, nil
}

func parseMapping(dec *json.Decoder) (Value, error) {
	m := Mapping{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		m = append(m, Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing }
		return nil, err
	}
	return m, nil
}
