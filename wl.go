package jsontab

import (
	"net/url"
	"strings"
)

// ToWL renders v as Wolfram Language literal code. The recursion mirrors
// the HTML renderer one-for-one: mappings become associations, rectangular
// lists of mappings become Dataset literals, sequences become list
// literals, scalars become literal tokens. It never fails.
func ToWL(v Value, opts Options) (string, error) {
	var b strings.Builder
	writeWLValue(&b, v, opts, true)
	return b.String(), nil
}

func writeWLValue(b *strings.Builder, v Value, opts Options, outer bool) {
	switch Classify(v) {
	case ShapeScalar:
		b.WriteString(wlScalar(v, opts))
	case ShapeScalarList:
		s := v.(Sequence)
		if outer && len(opts.FieldNames) > 0 {
			writeWLSingleRow(b, s, opts)
			return
		}
		writeWLList(b, s, opts)
	case ShapeMappingList:
		s := v.(Sequence)
		var cols []string
		if outer && len(opts.FieldNames) > 0 {
			cols = opts.FieldNames
		}
		if cols == nil && !Rectangular(s) {
			writeWLList(b, s, opts)
			return
		}
		b.WriteString("Dataset[{")
		for i, row := range asMappings(s) {
			if i > 0 {
				b.WriteString(", ")
			}
			if cols == nil {
				writeWLAssoc(b, row, opts)
				continue
			}
			restricted := make(Mapping, 0, len(cols))
			for _, col := range cols {
				cell, ok := row.Get(col)
				if !ok {
					cell = Null{}
				}
				restricted = append(restricted, Member{Key: col, Value: cell})
			}
			writeWLAssoc(b, restricted, opts)
		}
		b.WriteString("}]")
	case ShapeMappingOfMappings, ShapeMappingOfScalars:
		writeWLAssoc(b, v.(Mapping), opts)
	default:
		switch t := v.(type) {
		case Sequence:
			writeWLList(b, t, opts)
		case Mapping:
			writeWLAssoc(b, t, opts)
		}
	}
}

func writeWLList(b *strings.Builder, s Sequence, opts Options) {
	b.WriteString("{")
	for i, el := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		writeWLValue(b, el, opts, false)
	}
	b.WriteString("}")
}

func writeWLAssoc(b *strings.Builder, m Mapping, opts Options) {
	b.WriteString("<|")
	for i, mem := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(wlQuote(wlText(mem.Key, opts)))
		b.WriteString(" -> ")
		writeWLValue(b, mem.Value, opts, false)
	}
	b.WriteString("|>")
}

func writeWLSingleRow(b *strings.Builder, s Sequence, opts Options) {
	b.WriteString("Dataset[{<|")
	for i, name := range opts.FieldNames {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(wlQuote(wlText(name, opts)))
		b.WriteString(" -> ")
		if i < len(s) {
			b.WriteString(wlScalar(s[i], opts))
		} else {
			b.WriteString("Null")
		}
	}
	b.WriteString("|>}]")
}

func wlScalar(v Value, opts Options) string {
	switch t := v.(type) {
	case Bool:
		if t {
			return "True"
		}
		return "False"
	case Number:
		return string(t)
	case Text:
		return wlQuote(wlText(string(t), opts))
	}
	return "Null"
}

func wlText(s string, opts Options) string {
	if opts.Encode {
		s = url.QueryEscape(s)
	}
	return s
}

// wlQuote wraps s in double quotes with WL string escapes.
func wlQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
