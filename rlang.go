package jsontab

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ToR emits R source constructing a data frame: one backtick-named c(...)
// vector per column. The contract is tabular data in, tabular code out —
// input must be a list of mappings (or a flat scalar list plus FieldNames,
// read as a single row), and cells must be scalar. Anything else is
// ErrIncompatibleShape, fatal with no partial output. Ragged input takes
// the key union as columns with NA for absent cells.
func ToR(v Value, opts Options) (string, error) {
	var cols []string
	var rows []Mapping
	switch Classify(v) {
	case ShapeMappingList:
		s := v.(Sequence)
		rows = asMappings(s)
		cols = columnUnion(rows)
		if len(opts.FieldNames) > 0 {
			cols = opts.FieldNames
		}
	case ShapeScalarList:
		if len(opts.FieldNames) == 0 {
			return "", fmt.Errorf("%w: target %q needs field names to read a flat list as a row", ErrIncompatibleShape, R)
		}
		s := v.(Sequence)
		cols = opts.FieldNames
		row := make(Mapping, 0, len(cols))
		for i, col := range cols {
			cell := Value(Null{})
			if i < len(s) {
				cell = s[i]
			}
			row = append(row, Member{Key: col, Value: cell})
		}
		rows = []Mapping{row}
	default:
		return "", fmt.Errorf("%w: target %q requires a list of mappings, got %s", ErrIncompatibleShape, R, Classify(v))
	}

	var b strings.Builder
	b.WriteString("data.frame(")
	for i, col := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("`")
		b.WriteString(col)
		b.WriteString("` = c(")
		for j, row := range rows {
			if j > 0 {
				b.WriteString(", ")
			}
			cell, ok := row.Get(col)
			if !ok {
				b.WriteString("NA")
				continue
			}
			lit, err := rScalar(cell, opts)
			if err != nil {
				return "", err
			}
			b.WriteString(lit)
		}
		b.WriteString(")")
	}
	b.WriteString(")")
	return b.String(), nil
}

func rScalar(v Value, opts Options) (string, error) {
	switch t := v.(type) {
	case nil, Null:
		return "NA", nil
	case Bool:
		if t {
			return "TRUE", nil
		}
		return "FALSE", nil
	case Number:
		return string(t), nil
	case Text:
		s := string(t)
		if opts.Encode {
			s = url.QueryEscape(s)
		}
		return strconv.Quote(s), nil
	}
	return "", fmt.Errorf("%w: target %q requires scalar cells, got %s", ErrIncompatibleShape, R, Classify(v))
}
