package jsontab

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ToCSV writes the normalized dataset as CSV with a header row. Input that
// is not already tabular goes through the same regularization as ToDataset
// (Key/Value reinterpretation, union-and-fill, single-column wrapping).
func ToCSV(v Value, opts Options) (string, error) {
	return toDelimited(v, opts, ',')
}

// ToTSV is ToCSV with a tab field delimiter.
func ToTSV(v Value, opts Options) (string, error) {
	return toDelimited(v, opts, '\t')
}

func toDelimited(v Value, opts Options, comma rune) (string, error) {
	cols, rows, err := tabulate(v, opts)
	if err != nil {
		return "", err
	}
	if len(cols) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = comma
	if err := cw.Write(cols); err != nil {
		return "", err
	}
	for _, row := range rows {
		rec := make([]string, len(cols))
		for i, col := range cols {
			if cell, ok := row.Get(col); ok {
				rec[i] = cellText(cell)
			}
		}
		if err := cw.Write(rec); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// tabulate normalizes v and flattens it to columns and rows for the
// grid-shaped targets (CSV, TSV, text table). A normalized mapping of
// mappings is flattened with its outer keys as a leading Key column.
func tabulate(v Value, opts Options) ([]string, []Mapping, error) {
	ds := ToDataset(v, opts.MissingValue)
	switch t := ds.(type) {
	case Sequence:
		if len(t) == 0 {
			return nil, nil, nil
		}
		if Classify(t) != ShapeMappingList {
			return nil, nil, fmt.Errorf("%w: cannot tabulate %s", ErrIncompatibleShape, Classify(v))
		}
		rows := asMappings(t)
		cols := columnUnion(rows)
		if len(opts.FieldNames) > 0 {
			cols = opts.FieldNames
		}
		return cols, rows, nil
	case Mapping:
		if Classify(t) != ShapeMappingOfMappings {
			return nil, nil, fmt.Errorf("%w: cannot tabulate %s", ErrIncompatibleShape, Classify(v))
		}
		inner := make([]Mapping, len(t))
		for i, mem := range t {
			inner[i] = mem.Value.(Mapping)
		}
		cols := append([]string{"Key"}, columnUnion(inner)...)
		rows := make([]Mapping, len(t))
		for i, mem := range t {
			row := make(Mapping, 0, len(inner[i])+1)
			row = append(row, Member{Key: "Key", Value: Text(mem.Key)})
			row = append(row, inner[i]...)
			rows[i] = row
		}
		return cols, rows, nil
	}
	return nil, nil, fmt.Errorf("%w: cannot tabulate %s", ErrIncompatibleShape, Classify(v))
}

// cellText renders a cell for grid output: scalars as plain text, nested
// structures as their JSON text.
func cellText(v Value) string {
	if isScalar(v) {
		return scalarText(v)
	}
	s, err := ToJSON(v)
	if err != nil {
		return ""
	}
	return s
}
