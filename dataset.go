package jsontab

// ToDataset regularizes v into rectangular form: a sequence of mappings in
// which every row carries the same ordered column-key list, with absent keys
// filled by missing. It never fails; shapes it cannot regularize are
// returned unchanged after a warning diagnostic. The operation is
// idempotent.
func ToDataset(v Value, missing Text) Value {
	switch Classify(v) {
	case ShapeScalar:
		return Sequence{Mapping{{Key: "Value", Value: v}}}
	case ShapeScalarList:
		s := v.(Sequence)
		out := make(Sequence, len(s))
		for i, el := range s {
			out[i] = Mapping{{Key: "Value", Value: el}}
		}
		return out
	case ShapeMappingList:
		s := v.(Sequence)
		if Rectangular(s) {
			return v
		}
		rows := asMappings(s)
		cols := columnUnion(rows)
		out := make(Sequence, len(rows))
		for i, row := range rows {
			out[i] = fillRow(row, cols, missing)
		}
		return out
	case ShapeMappingOfMappings:
		m := v.(Mapping)
		inner := make([]Mapping, len(m))
		for i, mem := range m {
			inner[i] = mem.Value.(Mapping)
		}
		cols := columnUnion(inner)
		out := make(Mapping, len(m))
		for i, mem := range m {
			out[i] = Member{Key: mem.Key, Value: fillRow(inner[i], cols, missing)}
		}
		return out
	case ShapeMappingOfScalars:
		m := v.(Mapping)
		out := make(Sequence, len(m))
		for i, mem := range m {
			out[i] = Mapping{
				{Key: "Key", Value: Text(mem.Key)},
				{Key: "Value", Value: mem.Value},
			}
		}
		return out
	case ShapePairList:
		s := v.(Sequence)
		out := make(Sequence, len(s))
		for i, el := range s {
			pair := el.(Sequence)
			out[i] = Mapping{
				{Key: "Key", Value: pair[0]},
				{Key: "Value", Value: pair[1]},
			}
		}
		return out
	default:
		logger.Warn("cannot normalize value of this shape", "shape", Classify(v).String())
		return v
	}
}

// fillRow rebuilds row with exactly cols, copying present values and
// inserting missing for absent keys.
func fillRow(row Mapping, cols []string, missing Text) Mapping {
	out := make(Mapping, 0, len(cols))
	for _, col := range cols {
		if val, ok := row.Get(col); ok {
			out = append(out, Member{Key: col, Value: val})
		} else {
			out = append(out, Member{Key: col, Value: missing})
		}
	}
	return out
}
