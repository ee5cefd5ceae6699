package jsontab

// Shape classifies the structure of a Value. Renderers branch on it to pick
// a rendering strategy; the dataset normalizer uses it to pick a
// regularization strategy.
type Shape int

const (
	// ShapeScalar is a null, boolean, number, or text value.
	ShapeScalar Shape = iota
	// ShapeScalarList is a sequence whose every element is scalar.
	// The empty sequence is trivially a scalar list.
	ShapeScalarList
	// ShapeMappingList is a sequence whose every element is a mapping.
	// Use Rectangular to test whether all rows share one key set.
	ShapeMappingList
	// ShapeMappingOfMappings is a mapping whose every value is a mapping.
	ShapeMappingOfMappings
	// ShapeMappingOfScalars is a mapping whose every value is scalar.
	// The empty mapping is trivially a mapping of scalars.
	ShapeMappingOfScalars
	// ShapePairList is a sequence whose every element is a two-element
	// sequence with a scalar first element, read as (key, value) pairs.
	ShapePairList
	// ShapeGeneric is any mixed or otherwise unclassified structure.
	ShapeGeneric
)

var shapeNames = map[Shape]string{
	ShapeScalar:            "scalar",
	ShapeScalarList:        "list of scalars",
	ShapeMappingList:       "list of mappings",
	ShapeMappingOfMappings: "mapping of mappings",
	ShapeMappingOfScalars:  "mapping of scalars",
	ShapePairList:          "list of pairs",
	ShapeGeneric:           "generic",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Classify determines the shape of v. It is a pure, total function.
func Classify(v Value) Shape {
	switch t := v.(type) {
	case Sequence:
		return classifySequence(t)
	case Mapping:
		return classifyMapping(t)
	}
	return ShapeScalar
}

func classifySequence(s Sequence) Shape {
	allScalar, allMapping, allPair := true, true, true
	for _, el := range s {
		if !isScalar(el) {
			allScalar = false
		}
		if _, ok := el.(Mapping); !ok {
			allMapping = false
		}
		if !isPair(el) {
			allPair = false
		}
	}
	switch {
	case allScalar:
		return ShapeScalarList
	case allMapping:
		return ShapeMappingList
	case allPair:
		return ShapePairList
	default:
		return ShapeGeneric
	}
}

func classifyMapping(m Mapping) Shape {
	allScalar, allMapping := true, true
	for _, mem := range m {
		if !isScalar(mem.Value) {
			allScalar = false
		}
		if _, ok := mem.Value.(Mapping); !ok {
			allMapping = false
		}
	}
	switch {
	case allScalar:
		return ShapeMappingOfScalars
	case allMapping:
		return ShapeMappingOfMappings
	default:
		return ShapeGeneric
	}
}

func isScalar(v Value) bool {
	switch v.(type) {
	case nil, Null, Bool, Number, Text:
		return true
	}
	return false
}

func isPair(v Value) bool {
	s, ok := v.(Sequence)
	return ok && len(s) == 2 && isScalar(s[0])
}

// Rectangular reports whether every mapping in s carries the same key set.
// Key order may differ between rows; the comparison is set equality.
// The empty sequence is rectangular.
func Rectangular(s Sequence) bool {
	if len(s) == 0 {
		return true
	}
	first, ok := s[0].(Mapping)
	if !ok {
		return false
	}
	want := make(map[string]struct{}, len(first))
	for _, mem := range first {
		want[mem.Key] = struct{}{}
	}
	for _, el := range s[1:] {
		m, ok := el.(Mapping)
		if !ok {
			return false
		}
		if len(m) != len(want) {
			return false
		}
		for _, mem := range m {
			if _, ok := want[mem.Key]; !ok {
				return false
			}
		}
	}
	return true
}

// columnUnion returns the union of keys across rows in first-occurrence
// order.
func columnUnion(rows []Mapping) []string {
	var cols []string
	seen := make(map[string]struct{})
	for _, row := range rows {
		for _, mem := range row {
			if _, ok := seen[mem.Key]; !ok {
				seen[mem.Key] = struct{}{}
				cols = append(cols, mem.Key)
			}
		}
	}
	return cols
}

// asMappings converts a sequence already classified as ShapeMappingList.
func asMappings(s Sequence) []Mapping {
	rows := make([]Mapping, len(s))
	for i, el := range s {
		rows[i] = el.(Mapping)
	}
	return rows
}
