// Package jsontab converts JSON-like values into textual target
// representations: HTML table markup, R data-frame source, Wolfram Language
// literals, JSON and YAML text, CSV/TSV, and plain-text tables.
//
// The engine is a single recursive pipeline: [Classify] determines the
// shape of a [Value] (tabular, list-like, key/value, or scalar), each
// renderer walks the value per shape, and [ToDataset] regularizes ragged
// collections into rectangular form with explicit missing-value filling.
//
// # Values
//
// [Value] is a sum type over [Null], [Bool], [Number], [Text], [Sequence],
// and [Mapping]. Mappings are ordered member lists, not Go maps, so key
// order survives parsing, normalization, and serialization. [Parse] and
// [ParseReader] build Values from JSON text.
//
// # Conversion
//
// [Convert] resolves a target name or alias case-insensitively and invokes
// the matching renderer:
//
//	out, err := jsontab.Convert(v, "html", jsontab.Options{Escape: true})
//
// Recognized aliases: html/markdown, r/rlang, wl/"wolfram language"/
// mathematica, json, yaml, csv, tsv, table. The json target bypasses the
// renderers and serializes the value directly. Unknown targets log a
// warning and return [ErrUnsupportedTarget] with an empty result.
//
// Per-target entry points ([ToHTML], [ToR], [ToWL], [ToJSON], [ToYAML],
// [ToCSV], [ToTSV], [ToTable]) and [ToDataset] are also exported for
// callers that have already resolved a target.
//
// # Shapes
//
//	[{"a":1,"b":2},{"a":3,"b":4}]   list of mappings → table / data frame / Dataset
//	{"x":1,"y":2}                   mapping of scalars → key/value rows
//	[1,2,3]                         list of scalars → <ul> / {1, 2, 3}
//
// Ragged lists (rows with differing key sets) are regularized by
// [ToDataset]: columns are the key union in first-occurrence order and
// absent cells take [Options.MissingValue].
//
// # Error model
//
// Classification and normalization are total; unsupported shapes pass
// through with a warning diagnostic. Parse errors propagate from
// encoding/json unchanged. The R renderer's contract is strict: non-tabular
// input is [ErrIncompatibleShape], fatal, with no partial output.
//
// All functions are pure and safe for concurrent use. No recursion-depth
// guard is imposed; pathologically deep nesting is the caller's
// responsibility.
package jsontab
