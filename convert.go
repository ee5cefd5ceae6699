package jsontab

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedTarget = errors.New("unsupported target")
	ErrIncompatibleShape = errors.New("incompatible shape")
)

// Target selects an output syntax.
type Target string

const (
	HTML  Target = "html"
	R     Target = "r"
	WL    Target = "wl"
	JSON  Target = "json"
	YAML  Target = "yaml"
	CSV   Target = "csv"
	TSV   Target = "tsv"
	Table Target = "table"
)

var targets = []Target{HTML, R, WL, JSON, YAML, CSV, TSV, Table}

// aliases maps lower-cased target names to canonical targets.
var aliases = map[string]Target{
	"html":             HTML,
	"markdown":         HTML,
	"r":                R,
	"rlang":            R,
	"wl":               WL,
	"wolfram language": WL,
	"mathematica":      WL,
	"json":             JSON,
	"yaml":             YAML,
	"csv":              CSV,
	"tsv":              TSV,
	"table":            Table,
}

// String returns the canonical target name.
func (t Target) String() string { return string(t) }

// Targets returns all supported canonical targets.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets)
	return out
}

// ParseTarget resolves a target name or alias, case-insensitively.
func ParseTarget(s string) (Target, error) {
	if t, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTarget, s)
}

// Options configures a conversion. The zero value is a valid default.
type Options struct {
	// FieldNames overrides the inferred column order and labels of the
	// outermost tabular shape, or supplies positional keys when the top
	// level is a flat list read as a single row.
	FieldNames []string
	// TableAttributes is injected verbatim into the opening tag of the
	// outermost HTML table only. Inner tables keep the default tag form.
	TableAttributes string
	// Encode percent-encodes scalar text.
	Encode bool
	// Escape applies target-syntax escaping to scalar text. When both
	// Escape and Encode are set, Escape is applied first.
	Escape bool
	// MissingValue is the sentinel inserted for absent keys during
	// normalization. Defaults to empty text.
	MissingValue Text
}

// Convert renders v in the named target syntax. Unknown targets emit a
// warning diagnostic and return ErrUnsupportedTarget with an empty result;
// callers that want the soft-failure behavior of the CLI can treat that
// error as "no output".
func Convert(v Value, target string, opts Options) (string, error) {
	t, err := ParseTarget(target)
	if err != nil {
		logger.Warn("unsupported conversion target", "target", target)
		return "", err
	}
	switch t {
	case HTML:
		return ToHTML(v, opts)
	case R:
		return ToR(v, opts)
	case WL:
		return ToWL(v, opts)
	case JSON:
		return ToJSON(v)
	case YAML:
		return ToYAML(v)
	case CSV:
		return ToCSV(v, opts)
	case TSV:
		return ToTSV(v, opts)
	case Table:
		return ToTable(v, opts)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
}

// ConvertString parses data as JSON text and converts the result. Parse
// errors propagate unchanged.
func ConvertString(data string, target string, opts Options) (string, error) {
	v, err := Parse(data)
	if err != nil {
		return "", err
	}
	return Convert(v, target, opts)
}
