package jsontab

import (
	"html"
	"net/url"
	"strings"
)

// ToHTML renders v as HTML table markup, recursing per shape. Tabular
// shapes become <table border="1"> with thead/tbody, key/value shapes
// become plain <table> rows of <th>/<td>, scalar lists become <ul>. Nested
// values produce nested instances of the same grammar. It never fails.
func ToHTML(v Value, opts Options) (string, error) {
	var b strings.Builder
	writeHTMLValue(&b, v, opts, true)
	return b.String(), nil
}

func writeHTMLValue(b *strings.Builder, v Value, opts Options, outer bool) {
	switch Classify(v) {
	case ShapeScalar:
		b.WriteString(htmlText(scalarText(v), opts))
	case ShapeScalarList:
		s := v.(Sequence)
		if outer && len(opts.FieldNames) > 0 {
			// A flat list with field names reads as a single table row.
			writeHTMLSingleRow(b, s, opts)
			return
		}
		writeHTMLList(b, s, opts)
	case ShapeMappingList:
		writeHTMLTable(b, v.(Sequence), opts, outer)
	case ShapeMappingOfMappings, ShapeMappingOfScalars:
		writeHTMLKeyValue(b, v.(Mapping), opts, outer)
	default:
		switch t := v.(type) {
		case Sequence:
			writeHTMLList(b, t, opts)
		case Mapping:
			writeHTMLKeyValue(b, t, opts, outer)
		}
	}
}

func writeHTMLList(b *strings.Builder, s Sequence, opts Options) {
	b.WriteString("<ul>")
	for _, el := range s {
		b.WriteString("<li>")
		writeHTMLValue(b, el, opts, false)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}

func writeHTMLTable(b *strings.Builder, s Sequence, opts Options, outer bool) {
	rows := asMappings(s)
	cols := columnUnion(rows)
	if outer && len(opts.FieldNames) > 0 {
		cols = opts.FieldNames
	}
	openHTMLTable(b, `border="1"`, opts, outer)
	b.WriteString("<thead><tr>")
	for _, col := range cols {
		b.WriteString("<th>")
		b.WriteString(htmlText(col, opts))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, col := range cols {
			b.WriteString("<td>")
			if cell, ok := row.Get(col); ok {
				writeHTMLValue(b, cell, opts, false)
			}
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}

// writeHTMLSingleRow renders a scalar list as a one-row table keyed
// positionally by the supplied field names.
func writeHTMLSingleRow(b *strings.Builder, s Sequence, opts Options) {
	openHTMLTable(b, `border="1"`, opts, true)
	b.WriteString("<thead><tr>")
	for _, name := range opts.FieldNames {
		b.WriteString("<th>")
		b.WriteString(htmlText(name, opts))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody><tr>")
	for i := range opts.FieldNames {
		b.WriteString("<td>")
		if i < len(s) {
			writeHTMLValue(b, s[i], opts, false)
		}
		b.WriteString("</td>")
	}
	b.WriteString("</tr></tbody></table>")
}

func writeHTMLKeyValue(b *strings.Builder, m Mapping, opts Options, outer bool) {
	openHTMLTable(b, "", opts, outer)
	for _, mem := range m {
		b.WriteString("<tr><th>")
		b.WriteString(htmlText(mem.Key, opts))
		b.WriteString("</th><td>")
		writeHTMLValue(b, mem.Value, opts, false)
		b.WriteString("</td></tr>")
	}
	b.WriteString("</table>")
}

func openHTMLTable(b *strings.Builder, defaultAttrs string, opts Options, outer bool) {
	attrs := defaultAttrs
	if outer && opts.TableAttributes != "" {
		attrs = opts.TableAttributes
	}
	if attrs == "" {
		b.WriteString("<table>")
		return
	}
	b.WriteString("<table ")
	b.WriteString(attrs)
	b.WriteString(">")
}

// htmlText applies the optional escape and encode passes, escape first.
func htmlText(s string, opts Options) string {
	if opts.Escape {
		s = html.EscapeString(s)
	}
	if opts.Encode {
		s = url.QueryEscape(s)
	}
	return s
}
