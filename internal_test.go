package jsontab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnUnionFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()
	rows := []Mapping{
		{{Key: "b", Value: Number("1")}},
		{{Key: "a", Value: Number("2")}, {Key: "b", Value: Number("3")}},
		{{Key: "c", Value: Number("4")}},
	}
	assert.Equal(t, []string{"b", "a", "c"}, columnUnion(rows))
}

func TestFillRow(t *testing.T) {
	t.Parallel()
	row := Mapping{{Key: "b", Value: Number("3")}}
	got := fillRow(row, []string{"a", "b"}, "?")
	assert.Equal(t, Mapping{
		{Key: "a", Value: Text("?")},
		{Key: "b", Value: Number("3")},
	}, got)
}

func TestIsPair(t *testing.T) {
	t.Parallel()
	assert.True(t, isPair(Sequence{Number("1"), Text("a")}))
	assert.False(t, isPair(Sequence{Number("1")}), "one element is not a pair")
	assert.False(t, isPair(Sequence{Sequence{}, Text("a")}), "pair key must be scalar")
	assert.False(t, isPair(Text("a")))
}

func TestHTMLTextEscapeBeforeEncode(t *testing.T) {
	t.Parallel()
	got := htmlText("<", Options{Escape: true, Encode: true})
	assert.Equal(t, "%26lt%3B", got)
}

func TestWLQuote(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `"a\"b\\c"`, wlQuote(`a"b\c`))
	assert.Equal(t, `"line\nnext"`, wlQuote("line\nnext"))
}

func TestScalarText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", scalarText(Null{}))
	assert.Equal(t, "true", scalarText(Bool(true)))
	assert.Equal(t, "1.5", scalarText(Number("1.5")))
	assert.Equal(t, "x", scalarText(Text("x")))
}

func TestCellTextNested(t *testing.T) {
	t.Parallel()
	got := cellText(Mapping{{Key: "a", Value: Number("1")}})
	assert.Equal(t, `{"a":1}`, got)
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab ", padCell("ab", 3))
	assert.Equal(t, "ab", padCell("ab", 2))
	// Full-width characters count as two columns.
	assert.Equal(t, "你 ", padCell("你", 3))
}

func TestTableWidths(t *testing.T) {
	t.Parallel()
	widths := tableWidths([]string{"a", "bb"}, [][]string{{"111", "2"}})
	assert.Equal(t, []int{3, 2}, widths)
}
