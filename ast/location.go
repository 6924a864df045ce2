package ast

// Position is a point in the source text: 1-based line, 0-based column.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Location is the line/column span of a node or token.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Range is a half-open [start, end) byte-offset span into the source text.
type Range [2]int

// Contains reports whether the range fully contains the other range.
func (r Range) Contains(other Range) bool {
	return r[0] <= other[0] && other[1] <= r[1]
}
