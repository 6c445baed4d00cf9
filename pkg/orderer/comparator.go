package orderer

import (
	"sort"
	"strings"
)

// Less defines the total order used to sort the block range: removed lines
// sort after all kept lines, kept lines order by group rank, and lines of the
// same rank order lexicographically by normalized path.
func (c *Classifier) Less(lhs, rhs Line) bool {
	if lhs.Removed && rhs.Removed {
		return false
	}
	if lhs.Removed {
		return false
	}
	if rhs.Removed {
		return true
	}
	lhsRank := classRank[c.Classify(lhs)]
	rhsRank := classRank[c.Classify(rhs)]
	if lhsRank != rhsRank {
		return lhsRank < rhsRank
	}
	return normalizePath(lhs.Text) < normalizePath(rhs.Text)
}

// normalizePath strips all whitespace and drops everything before the first
// quote character, so an aliased import sorts by its quoted module path.
// Unquoted lines sort by their stripped text.
func normalizePath(s string) string {
	s = stripSpaces(s)
	if i := strings.Index(s, `"`); i >= 0 {
		return s[i:]
	}
	return s
}

// SortBlock orders the block range in place. The sort is not stable; relative
// order among exactly equal lines is unspecified.
func (c *Classifier) SortBlock(lines []Line, b Block) {
	block := lines[b.Begin:b.End]
	sort.Slice(block, func(i, j int) bool {
		return c.Less(block[i], block[j])
	})
}
