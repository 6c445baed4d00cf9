package orderer

// Block is a half-open [Begin, End) range over the line sequence, covering the
// lines strictly between the import delimiters. The delimiter lines themselves
// are never part of the range.
type Block struct {
	Begin int
	End   int
}

// Empty reports whether the block holds no lines.
func (b Block) Empty() bool {
	return b.Begin >= b.End
}

// Contains reports whether line index i falls inside the block.
func (b Block) Contains(i int) bool {
	return i >= b.Begin && i < b.End
}

// FindBlock locates the first import declaration block: the opening delimiter
// is the first line whose space-stripped, comment-stripped text is exactly
// "import(", the closing delimiter the first following line that is exactly
// ")". If either delimiter is missing the block is empty at end-of-sequence.
// Only the first block in the file is considered.
//
// Known limitation: a ")" alone on a line inside string or comment content
// closes the block early; such files are out of scope.
func FindBlock(lines []Line) Block {
	begin := len(lines)
	for i := range lines {
		if stripComment(stripSpaces(lines[i].Text)) == "import(" {
			begin = i + 1
			break
		}
	}
	end := begin
	for end < len(lines) {
		if stripComment(stripSpaces(lines[end].Text)) == ")" {
			break
		}
		end++
	}
	if end == len(lines) {
		// Opening delimiter without a closing one counts as no block.
		begin = end
	}
	return Block{Begin: begin, End: end}
}

// MarkBlankLines flags every blank or whitespace-only line inside the block
// for removal. Runs once, before sorting, so the comparator sees a single
// notion of "removed".
func MarkBlankLines(lines []Line, b Block) {
	for i := b.Begin; i < b.End; i++ {
		if isBlank(lines[i].Text) {
			lines[i].Removed = true
		}
	}
}
