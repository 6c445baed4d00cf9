package orderer

import "strings"

// Render produces the full file content from the post-sort line sequence.
// Removed lines are dropped, and one blank line is inserted between two
// adjacent kept lines when both lie inside the block and belong to different
// non-None classes. Every emitted line ends with a newline. Lines outside the
// block pass through unchanged.
func (c *Classifier) Render(lines []Line, b Block) []byte {
	var out strings.Builder
	for i := range lines {
		if lines[i].Removed {
			continue
		}
		out.WriteString(lines[i].Text)
		out.WriteByte('\n')

		if i == len(lines)-1 || lines[i+1].Removed {
			continue
		}
		if !b.Contains(i) || !b.Contains(i+1) {
			continue
		}
		current := c.Classify(lines[i])
		next := c.Classify(lines[i+1])
		if current != None && next != None && current != next {
			out.WriteByte('\n')
		}
	}
	return []byte(out.String())
}
