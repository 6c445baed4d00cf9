package orderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifier_Render_separators(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(nil, nil)

	lines := NewLines([]string{
		"package main",
		"",
		"import (",
		"\t\"fmt\"",
		"\t\"os\"",
		"\t\"platform/z\"",
		"\t\"github.com/x/y\"",
		")",
		"",
		"func main() {}",
	})
	block := Block{Begin: 3, End: 7}

	got := string(c.Render(lines, block))

	want := strings.Join([]string{
		"package main",
		"",
		"import (",
		"\t\"fmt\"",
		"\t\"os\"",
		"",
		"\t\"platform/z\"",
		"",
		"\t\"github.com/x/y\"",
		")",
		"",
		"func main() {}",
	}, "\n") + "\n"
	req.Equal(want, got)
}

func TestClassifier_Render_dropsRemovedLines(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(nil, nil)

	lines := []Line{
		{Text: "import ("},
		{Text: "\t\"fmt\""},
		{Text: "", Removed: true},
		{Text: "   ", Removed: true},
		{Text: ")"},
	}
	block := Block{Begin: 1, End: 4}

	got := string(c.Render(lines, block))
	req.Equal("import (\n\t\"fmt\"\n)\n", got)
}

func TestClassifier_Render_noSeparatorAroundComments(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(nil, nil)

	lines := NewLines([]string{
		"import (",
		"\t\"fmt\"",
		"\t// grouped below",
		"\t\"github.com/x/y\"",
		")",
	})
	block := Block{Begin: 1, End: 4}

	// Comment lines classify as None, so no separator is inserted next to them
	got := string(c.Render(lines, block))
	req.Equal("import (\n\t\"fmt\"\n\t// grouped below\n\t\"github.com/x/y\"\n)\n", got)
}

func TestClassifier_Render_outsideBlockUntouched(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(nil, nil)

	// Differently-classified adjacent lines outside the block get no separator
	lines := NewLines([]string{
		"\t\"fmt\"",
		"\t\"github.com/x/y\"",
		"   odd   spacing preserved\t",
	})

	got := string(c.Render(lines, Block{Begin: 0, End: 0}))
	req.Equal("\t\"fmt\"\n\t\"github.com/x/y\"\n   odd   spacing preserved\t\n", got)
}
