package orderer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(nil, nil)

	tests := []struct {
		name string
		line Line
		want ModuleClass
	}{
		// Third-party prefixes
		{"github import", Line{Text: "\t\"github.com/spf13/cobra\""}, ThirdParty},
		{"gopkg import", Line{Text: "\t\"gopkg.in/yaml.v3\""}, ThirdParty},
		{"golang.org import", Line{Text: "\t\"golang.org/x/tools\""}, ThirdParty},
		{"pault.ag import", Line{Text: "\t\"pault.ag/go/debian\""}, ThirdParty},
		{"aliased third party", Line{Text: "\tcobra \"github.com/spf13/cobra\""}, ThirdParty},

		// Platform prefix
		{"platform import", Line{Text: "\t\"platform/db/connector\""}, Platform},
		{"aliased platform", Line{Text: "\tdb \"platform/db\""}, Platform},

		// None
		{"empty line", Line{Text: ""}, None},
		{"whitespace only", Line{Text: "   \t  "}, None},
		{"removed line", Line{Text: "", Removed: true}, None},
		{"comment only", Line{Text: "\t// a comment"}, None},
		{"indented comment", Line{Text: "    // another"}, None},

		// StdLib catch-all
		{"fmt", Line{Text: "\t\"fmt\""}, StdLib},
		{"net/http", Line{Text: "\t\"net/http\""}, StdLib},
		{"aliased stdlib", Line{Text: "\tosexec \"os/exec\""}, StdLib},
		{"unquoted garbage", Line{Text: "\tnot an import"}, StdLib},

		// Unclassified domains default to stdlib, not third party
		{"gitlab import", Line{Text: "\t\"gitlab.com/org/repo\""}, StdLib},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, c.Classify(tt.line), "Classify(%q)", tt.line.Text)
		})
	}
}

func TestClassifier_Classify_syntheticPrefixes(t *testing.T) {
	req := require.New(t)
	c := NewClassifier([]string{"example.com/"}, []string{"internal/"})

	req.Equal(ThirdParty, c.Classify(Line{Text: "\t\"example.com/pkg\""}))
	req.Equal(Platform, c.Classify(Line{Text: "\t\"internal/db\""}))

	// Default prefixes no longer apply
	req.Equal(StdLib, c.Classify(Line{Text: "\t\"github.com/spf13/cobra\""}))
	req.Equal(StdLib, c.Classify(Line{Text: "\t\"platform/db\""}))
}

func TestClassifier_Classify_isStable(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(nil, nil)

	line := Line{Text: "\t\"github.com/spf13/cobra\""}
	first := c.Classify(line)
	for i := 0; i < 3; i++ {
		req.Equal(first, c.Classify(line))
	}
}

func TestClassRank_coversAllClasses(t *testing.T) {
	req := require.New(t)

	req.Len(classRank, 4)
	req.Less(classRank[StdLib], classRank[Platform])
	req.Less(classRank[Platform], classRank[ThirdParty])
	req.Less(classRank[ThirdParty], classRank[None])
}
