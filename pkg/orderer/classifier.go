package orderer

import "strings"

// ModuleClass is the category assigned to a single line of the import block.
type ModuleClass int

const (
	StdLib ModuleClass = iota
	Platform
	ThirdParty
	None
)

// classRank fixes the group order explicitly so that reordering the constants
// above cannot silently change sort results.
var classRank = map[ModuleClass]int{
	StdLib:     0,
	Platform:   1,
	ThirdParty: 2,
	None:       3,
}

// String returns a human-readable name for the class.
func (m ModuleClass) String() string {
	switch m {
	case StdLib:
		return "stdlib"
	case Platform:
		return "platform"
	case ThirdParty:
		return "thirdparty"
	default:
		return "none"
	}
}

// Default prefix sets, matching the original order_includes tool.
var (
	DefaultThirdPartyPrefixes = []string{"github.com/", "gopkg.in/", "golang.org/", "pault.ag/"}
	DefaultPlatformPrefixes   = []string{"platform/"}
)

// Classifier maps a line to its module class based on configurable sets of
// quoted-path prefixes.
type Classifier struct {
	thirdParty []string
	platform   []string
}

// NewClassifier creates a Classifier with the given prefix sets. Empty sets
// fall back to the defaults.
func NewClassifier(thirdParty, platform []string) *Classifier {
	if len(thirdParty) == 0 {
		thirdParty = DefaultThirdPartyPrefixes
	}
	if len(platform) == 0 {
		platform = DefaultPlatformPrefixes
	}
	return &Classifier{
		thirdParty: thirdParty,
		platform:   platform,
	}
}

// Classify maps one line to its module class. Rules apply in order, first
// match wins:
//  1. ThirdParty if the line contains a quoted path with a third-party prefix
//  2. Platform if the line contains a quoted path with a platform prefix
//  3. None if the line is removed, blank, or a line comment
//  4. StdLib for everything else
//
// Classification is a pure function of the line.
func (c *Classifier) Classify(line Line) ModuleClass {
	if hasQuotedPrefix(line.Text, c.thirdParty) {
		return ThirdParty
	}
	if hasQuotedPrefix(line.Text, c.platform) {
		return Platform
	}
	if line.Removed || isBlank(line.Text) {
		return None
	}
	if strings.HasPrefix(stripSpaces(line.Text), "//") {
		return None
	}
	return StdLib
}

// hasQuotedPrefix reports whether s contains a double-quoted path starting
// with any of the given prefixes.
func hasQuotedPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.Contains(s, `"`+prefix) {
			return true
		}
	}
	return false
}
