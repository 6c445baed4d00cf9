// Package orderer normalizes the import declaration block of a source file:
// imports are split into stdlib, platform and third-party groups, sorted
// lexicographically within each group and separated by a single blank line,
// while everything outside the block is preserved byte-for-byte.
package orderer

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/siyuan-infoblox/go-imports-order/pkg/errors"
	"github.com/siyuan-infoblox/go-imports-order/pkg/utils"
)

// Result is the per-file outcome, printed as [<path>][<message>].
type Result struct {
	Path    string
	Message string
}

// String formats the result the way the tool reports it on stdout.
func (r Result) String() string {
	return "[" + r.Path + "][" + r.Message + "]"
}

// Config holds the classifier prefix sets.
type Config struct {
	ThirdPartyPrefixes []string
	PlatformPrefixes   []string
}

// Orderer rewrites import blocks in place, one file at a time.
type Orderer struct {
	classifier *Classifier
	log        *logrus.Logger
}

// New creates an Orderer with the given configuration and logger.
func New(cfg Config, log *logrus.Logger) *Orderer {
	if log == nil {
		log = logrus.New()
	}
	return &Orderer{
		classifier: NewClassifier(cfg.ThirdPartyPrefixes, cfg.PlatformPrefixes),
		log:        log,
	}
}

// readLines loads a file as physical lines. A trailing newline does not
// produce an extra empty line. Unreadable and empty files both yield zero
// lines; they are reported identically.
func (o *Orderer) readLines(path string) []Line {
	content, err := os.ReadFile(path)
	if err != nil {
		o.log.Debugf("reading %s: %v", path, err)
		return nil
	}
	if len(content) == 0 {
		return nil
	}
	texts := strings.Split(string(content), "\n")
	if texts[len(texts)-1] == "" {
		texts = texts[:len(texts)-1]
	}
	return NewLines(texts)
}

// FormatFile runs the whole pipeline on one file: read, locate the import
// block, mark blank lines for removal, sort, rewrite in place. The returned
// Result always carries a message; the error is non-nil only when the rewrite
// itself fails.
func (o *Orderer) FormatFile(path string) (Result, error) {
	lines := o.readLines(path)
	if len(lines) == 0 {
		return Result{Path: path, Message: errors.MsgReadFailed}, nil
	}

	block := FindBlock(lines)
	if block.Empty() {
		return Result{Path: path, Message: errors.MsgNoImports}, nil
	}

	MarkBlankLines(lines, block)
	o.classifier.SortBlock(lines, block)

	// Whole-file overwrite; a crash mid-write can truncate the file.
	if err := os.WriteFile(path, o.classifier.Render(lines, block), 0644); err != nil {
		return Result{}, err
	}

	o.log.Debugf("ordered imports in %s", path)
	return Result{Path: path, Message: errors.MsgDone}, nil
}

// ProcessPath formats a single file, or every .go file under a directory in
// traversal order. A file path with any other extension is silently skipped.
// Each file is independent; a per-file failure message does not stop the run.
func (o *Orderer) ProcessPath(path string) ([]Result, error) {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return nil, err
	}

	var results []Result
	if isDir {
		goFiles, err := utils.FindGoFiles(path)
		if err != nil {
			return nil, err
		}
		for _, goFile := range goFiles {
			result, err := o.FormatFile(goFile)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
		return results, nil
	}

	if !utils.IsGoFile(path) {
		return nil, nil
	}
	result, err := o.FormatFile(path)
	if err != nil {
		return nil, err
	}
	return append(results, result), nil
}
