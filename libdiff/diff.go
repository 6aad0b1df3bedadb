package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tindalwic-format/go-tindalwic/encode"
	"github.com/tindalwic-format/go-tindalwic/ir"
)

// Diff returns a line diff of the canonical encodings of two
// documents. Unchanged lines carry two leading spaces, removals "- ",
// additions "+ ". Identical documents give the empty string.
func Diff(from, to *ir.File) (string, error) {
	diffs, err := lineDiffs(from, to)
	if err != nil {
		return "", err
	}
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return "", nil
	}
	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range chunkLines(d.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// Pretty returns the same line diff rendered with ANSI colors,
// insertions green and deletions red.
func Pretty(from, to *ir.File) (string, error) {
	diffs, err := lineDiffs(from, to)
	if err != nil {
		return "", err
	}
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return "", nil
	}
	return diffpatch.New().DiffPrettyText(diffs), nil
}

func lineDiffs(from, to *ir.File) ([]diffpatch.Diff, error) {
	a, err := encode.String(from)
	if err != nil {
		return nil, err
	}
	b, err := encode.String(to)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	// diff whole lines, not characters
	ca, cb, lines := diffCfg.DiffLinesToChars(a+"\n", b+"\n")
	diffs := diffCfg.DiffMain(ca, cb, false)
	return diffCfg.DiffCharsToLines(diffs, lines), nil
}

// chunkLines splits a diff chunk into its lines, dropping the final
// empty split that the trailing newline produces.
func chunkLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
