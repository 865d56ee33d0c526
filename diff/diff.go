// Package diff renders line diffs of encoded value trees.
package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/valex-go/valex/encode"
	"github.com/valex-go/valex/ir"
)

// Nodes diffs the indented text forms of two trees. Equal trees yield "".
func Nodes(from, to *ir.Node) string {
	if ir.Equal(from, to) {
		return ""
	}
	return Strings(encode.MustString(from)+"\n", encode.MustString(to)+"\n")
}

// Strings produces a unified-style line diff with ' ', '-' and '+' prefixes.
func Strings(from, to string) string {
	diffCfg := diffpatch.New()
	fromCh, toCh, lineIndex := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(fromCh, toCh, false), lineIndex)
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		var prefix string
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range splitLines(diff.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
