package csvio

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff between two CSV renderings: "-" for removed
// lines, "+" for added ones, unchanged lines passed through indented.
func Diff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitLines(d.Text) {
			out.WriteString(prefix)
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
