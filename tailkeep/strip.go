package tailkeep

import (
	"strings"
	"unicode"
)

// Strip returns text with its whole trailing whitespace suffix removed:
// every trailing blank line, line terminator, and any trailing horizontal
// whitespace on the last retained line. Idempotent.
func Strip(text string) string {
	return strings.TrimRightFunc(text, unicode.IsSpace)
}
