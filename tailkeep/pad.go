package tailkeep

import "strings"

// Pad appends blank lines to the surface until its trailing blank line
// count reaches target. The deficit is inserted in place at the logical end
// of the buffer (row = line count, col 0); when the surface already has
// target or more trailing blanks, nothing is touched.
//
// Pad only ever appends after the last line and never persists anything.
func Pad(s Surface, target int) {
	missing := target - CountTrailingBlank(s.Text())
	if missing <= 0 {
		return
	}
	s.InsertAt(s.LineCount(), 0, strings.Repeat("\n", missing))
}
