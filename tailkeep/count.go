package tailkeep

import "strings"

// CountTrailingBlank reports how many lines at the end of text are blank.
// A line is blank when it is empty after trimming surrounding whitespace.
//
// Lines are the '\n'-delimited segments of text; the scan walks backward
// from the last segment and stops at the first non-blank one. Text that is
// entirely blank counts every segment, so "" yields 1 and "\n" yields 2.
func CountTrailingBlank(text string) int {
	count := 0
	end := len(text)
	for {
		start := strings.LastIndexByte(text[:end], '\n') + 1
		if strings.TrimSpace(text[start:end]) != "" {
			break
		}
		count++
		if start == 0 {
			break
		}
		// Skip the newline that terminated this segment.
		end = start - 1
	}
	return count
}
