package parser

import "strings"

// Todo markers as they appear on disk.
const (
	MarkerOpen = "[]"
	MarkerDone = "[x]"
)

// TodoLine is the result of classifying one line as a todo.
type TodoLine struct {
	Text   string
	Done   bool
	Offset int // byte offset of '[' within the line
}

// ParseTodoLine classifies a line. A line is a todo iff, after trimming
// leading whitespace, it starts with exactly "[]" (open) or "[x]"/"[X]"
// (done). Any other bracket form, such as a space inside the brackets,
// is not a todo. The text is the remainder after the marker, trimmed of
// exactly one separating space.
func ParseTodoLine(line string) (TodoLine, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	rest := line[i:]

	var done bool
	var markerLen int
	switch {
	case strings.HasPrefix(rest, MarkerOpen):
		done, markerLen = false, len(MarkerOpen)
	case strings.HasPrefix(rest, MarkerDone), strings.HasPrefix(rest, "[X]"):
		done, markerLen = true, len(MarkerDone)
	default:
		return TodoLine{}, false
	}

	text := strings.TrimPrefix(rest[markerLen:], " ")
	return TodoLine{Text: text, Done: done, Offset: i}, true
}

// FlipMarker inspects the todo marker at the start of s and returns the
// marker's byte length, its flipped replacement, and the done state the
// replacement encodes. ok is false when s does not begin with a
// recognized marker; callers treat that as a stale locator.
func FlipMarker(s []byte) (length int, replacement string, nowDone bool, ok bool) {
	switch {
	case len(s) >= 2 && s[0] == '[' && s[1] == ']':
		return 2, MarkerDone, true, true
	case len(s) >= 3 && s[0] == '[' && (s[1] == 'x' || s[1] == 'X') && s[2] == ']':
		return 3, MarkerOpen, false, true
	default:
		return 0, "", false, false
	}
}
