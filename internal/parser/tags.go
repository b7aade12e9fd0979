// Package parser extracts project/person tags and todo lines from
// hand-edited log text. Parsing is tolerant: malformed
// constructs are skipped, never reported as errors.
package parser

import (
	"slices"
	"strings"
)

// TagKind distinguishes project references from person references.
type TagKind int

const (
	TagProject TagKind = iota // "#name"
	TagPerson                 // "@name"
)

// Tag is one reference token found in a line of text. Start is the byte
// offset of the "#" or "@" marker, End is one past the last name byte.
// The name never includes the marker and keeps its original case.
type Tag struct {
	Kind  TagKind
	Name  string
	Start int
	End   int
}

// isNameByte reports whether c may appear in a tag name.
func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}

// ScanTags scans a single line in one pass and returns every tag token
// in order of appearance. A marker not followed by a name character
// yields no token.
func ScanTags(line string) []Tag {
	var out []Tag
	for i := 0; i < len(line); {
		c := line[i]
		if c != '#' && c != '@' {
			i++
			continue
		}
		j := i + 1
		for j < len(line) && isNameByte(line[j]) {
			j++
		}
		if j == i+1 {
			i++
			continue
		}
		kind := TagProject
		if c == '@' {
			kind = TagPerson
		}
		out = append(out, Tag{Kind: kind, Name: line[i+1 : j], Start: i, End: j})
		i = j
	}
	return out
}

// TokenAt returns the tag whose name region contains the caret, plus
// the partial name typed so far (the bytes between the marker and the
// caret). ok is false when the caret is not inside a tag token; a caret
// immediately after a bare marker counts, with an empty partial.
func TokenAt(line string, caret int) (tag Tag, partial string, ok bool) {
	if caret < 0 || caret > len(line) {
		return Tag{}, "", false
	}
	// A bare marker directly before the caret is a token being started.
	if caret > 0 && (line[caret-1] == '#' || line[caret-1] == '@') {
		kind := TagProject
		if line[caret-1] == '@' {
			kind = TagPerson
		}
		return Tag{Kind: kind, Start: caret - 1, End: caret}, "", true
	}
	for _, t := range ScanTags(line) {
		if caret > t.Start && caret <= t.End {
			return t, line[t.Start+1 : caret], true
		}
	}
	return Tag{}, "", false
}

// Complete returns the known names the partial could complete to.
// Matching is a case-sensitive prefix test. Candidates are ordered by
// name length and then lexicographically, so the shortest completion
// comes first. An empty partial returns every name in file order.
func Complete(names []string, partial string) []string {
	if partial == "" {
		return slices.Clone(names)
	}
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, partial) {
			out = append(out, n)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		if d := len(a) - len(b); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return out
}
