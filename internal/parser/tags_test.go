package parser

import (
	"reflect"
	"testing"
)

func TestScanTags_Basic(t *testing.T) {
	line := "call @john about #new-website"
	got := ScanTags(line)
	want := []Tag{
		{Kind: TagPerson, Name: "john", Start: 5, End: 10},
		{Kind: TagProject, Name: "new-website", Start: 17, End: 29},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScanTags = %+v, want %+v", got, want)
	}
}

func TestScanTags_BareMarkerYieldsNoToken(t *testing.T) {
	for _, line := range []string{"#", "@", "# space", "@ space", "end #", "a@!b"} {
		if got := ScanTags(line); len(got) != 0 {
			t.Errorf("ScanTags(%q) = %+v, want none", line, got)
		}
	}
}

func TestScanTags_MaximalRunStopsAtNonNameChar(t *testing.T) {
	got := ScanTags("#new-website, then @john_smith2.")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "new-website" {
		t.Errorf("first = %q, want %q", got[0].Name, "new-website")
	}
	if got[1].Name != "john_smith2" {
		t.Errorf("second = %q, want %q", got[1].Name, "john_smith2")
	}
}

func TestScanTags_CasePreserved(t *testing.T) {
	got := ScanTags("#WebSite @John")
	if got[0].Name != "WebSite" || got[1].Name != "John" {
		t.Errorf("case not preserved: %+v", got)
	}
}

func TestTokenAt(t *testing.T) {
	line := "see #new-web now"
	tests := []struct {
		name    string
		caret   int
		partial string
		ok      bool
	}{
		{"inside token", 8, "new", true},
		{"token end", 12, "new-web", true},
		{"right after marker", 5, "", true},
		{"before token", 4, "", false},
		{"outside token", 14, "", false},
		{"out of range", 99, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, partial, ok := TokenAt(line, tc.caret)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && partial != tc.partial {
				t.Errorf("partial = %q, want %q", partial, tc.partial)
			}
		})
	}
}

func TestTokenAt_BareMarkerStartsToken(t *testing.T) {
	tag, partial, ok := TokenAt("ping @", 6)
	if !ok || partial != "" {
		t.Fatalf("TokenAt = %+v, %q, %v", tag, partial, ok)
	}
	if tag.Kind != TagPerson {
		t.Errorf("kind = %v, want person", tag.Kind)
	}
}

func TestComplete_PrefixMatch(t *testing.T) {
	names := []string{"new-website", "redesign", "new-web"}
	got := Complete(names, "new-web")
	want := []string{"new-web", "new-website"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete = %v, want %v", got, want)
	}
}

func TestComplete_OrderedByLengthThenLex(t *testing.T) {
	names := []string{"abc", "abd", "ab", "abcd"}
	got := Complete(names, "ab")
	want := []string{"ab", "abc", "abd", "abcd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete = %v, want %v", got, want)
	}
}

func TestComplete_CaseSensitive(t *testing.T) {
	if got := Complete([]string{"Website"}, "web"); len(got) != 0 {
		t.Errorf("Complete = %v, want none", got)
	}
}

func TestComplete_EmptyPartialReturnsAllInFileOrder(t *testing.T) {
	names := []string{"zeta", "alpha", "mid"}
	got := Complete(names, "")
	if !reflect.DeepEqual(got, names) {
		t.Errorf("Complete = %v, want file order %v", got, names)
	}
}
