package ability

import (
	"errors"
	"testing"
)

func TestParseEntry(t *testing.T) {
	e, err := ParseEntry(">SA 0 test\nline1\n\nline2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if e.Header != ">SA 0 test" {
		t.Errorf("header = %q", e.Header)
	}
	want := []string{"line1", "", "line2"}
	if len(e.Body) != len(want) {
		t.Fatalf("body = %v, want %v", e.Body, want)
	}
	for i := range want {
		if e.Body[i] != want[i] {
			t.Errorf("body[%d] = %q, want %q", i, e.Body[i], want[i])
		}
	}
}

func TestParseEntryToleratesLeadingWhitespace(t *testing.T) {
	e, err := ParseEntry("  >AA 3 indented")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// The header line is stored as written.
	if e.Header != "  >AA 3 indented" {
		t.Errorf("header = %q", e.Header)
	}
}

func TestParseEntryRejectsMissingHeader(t *testing.T) {
	for _, raw := range []string{"", "no header\nbody", "# comment"} {
		if _, err := ParseEntry(raw); !errors.Is(err, ErrInvalidEntry) {
			t.Errorf("ParseEntry(%q) = %v, want ErrInvalidEntry", raw, err)
		}
	}
}

func TestEntryTextRoundTrip(t *testing.T) {
	raw := ">SA 9 AutoPotion\nAbility AutoPotion\n\n# trailing comment"
	e, err := ParseEntry(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := e.Text(); got != raw {
		t.Errorf("Text() = %q, want %q", got, raw)
	}
}

func TestEntryType(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{">SA 12 Penetrator", "SA"},
		{">SA Global+ weapon effects", "SA Global+"},
		{">SA GlobalLast+ final pass", "SA GlobalLast+"},
		{">AA 11 Shell", "AA"},
		{">AA Global+ trance discount", "AA Global+"},
		{">", ""},
	}
	for _, tc := range tests {
		e := NewEntry(tc.header)
		if got := e.Type(); got != tc.want {
			t.Errorf("Type(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
