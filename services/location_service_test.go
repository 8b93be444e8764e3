package services

import "testing"

func TestNormalizeQueryFoldsDiacritics(t *testing.T) {
	cases := map[string]string{
		"Čačak":    "cacak",
		"  Niš  ":  "nis",
		"ZLATIBOR": "zlatibor",
		"Kopaonik": "kopaonik",
	}
	for in, want := range cases {
		if got := normalizeQuery(in); got != want {
			t.Fatalf("normalizeQuery(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSimilarityBounds(t *testing.T) {
	if got := similarity("cacak", "cacak"); got != 1.0 {
		t.Fatalf("identical strings: similarity = %v, want 1.0", got)
	}
	if got := similarity("", ""); got != 1.0 {
		t.Fatalf("empty strings: similarity = %v, want 1.0", got)
	}
	if got := similarity("abc", "xyz"); got != 0.0 {
		t.Fatalf("disjoint strings: similarity = %v, want 0.0", got)
	}

	closer := similarity("cacak", "cacak1")
	farther := similarity("cacak", "beograd")
	if closer <= farther {
		t.Fatalf("one edit (%v) should score above a different name (%v)", closer, farther)
	}

	// never outside [0,1], whatever the strings
	pairs := [][2]string{
		{"abc", "xyz"},
		{"cacak", "beograd"},
		{"a", "zzzzzzzzzz"},
		{"nis", ""},
	}
	for _, p := range pairs {
		if got := similarity(p[0], p[1]); got < 0.0 || got > 1.0 {
			t.Fatalf("similarity(%q, %q) = %v, outside [0,1]", p[0], p[1], got)
		}
	}
}
