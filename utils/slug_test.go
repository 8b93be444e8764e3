package utils

import "testing"

func TestSlugifyDiacritics(t *testing.T) {
	cases := map[string]string{
		"Čačak":    "cacak",
		"Šabac":    "sabac",
		"Niš":      "nis",
		"Đerdap":   "djerdap",
		"Žagubica": "zagubica",
		"Ćuprija":  "cuprija",
		"Beograd":  "beograd",
	}
	for name, want := range cases {
		if got := Slugify(name); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSlugifyHyphenation(t *testing.T) {
	cases := map[string]string{
		"Novi Sad":          "novi-sad",
		"  Stara  Planina ": "stara-planina",
		"Sveti Đorđe":       "sveti-djordje",
		"Banja - Vrujci":    "banja-vrujci",
	}
	for name, want := range cases {
		if got := Slugify(name); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", name, got, want)
		}
	}
}
