package utils

import (
	"regexp"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

var (
	// đ must be handled before unidecode, which would fold it to plain "d".
	// Existing URLs use "dj", e.g. "Đerdap" -> "djerdap".
	djReplacer = strings.NewReplacer("đ", "dj", "Đ", "Dj")

	nonSlug    = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphen = regexp.MustCompile(`^-+|-+$`)
)

// Slugify turns a destination name into its URL slug: diacritics are
// transliterated (č->c, ć->c, š->s, ž->z, đ->dj), the rest is lower-cased
// and hyphenated.
func Slugify(name string) string {
	s := djReplacer.Replace(name)
	s = unidecode.Unidecode(s)
	s = strings.ToLower(s)
	s = nonSlug.ReplaceAllString(s, "-")
	s = edgeHyphen.ReplaceAllString(s, "")
	return s
}
