package post

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

const MaxBodyLength = 280

// Sanitize retire les caractères de contrôle et les espaces en bordure.
// La longueur est validée sur cette forme, avant l'échappement HTML.
func Sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// ValidateBody renvoie la forme stockée du texte (échappée HTML) ou false
// si la longueur après nettoyage est hors de [1, 280].
func ValidateBody(s string) (string, bool) {
	clean := Sanitize(s)
	n := utf8.RuneCountInString(clean)
	if n == 0 || n > MaxBodyLength {
		return "", false
	}
	// Échappement à l'écriture : une seule convention pour toute la base.
	return html.EscapeString(clean), true
}
