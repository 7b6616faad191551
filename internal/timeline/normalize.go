package timeline

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// écart fixe entre un chiffre pleine chasse (U+FF10..U+FF19) et son équivalent ASCII
const fullWidthShift = 0xFEE0

// fullWidthDigits convertit les deux-points et chiffres pleine chasse, et rien d'autre.
var fullWidthDigits = runes.Map(func(r rune) rune {
	switch {
	case r == '：':
		return ':'
	case r >= '０' && r <= '９':
		return r - fullWidthShift
	}
	return r
})

// Normalize ramène les chiffres et deux-points pleine chasse en ASCII.
// Avec fold, toute la largeur est repliée via width.Fold (lettres ＡＢＣ, signes, etc.).
// Normalize est idempotente.
func Normalize(s string, fold bool) string {
	if fold {
		s = apply(width.Fold, s)
	}
	return apply(fullWidthDigits, s)
}

// apply exécute un transformer sans état ; en cas d'erreur la chaîne d'origine est conservée.
func apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
