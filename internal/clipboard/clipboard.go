package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmptyText est retournée quand on tente de copier une chaîne vide.
var ErrEmptyText = errors.New("le texte à copier ne peut pas être vide")

// ReadAll lit le contenu texte du presse-papier.
// Retourne une chaîne de caractères et une erreur éventuelle.
func ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si l'opération échoue.
func WriteAll(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}
