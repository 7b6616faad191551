package timeline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOffset est retournée quand l'offset n'est pas un entier fini.
	ErrInvalidOffset = errors.New("offset invalide")

	errEmptyOffset    = errors.New("valeur vide")
	errNotFinite      = errors.New("valeur non finie")
	errNotWholeNumber = errors.New("valeur non entière")
)

// OffsetError décrit un offset rejeté avant toute réécriture.
type OffsetError struct {
	Input string // valeur brute reçue
	Err   error  // cause
}

// Error retourne le message d'erreur
func (e *OffsetError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidOffset, e.Input, e.Err)
}

// Unwrap expose à la fois ErrInvalidOffset et la cause.
func (e *OffsetError) Unwrap() []error {
	return []error{ErrInvalidOffset, e.Err}
}
