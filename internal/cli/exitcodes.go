package cli

import (
	"errors"

	"github.com/patrickprogramme/tlrewriter/internal/app"
	"github.com/patrickprogramme/tlrewriter/internal/config"
	"github.com/patrickprogramme/tlrewriter/internal/timeline"
)

// Codes de sortie de tlrewriter.
const (
	// ExitSuccess : exécution réussie.
	ExitSuccess = 0

	// ExitFailure : erreur générale (copie impossible, annulation).
	ExitFailure = 1

	// ExitInvalidUsage : flags ou temps de report invalides.
	ExitInvalidUsage = 64

	// ExitConfigError : fichier de configuration illisible ou invalide.
	ExitConfigError = 65

	// ExitIOError : lecture de la TL ou écriture du résultat impossible.
	ExitIOError = 74
)

var (
	// ErrUsage enveloppe les erreurs de ligne de commande.
	ErrUsage = errors.New("utilisation invalide")

	// ErrConfig enveloppe les erreurs de chargement de la configuration.
	ErrConfig = errors.New("configuration")
)

// ExitCode détermine le code de sortie correspondant à err.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage),
		errors.Is(err, timeline.ErrInvalidOffset),
		errors.Is(err, app.ErrOffsetRequired):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, app.ErrReadInput), errors.Is(err, app.ErrWriteOutput):
		return ExitIOError
	default:
		return ExitFailure
	}
}
