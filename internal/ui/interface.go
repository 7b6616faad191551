package ui

import (
	"context"
	"io"

	"github.com/patrickprogramme/tlrewriter/pkg/model"
)

// Handles regroupe les flux nommés auxquels l'interface est liée.
// L'application hôte les fournit une seule fois, à la construction.
type Handles struct {
	In  io.Reader // TL brute
	Out io.Writer // TL réécrite
	Err io.Writer // messages, invites
}

type Interface interface {
	// ReadTimeline lit toute l'entrée et la décode depuis enc.
	// En mode interactif une invite est affichée avant la lecture.
	ReadTimeline(ctx context.Context, enc model.Encoding) (string, error)

	// WriteResult écrit la TL réécrite sur la sortie.
	WriteResult(ctx context.Context, s string) error

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// Interactive indique si l'entrée est un terminal (saisie manuelle).
	Interactive() bool
}
