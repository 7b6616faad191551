package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/patrickprogramme/tlrewriter/internal/fsutil"
	"github.com/patrickprogramme/tlrewriter/internal/logging"
	"github.com/patrickprogramme/tlrewriter/internal/timeline"
)

// resolveOffset : priorité flag > config. La valeur est validée avant toute lecture.
func (a *App) resolveOffset() (int, error) {
	raw := a.flags.Offset
	if strings.TrimSpace(raw) == "" {
		raw = a.cfg.DefaultOffset
	}
	if strings.TrimSpace(raw) == "" {
		return 0, ErrOffsetRequired
	}
	return timeline.ParseOffset(raw)
}

// readInput : priorité fichier > presse-papier > entrée standard.
func (a *App) readInput(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)
	enc := a.cfg.Encoding()

	switch {
	case a.flags.InputPath != "":
		log.Debug("lecture du fichier", logging.FieldInput, a.flags.InputPath, logging.FieldEncoding, enc)
		s, err := fsutil.ReadTextFile(a.flags.InputPath, enc)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return s, nil

	case a.flags.FromClipboard:
		log.Debug("lecture du presse-papier")
		s, err := a.readClipboard()
		if err != nil {
			return "", fmt.Errorf("%w: presse-papier: %w", ErrReadInput, err)
		}
		return strings.TrimPrefix(s, "\ufeff"), nil

	default:
		s, err := a.ui.ReadTimeline(ctx, enc)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return "", fmt.Errorf("opération annulée: %w", err)
			}
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return s, nil
	}
}

// writeOutput écrit dans output_path si défini, sinon sur la sortie liée à l'UI.
func (a *App) writeOutput(ctx context.Context, s string) error {
	if a.cfg.OutputPath == "" {
		if err := a.ui.WriteResult(ctx, s); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fsutil.WriteFileAtomic(a.cfg.OutputPath, []byte(s), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	logging.FromContext(ctx).Debug("TL écrite", logging.FieldOutput, a.cfg.OutputPath)
	a.ui.PrintInfo(ctx, fmt.Sprintf("TL écrite dans %s", a.cfg.OutputPath))
	return nil
}

// copyResult copie s et signale le résultat à l'utilisateur.
func (a *App) copyResult(ctx context.Context, s string) error {
	mechanism, err := a.copier.Copy(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	logging.FromContext(ctx).Debug("résultat copié", logging.FieldMechanism, mechanism)
	a.ui.PrintInfo(ctx, "✅ TL copiée dans le presse-papier.")
	return nil
}
