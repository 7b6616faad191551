package app

import (
	"context"
	"fmt"
	"os"

	"github.com/patrickprogramme/tlrewriter/internal/clipboard"
	"github.com/patrickprogramme/tlrewriter/internal/config"
	"github.com/patrickprogramme/tlrewriter/internal/logging"
	"github.com/patrickprogramme/tlrewriter/internal/timeline"
	"github.com/patrickprogramme/tlrewriter/internal/ui"
)

// CLIFlags contient les informations venant des flags de l'app
// qui ne sont pas déjà reportées dans la configuration.
type CLIFlags struct {
	ConfigPath    string
	InputPath     string // fichier de TL ; vide = entrée standard
	Offset        string // temps de report brut ; vide = default_offset de la config
	FromClipboard bool   // lire la TL depuis le presse-papier
	NoCopy        bool   // ne pas copier le résultat
}

// Copier place le résultat dans le presse-papier et retourne le mécanisme utilisé.
type Copier interface {
	Copy(text string) (string, error)
}

// Options permet d'injecter des dépendances (tests).
type Options struct {
	Copier        Copier
	ReadClipboard func() (string, error)
}

// App orchestre la lecture de la TL, sa réécriture, la sortie et la copie.
type App struct {
	cfg           *config.Config
	ui            ui.Interface
	flags         *CLIFlags
	rewriter      *timeline.Rewriter
	copier        Copier
	readClipboard func() (string, error)
}

// New construit l'application avec les dépendances par défaut.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	return NewWithOptions(cfg, uiClient, flags, Options{})
}

// NewWithOptions construit l'application ; les champs nil de opts prennent leur valeur par défaut.
func NewWithOptions(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags, opts Options) *App {
	if flags == nil {
		flags = &CLIFlags{}
	}

	copier := opts.Copier
	if copier == nil {
		if cfg.ClipboardFallback == config.FallbackNone {
			copier = clipboard.NewCopier(clipboard.System{}, nil)
		} else {
			copier = clipboard.DefaultCopier(os.Stderr)
		}
	}

	readClipboard := opts.ReadClipboard
	if readClipboard == nil {
		readClipboard = clipboard.ReadAll
	}

	return &App{
		cfg:   cfg,
		ui:    uiClient,
		flags: flags,
		rewriter: timeline.New(
			timeline.WithBaseline(cfg.BaselineSeconds),
			timeline.WithLineBreak(cfg.LineBreakMarker()),
			timeline.WithWidthFold(cfg.FoldWidth),
		),
		copier:        copier,
		readClipboard: readClipboard,
	}
}

// Run exécute le flux principal : offset validé d'abord, puis lecture, réécriture,
// écriture du résultat et copie dans le presse-papier.
func (a *App) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	offset, err := a.resolveOffset()
	if err != nil {
		return err
	}
	if offset > a.rewriter.Baseline() {
		log.Warn("le temps de report dépasse la durée de référence",
			logging.FieldOffset, offset, logging.FieldBaseline, a.rewriter.Baseline())
	}

	text, err := a.readInput(ctx)
	if err != nil {
		return err
	}

	res := a.rewriter.Apply(text, offset)
	log.Debug("TL réécrite",
		logging.FieldOffset, offset,
		logging.FieldBaseline, a.rewriter.Baseline(),
		logging.FieldMatches, res.Matches,
		logging.FieldClamped, res.Clamped)
	if res.Matches == 0 {
		log.Info("aucun horodatage trouvé, texte inchangé")
	}

	if err := a.writeOutput(ctx, res.Text); err != nil {
		return err
	}

	if !a.cfg.CopyToClipboard || a.flags.NoCopy {
		return nil
	}
	if res.Text == "" {
		log.Debug("résultat vide, rien à copier")
		return nil
	}
	if err := a.copyResult(ctx, res.Text); err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("❌ %v", err))
		return err
	}
	return nil
}
