// Package cli fournit la structure de commandes Cobra de tlrewriter.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/tlrewriter/internal/app"
	"github.com/patrickprogramme/tlrewriter/internal/clipboard"
	"github.com/patrickprogramme/tlrewriter/internal/config"
	"github.com/patrickprogramme/tlrewriter/internal/logging"
	"github.com/patrickprogramme/tlrewriter/internal/ui"
)

// BuildInfo contient les informations injectées à la compilation.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootOptions regroupe les flags de la commande racine.
type rootOptions struct {
	flags app.CLIFlags

	debug bool
	color string

	output    string
	lineBreak string
	encoding  string
	baseline  int
	foldWidth bool
}

// NewRootCommand crée la commande racine et ses sous-commandes.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tlrewriter [fichier]",
		Short: "Décale les horodatages m:ss d'une TL de boss et remplace les retours à la ligne",
		Long: `tlrewriter réécrit une timeline (TL) de combat : chaque horodatage m:ss est décalé
du temps de report (en secondes) par rapport à la durée de référence (1:30 par défaut),
les valeurs négatives sont ramenées à 0:00, puis chaque retour à la ligne est remplacé
par un marqueur (<br> par défaut). Le résultat est écrit sur la sortie standard
et copié dans le presse-papier.

La TL est lue depuis le fichier donné en argument, le presse-papier (--from-clipboard)
ou l'entrée standard.

Exemples:
  tlrewriter --offset 20 < tl.txt
  tlrewriter -t 45 -c                    TL lue et recopiée dans le presse-papier
  tlrewriter -t 20 tl.txt -o tl.html --no-copy
  tlrewriter init --force                régénérer tlrewriter.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.flags.InputPath = args[0]
			}
			return runRewrite(cmd, opts)
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Flags globaux.
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "activer les logs de debug")
	rootCmd.PersistentFlags().StringVar(&opts.flags.ConfigPath, "config", "",
		"chemin du fichier de configuration (défaut: tlrewriter.yaml à côté de l'exécutable)")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "couleurs: auto, always, never")

	f := rootCmd.Flags()
	f.StringVarP(&opts.flags.Offset, "offset", "t", "", "temps de report en secondes (ex: 20)")
	f.BoolVarP(&opts.flags.FromClipboard, "from-clipboard", "c", false, "lire la TL depuis le presse-papier")
	f.BoolVar(&opts.flags.NoCopy, "no-copy", false, "ne pas copier le résultat dans le presse-papier")
	f.StringVarP(&opts.output, "output", "o", "", "écrire le résultat dans ce fichier plutôt que sur la sortie standard")
	f.StringVar(&opts.lineBreak, "line-break", "", "marqueur de retour à la ligne: html, lf, crlf ou texte littéral")
	f.StringVarP(&opts.encoding, "encoding", "e", "", "encodage de l'entrée: utf-8, shift_jis, euc-jp")
	f.IntVar(&opts.baseline, "baseline", 0, "durée de référence en secondes (défaut 90)")
	f.BoolVar(&opts.foldWidth, "fold-width", false, "convertir aussi les lettres et la ponctuation pleine chasse")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// overrides retourne les flags explicitement fournis.
func (o *rootOptions) overrides(cmd *cobra.Command) config.Overrides {
	var ov config.Overrides
	f := cmd.Flags()
	if f.Changed("output") {
		ov.OutputPath = &o.output
	}
	if f.Changed("line-break") {
		ov.LineBreak = &o.lineBreak
	}
	if f.Changed("encoding") {
		ov.InputEncoding = &o.encoding
	}
	if f.Changed("baseline") {
		ov.BaselineSeconds = &o.baseline
	}
	if f.Changed("fold-width") {
		ov.FoldWidth = &o.foldWidth
	}
	if o.debug {
		level := "debug"
		ov.LogLevel = &level
	}
	return ov
}

func runRewrite(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.flags.ConfigPath)
	if err != nil {
		return err
	}
	cfg.Apply(opts.overrides(cmd))

	warnings, err := cfg.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	for _, w := range warnings {
		logger.Warn(w, logging.FieldPath, cfg.Path())
	}
	ctx := logging.WithLogger(cmd.Context(), logger)

	handles := ui.Handles{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
	term := ui.NewTerminal(handles, opts.color)

	// l'OSC 52 est émis sur le flux des messages, jamais sur la sortie du résultat
	var fallback clipboard.Mechanism
	if cfg.ClipboardFallback == config.FallbackOSC52 {
		fallback = clipboard.NewOSC52(handles.Err)
	}

	a := app.NewWithOptions(cfg, term, &opts.flags, app.Options{
		Copier: clipboard.NewCopier(clipboard.System{}, fallback),
	})
	return a.Run(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// defaultConfigPath : tlrewriter.yaml à côté de l'exécutable.
func defaultConfigPath() string {
	binDir := "."
	if exePath, err := os.Executable(); err == nil {
		binDir = filepath.Dir(exePath)
	}
	return filepath.Join(binDir, config.DefaultFileName)
}
