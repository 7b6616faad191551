package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrickprogramme/tlrewriter/internal/assets"
	"github.com/patrickprogramme/tlrewriter/internal/bootstrap"
	"github.com/patrickprogramme/tlrewriter/internal/logging"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Créer le fichier de configuration par défaut",
		Long: `Écrit tlrewriter.yaml (ou le chemin donné par --config) à partir du modèle embarqué.
Un fichier existant n'est jamais modifié sans --force ; avec --force il est
sauvegardé (.bak.<horodatage>) avant d'être remplacé.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.flags.ConfigPath
			if path == "" {
				path = defaultConfigPath()
			}

			status, err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset, force)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfig, err)
			}
			logging.Default().Debug("init", logging.FieldPath, path, logging.FieldStatus, status)

			fmt.Fprintf(cmd.OutOrStdout(), "%s : %s\n", path, status)
			if status == bootstrap.StatusSkipped {
				fmt.Fprintln(cmd.OutOrStdout(), "le fichier existant diffère du modèle ; utilisez --force pour le remplacer")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "remplacer un fichier existant (après sauvegarde)")
	return cmd
}
