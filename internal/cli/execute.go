package cli

import (
	"context"

	"github.com/patrickprogramme/tlrewriter/internal/logging"
)

// Execute lance la commande racine et retourne le code de sortie du processus.
func Execute(ctx context.Context, info BuildInfo, args []string) int {
	rootCmd := NewRootCommand(info)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Default().Error("échec de la commande", logging.FieldError, err)
		return ExitCode(err)
	}
	return ExitSuccess
}
