package config

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/tlrewriter/internal/logging"
	"github.com/patrickprogramme/tlrewriter/internal/timeline"
	"github.com/patrickprogramme/tlrewriter/pkg/model"
)

// Validate vérifie les valeurs de la configuration.
// Retourne des warnings (non-fatals) et une erreur si une valeur est inutilisable.
func (c *Config) Validate() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("%w: config nil", ErrInvalidConfig)
	}

	var problems []string

	if c.BaselineSeconds < 0 {
		problems = append(problems, fmt.Sprintf("baseline_seconds doit être positif (reçu %d)", c.BaselineSeconds))
	}

	if c.DefaultOffset != "" {
		offset, perr := timeline.ParseOffset(c.DefaultOffset)
		if perr != nil {
			problems = append(problems, fmt.Sprintf("default_offset : %v", perr))
		} else if offset > c.BaselineSeconds {
			warnings = append(warnings, fmt.Sprintf("default_offset (%d) dépasse baseline_seconds (%d) : les horodatages seront avancés", offset, c.BaselineSeconds))
		}
	}

	if _, perr := model.ParseEncoding(c.InputEncoding); perr != nil {
		problems = append(problems, fmt.Sprintf("input_encoding : %v", perr))
	}

	if c.LineBreak != "" && !model.LineBreak(c.LineBreak).IsPreset() {
		warnings = append(warnings, fmt.Sprintf("line_break %q n'est pas un preset (html, lf, crlf) : utilisé tel quel", c.LineBreak))
	}

	switch c.ClipboardFallback {
	case FallbackOSC52, FallbackNone:
	default:
		problems = append(problems, fmt.Sprintf("clipboard_fallback inconnu : %q (osc52 ou none)", c.ClipboardFallback))
	}

	if !logging.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("log_level inconnu : %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return warnings, nil
}
