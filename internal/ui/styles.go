package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contient les styles de sortie du terminal.
type Styles struct {
	Info   lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// NewStyles retourne des styles colorés ou neutres.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{Info: plain, Error: plain, Prompt: plain}
	}
	return &Styles{
		Info:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	}
}

// IsColorEnabled : "always", "never" ou "auto" (couleur seulement sur un TTY et sans NO_COLOR).
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTTY(w)
	}
}

func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
