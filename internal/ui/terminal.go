package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/patrickprogramme/tlrewriter/internal/fsutil"
	"github.com/patrickprogramme/tlrewriter/pkg/model"
)

type terminalUI struct {
	h      Handles
	styles *Styles
}

// NewTerminal lie l'interface aux flux h. colorMode : "auto", "always" ou "never".
func NewTerminal(h Handles, colorMode string) Interface {
	if h.Err == nil {
		h.Err = io.Discard
	}
	return &terminalUI{
		h:      h,
		styles: NewStyles(IsColorEnabled(colorMode, h.Err)),
	}
}

func (t *terminalUI) Interactive() bool {
	return isTTY(t.h.In)
}

func (t *terminalUI) ReadTimeline(ctx context.Context, enc model.Encoding) (string, error) {
	if t.h.In == nil {
		return "", fmt.Errorf("aucune entrée liée")
	}
	if t.Interactive() {
		fmt.Fprintln(t.h.Err, t.styles.Prompt.Render("Collez la TL puis terminez par Ctrl+D (Ctrl+Z puis Entrée sous Windows) :"))
	}

	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		s, err := fsutil.DecodeText(t.h.In, enc)
		ch <- result{s, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("lecture de l'entrée: %w", r.err)
		}
		return r.text, nil
	}
}

func (t *terminalUI) WriteResult(ctx context.Context, s string) error {
	if t.h.Out == nil {
		return fmt.Errorf("aucune sortie liée")
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	if _, err := io.WriteString(t.h.Out, s); err != nil {
		return fmt.Errorf("écriture du résultat: %w", err)
	}
	return nil
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.h.Err, t.styles.Info.Render(s))
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(t.h.Err, t.styles.Error.Render(s))
}
