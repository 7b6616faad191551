package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// ErrUnavailable signale qu'un mécanisme de copie n'est pas utilisable ici.
var ErrUnavailable = errors.New("mécanisme de copie indisponible")

// Mechanism est une façon de placer du texte dans le presse-papier.
type Mechanism interface {
	Name() string
	Copy(text string) error
}

// System utilise le presse-papier du système (pbcopy, xclip, wl-copy, API Windows).
type System struct{}

func (System) Name() string { return "system" }

func (System) Copy(text string) error {
	return WriteAll(text)
}

// OSC52 émet la séquence d'échappement OSC 52 : le terminal copie lui-même le texte,
// y compris à travers SSH. La sortie doit être un terminal.
type OSC52 struct {
	Out  io.Writer
	Tmux bool // encapsuler la séquence pour tmux
}

// NewOSC52 construit le mécanisme sur out, en détectant tmux via $TMUX.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{Out: out, Tmux: os.Getenv("TMUX") != ""}
}

func (o *OSC52) Name() string { return "osc52" }

func (o *OSC52) Copy(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if o.Out == nil || !isTerminal(o.Out) {
		return ErrUnavailable
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("écriture séquence osc52: %w", err)
	}
	return nil
}

// isTerminal est une variable pour pouvoir simuler un terminal dans les tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Copier tente le mécanisme principal puis, s'il échoue, le mécanisme de repli.
type Copier struct {
	primary  Mechanism
	fallback Mechanism // peut être nil
}

// NewCopier construit un Copier ; fallback peut être nil.
func NewCopier(primary, fallback Mechanism) *Copier {
	return &Copier{primary: primary, fallback: fallback}
}

// DefaultCopier : presse-papier système puis OSC 52 sur out.
func DefaultCopier(out io.Writer) *Copier {
	return NewCopier(System{}, NewOSC52(out))
}

// Copy retourne le nom du mécanisme qui a réussi.
// Si les deux échouent, l'erreur retournée contient les deux causes.
func (c *Copier) Copy(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	var primaryErr error
	if c.primary != nil {
		if primaryErr = c.primary.Copy(text); primaryErr == nil {
			return c.primary.Name(), nil
		}
		primaryErr = fmt.Errorf("%s: %w", c.primary.Name(), primaryErr)
	} else {
		primaryErr = ErrUnavailable
	}

	if c.fallback == nil {
		return "", fmt.Errorf("copie impossible: %w", primaryErr)
	}
	if err := c.fallback.Copy(text); err != nil {
		return "", fmt.Errorf("copie impossible: %w", errors.Join(primaryErr, fmt.Errorf("%s: %w", c.fallback.Name(), err)))
	}
	return c.fallback.Name(), nil
}
