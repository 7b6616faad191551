// Package timeline réécrit les horodatages "M:SS" d'une TL selon le temps de report.
package timeline

import (
	"regexp"
	"strings"

	"github.com/patrickprogramme/tlrewriter/pkg/model"
)

// DefaultBaseline est la durée de référence (en secondes) retranchée de chaque horodatage.
const DefaultBaseline = 90

// un seul chiffre pour les minutes : "12:30" n'est réécrit que sur "2:30"
var timestampPattern = regexp.MustCompile(`([0-9]):([0-9][0-9])`)

// Result contient le texte réécrit et quelques statistiques utiles pour les logs.
type Result struct {
	Text    string
	Matches int // nombre d'horodatages réécrits
	Clamped int // horodatages ramenés à 0:00
}

// Rewriter applique la réécriture. Une fois construit il est immuable
// et peut être partagé entre goroutines.
type Rewriter struct {
	baseline  int
	foldWidth bool
	marker    string
	breaks    *strings.Replacer
}

// Option configure un Rewriter.
type Option func(*Rewriter)

// WithBaseline remplace la durée de référence (90 secondes par défaut).
func WithBaseline(seconds int) Option {
	return func(r *Rewriter) {
		r.baseline = seconds
	}
}

// WithLineBreak choisit le marqueur inséré à la place des retours à la ligne.
func WithLineBreak(marker string) Option {
	return func(r *Rewriter) {
		r.marker = marker
	}
}

// WithWidthFold active le repliement complet de la largeur (lettres pleine chasse comprises).
func WithWidthFold(enabled bool) Option {
	return func(r *Rewriter) {
		r.foldWidth = enabled
	}
}

// New construit un Rewriter ; sans option il reproduit le comportement historique
// (référence 90 s, retours à la ligne en "<br>", chiffres et deux-points seulement).
func New(opts ...Option) *Rewriter {
	r := &Rewriter{
		baseline: DefaultBaseline,
		marker:   model.LineBreakHTML.Marker(),
	}
	for _, opt := range opts {
		opt(r)
	}
	// "\r\n" doit précéder "\r" : le Replacer teste les motifs dans l'ordre
	r.breaks = strings.NewReplacer("\r\n", r.marker, "\r", r.marker, "\n", r.marker)
	return r
}

// Baseline retourne la durée de référence utilisée.
func (r *Rewriter) Baseline() int {
	return r.baseline
}

// Rewrite retourne le texte réécrit pour un offset déjà validé.
func (r *Rewriter) Rewrite(text string, offset int) string {
	return r.Apply(text, offset).Text
}

// RewriteString valide l'offset brut avant de réécrire.
// Retourne une *OffsetError si l'offset n'est pas un entier.
func (r *Rewriter) RewriteString(text, offset string) (string, error) {
	n, err := ParseOffset(offset)
	if err != nil {
		return "", err
	}
	return r.Rewrite(text, n), nil
}

// Apply normalise le texte, réécrit chaque horodatage de gauche à droite
// puis remplace les retours à la ligne.
func (r *Rewriter) Apply(text string, offset int) Result {
	var res Result
	tail := Normalize(text, r.foldWidth)

	var sb strings.Builder
	sb.Grow(len(tail))

	for {
		loc := timestampPattern.FindStringSubmatchIndex(tail)
		if loc == nil {
			break
		}
		// texte avant l'horodatage, inchangé
		sb.WriteString(tail[:loc[0]])

		minutes := digit(tail[loc[2]])
		seconds := digit(tail[loc[4]])*10 + digit(tail[loc[4]+1])

		shifted := r.Shift(model.FromMinSec(minutes, seconds), offset)
		if shifted < 0 {
			res.Clamped++
		}
		sb.WriteString(shifted.MinSec())
		res.Matches++

		// loc[1] > 0 : le reste se réduit à chaque tour
		tail = tail[loc[1]:]
	}
	sb.WriteString(tail)

	res.Text = r.breaks.Replace(sb.String())
	return res
}

// Shift retourne la position décalée, sans la borner : total - (référence - offset).
func (r *Rewriter) Shift(ts model.Seconds, offset int) model.Seconds {
	return ts - model.Seconds(r.baseline-offset)
}

func digit(b byte) int {
	return int(b - '0')
}

var defaultRewriter = New()

// Rewrite réécrit text avec les réglages par défaut.
func Rewrite(text string, offset int) string {
	return defaultRewriter.Rewrite(text, offset)
}

// RewriteString réécrit text avec les réglages par défaut après validation de l'offset.
func RewriteString(text, offset string) (string, error) {
	return defaultRewriter.RewriteString(text, offset)
}
