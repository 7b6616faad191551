package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Seconds est un alias explicite pour représenter une position de la TL en secondes.
type Seconds int

// MinSec formate Seconds en "M:SS" (minutes sans zéro, secondes sur 2 chiffres).
// Exemple : 135 -> "2:15", 0 -> "0:00". Les valeurs négatives sont ramenées à 0.
func (s Seconds) MinSec() string {
	total := s.Clamp()
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Clamp ramène une valeur négative au début de la TL.
func (s Seconds) Clamp() Seconds {
	if s < 0 {
		return 0
	}
	return s
}

// FromMinSec construit Seconds à partir des composants minutes et secondes.
func FromMinSec(minutes, seconds int) Seconds {
	return Seconds(minutes*60 + seconds)
}

// LineBreak décrit le marqueur qui remplace les retours à la ligne en sortie.
type LineBreak string

const (
	LineBreakHTML LineBreak = "html"
	LineBreakLF   LineBreak = "lf"
	LineBreakCRLF LineBreak = "crlf"
)

// Marker retourne la chaîne réellement insérée pour ce LineBreak.
// Une valeur qui n'est pas un preset est utilisée telle quelle.
func (l LineBreak) Marker() string {
	switch l {
	case LineBreakHTML, "":
		return "<br>"
	case LineBreakLF:
		return "\n"
	case LineBreakCRLF:
		return "\r\n"
	default:
		return string(l)
	}
}

func (l LineBreak) IsPreset() bool {
	return l == LineBreakHTML || l == LineBreakLF || l == LineBreakCRLF
}

func (l LineBreak) String() string {
	return string(l)
}

// Encoding identifie l'encodage du texte d'entrée.
type Encoding string

const (
	EncodingUTF8     Encoding = "utf-8"
	EncodingShiftJIS Encoding = "shift_jis"
	EncodingEUCJP    Encoding = "euc-jp"
)

// du nom en chaine à la constante Encoding, return une erreur si encodage inconnu
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return EncodingShiftJIS, nil
	case "euc-jp", "eucjp":
		return EncodingEUCJP, nil
	default:
		return "", fmt.Errorf("encodage inconnu: %s", s)
	}
}

// Decoder retourne l'encodage x/text correspondant.
// L'UTF-8 retire un éventuel BOM en tête.
func (e Encoding) Decoder() encoding.Encoding {
	switch e {
	case EncodingShiftJIS:
		return japanese.ShiftJIS
	case EncodingEUCJP:
		return japanese.EUCJP
	default:
		return unicode.UTF8BOM
	}
}

func (e Encoding) String() string {
	return string(e)
}
