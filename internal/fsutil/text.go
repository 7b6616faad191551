package fsutil

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/transform"

	"github.com/patrickprogramme/tlrewriter/pkg/model"
)

// DecodeText lit r entièrement et le convertit en UTF-8 depuis enc.
// Pour l'UTF-8, un BOM éventuel est retiré.
func DecodeText(r io.Reader, enc model.Encoding) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, enc.Decoder().NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("décodage %s: %w", enc, err)
	}
	return string(b), nil
}

// ReadTextFile lit un fichier de TL encodé en enc.
func ReadTextFile(path string, enc model.Encoding) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ouverture %s: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeText(f, enc)
	if err != nil {
		return "", fmt.Errorf("lecture %s: %w", path, err)
	}
	return s, nil
}
