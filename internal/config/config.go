package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/tlrewriter/internal/assets"
	"github.com/patrickprogramme/tlrewriter/internal/fsutil"
	"github.com/patrickprogramme/tlrewriter/internal/timeline"
	"github.com/patrickprogramme/tlrewriter/pkg/model"
)

const CurrentConfigVersion = 2

// DefaultFileName est le nom du fichier de configuration à côté de l'exécutable.
const DefaultFileName = "tlrewriter.yaml"

var (
	// ErrInvalidConfig regroupe les erreurs de valeurs de configuration.
	ErrInvalidConfig = errors.New("configuration invalide")
)

// struct pour les paramètres de configuration
type Config struct {
	// Réécriture
	BaselineSeconds int    `yaml:"baseline_seconds"`
	DefaultOffset   string `yaml:"default_offset"`
	LineBreak       string `yaml:"line_break"`
	FoldWidth       bool   `yaml:"fold_width"`

	// Entrée / sortie
	InputEncoding string `yaml:"input_encoding"`
	OutputPath    string `yaml:"output_path"`

	// Presse-papier
	CopyToClipboard   bool   `yaml:"copy_to_clipboard"`
	ClipboardFallback string `yaml:"clipboard_fallback"`

	// Logs
	LogLevel string `yaml:"log_level"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Valeurs possibles pour ClipboardFallback
const (
	FallbackOSC52 = "osc52"
	FallbackNone  = "none"
)

// Default retourne la configuration par défaut (fallback si l'asset embarqué est manquant).
func Default() *Config {
	c := &Config{}

	// Réécriture
	c.BaselineSeconds = timeline.DefaultBaseline
	c.DefaultOffset = ""
	c.LineBreak = string(model.LineBreakHTML)
	c.FoldWidth = false

	// Entrée / sortie
	c.InputEncoding = string(model.EncodingUTF8)
	c.OutputPath = ""

	// Presse-papier
	c.CopyToClipboard = true
	c.ClipboardFallback = FallbackOSC52

	c.LogLevel = "info"

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets.
// Les variables d'environnement TLREWRITER_* sont appliquées après le fichier.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if !fsutil.FileExists(path) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, data, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}
	cfg.normalizeConfig()

	return cfg, nil
}

// Parse désérialise data par-dessus la configuration par défaut :
// les champs absents conservent les valeurs par défaut.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	// un fichier sans config_version est considéré comme la première version
	cfg.ConfigVersion = 1

	// le marqueur de saut de ligne peut contenir des antislashs : pas de correction de chemins ici
	if len(bytes.TrimSpace(data)) == 0 {
		cfg.ConfigVersion = CurrentConfigVersion
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalizeConfig()
	return cfg, nil
}

// Path retourne le chemin du fichier chargé (vide si la config n'a pas été lue sur disque).
func (c *Config) Path() string {
	return c.configFilePath
}

// Marshal sérialise la configuration en YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LineBreakMarker retourne la chaîne insérée à la place des retours à la ligne.
func (c *Config) LineBreakMarker() string {
	return model.LineBreak(c.LineBreak).Marker()
}

// Encoding retourne l'encodage d'entrée (UTF-8 si la valeur est inconnue).
func (c *Config) Encoding() model.Encoding {
	enc, err := model.ParseEncoding(c.InputEncoding)
	if err != nil {
		return model.EncodingUTF8
	}
	return enc
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}
	return nil
}

func (c *Config) normalizeConfig() {
	c.DefaultOffset = strings.TrimSpace(c.DefaultOffset)
	c.InputEncoding = strings.TrimSpace(strings.ToLower(c.InputEncoding))
	if c.InputEncoding == "" {
		c.InputEncoding = string(model.EncodingUTF8)
	}

	// les presets sont insensibles à la casse, un marqueur littéral est conservé tel quel
	if lb := model.LineBreak(strings.ToLower(strings.TrimSpace(c.LineBreak))); lb.IsPreset() {
		c.LineBreak = string(lb)
	}
	if c.LineBreak == "" {
		c.LineBreak = string(model.LineBreakHTML)
	}

	c.ClipboardFallback = strings.TrimSpace(strings.ToLower(c.ClipboardFallback))
	if c.ClipboardFallback == "" {
		c.ClipboardFallback = FallbackOSC52
	}

	c.LogLevel = strings.TrimSpace(strings.ToLower(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.OutputPath != "" {
		c.OutputPath = filepath.Clean(strings.TrimSpace(c.OutputPath))
	}
}
