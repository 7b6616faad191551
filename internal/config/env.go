package config

import (
	"fmt"
	"os"
	"strconv"
)

// envVarPrefix est le préfixe de toutes les variables d'environnement.
const envVarPrefix = "TLREWRITER_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

type envMapping struct {
	typ   envFieldType
	apply func(c *Config, s string, b bool, n int)
}

// envMappings associe le suffixe de la variable au champ de Config.
var envMappings = map[string]envMapping{
	"OFFSET":     {typ: envTypeString, apply: func(c *Config, s string, _ bool, _ int) { c.DefaultOffset = s }},
	"BASELINE":   {typ: envTypeInt, apply: func(c *Config, _ string, _ bool, n int) { c.BaselineSeconds = n }},
	"LINE_BREAK": {typ: envTypeString, apply: func(c *Config, s string, _ bool, _ int) { c.LineBreak = s }},
	"FOLD_WIDTH": {typ: envTypeBool, apply: func(c *Config, _ string, b bool, _ int) { c.FoldWidth = b }},
	"ENCODING":   {typ: envTypeString, apply: func(c *Config, s string, _ bool, _ int) { c.InputEncoding = s }},
	"COPY":       {typ: envTypeBool, apply: func(c *Config, _ string, b bool, _ int) { c.CopyToClipboard = b }},
	"LOG_LEVEL":  {typ: envTypeString, apply: func(c *Config, s string, _ bool, _ int) { c.LogLevel = s }},
}

// LoadFromEnv applique les variables TLREWRITER_* (ex: TLREWRITER_OFFSET=20) à cfg.
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}
	for suffix, mapping := range envMappings {
		envVar := envVarPrefix + suffix
		value, ok := os.LookupEnv(envVar)
		if !ok || value == "" {
			continue
		}
		switch mapping.typ {
		case envTypeString:
			mapping.apply(cfg, value, false, 0)
		case envTypeBool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%w: booléen invalide pour %s : %q", ErrInvalidConfig, envVar, value)
			}
			mapping.apply(cfg, "", b, 0)
		case envTypeInt:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%w: entier invalide pour %s : %q", ErrInvalidConfig, envVar, value)
			}
			mapping.apply(cfg, "", false, n)
		}
	}
	return nil
}
