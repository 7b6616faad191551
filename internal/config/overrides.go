package config

// Overrides contient les valeurs passées en ligne de commande ; nil = non fourni.
type Overrides struct {
	BaselineSeconds *int
	LineBreak       *string
	FoldWidth       *bool
	InputEncoding   *string
	OutputPath      *string
	CopyToClipboard *bool
	LogLevel        *string
}

// Apply reporte les valeurs fournies par-dessus la configuration puis la normalise.
func (c *Config) Apply(o Overrides) {
	if o.BaselineSeconds != nil {
		c.BaselineSeconds = *o.BaselineSeconds
	}
	if o.LineBreak != nil {
		c.LineBreak = *o.LineBreak
	}
	if o.FoldWidth != nil {
		c.FoldWidth = *o.FoldWidth
	}
	if o.InputEncoding != nil {
		c.InputEncoding = *o.InputEncoding
	}
	if o.OutputPath != nil {
		c.OutputPath = *o.OutputPath
	}
	if o.CopyToClipboard != nil {
		c.CopyToClipboard = *o.CopyToClipboard
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	c.normalizeConfig()
}
