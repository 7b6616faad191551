package logging

// Noms de champs pour les logs structurés.
const (
	FieldError     = "error"
	FieldPath      = "path"
	FieldInput     = "input"
	FieldOutput    = "output"
	FieldOffset    = "offset"
	FieldBaseline  = "baseline"
	FieldMatches   = "matches"
	FieldClamped   = "clamped"
	FieldMechanism = "mechanism"
	FieldEncoding  = "encoding"
	FieldVersion   = "version"
	FieldCommit    = "commit"
	FieldBuilt     = "built"
	FieldStatus    = "status"
)
