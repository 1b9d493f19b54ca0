package domain

// Intent maps a set of trigger patterns to canned responses. Only the
// first response is ever returned.
type Intent struct {
	Patterns  []string `json:"patterns" yaml:"patterns" toml:"patterns"`
	Responses []string `json:"responses" yaml:"responses" toml:"responses"`
}
