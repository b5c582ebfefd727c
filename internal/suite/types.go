package suite

// TestSuite is a named list of expressions with their expected outcome.
type TestSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case holds either Tokens or Expression, and exactly one of Want or Error.
// Error is a kind name such as "division_by_zero".
type Case struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description,omitempty"`
	Tokens      []string `yaml:"tokens,omitempty"`
	Expression  string   `yaml:"expression,omitempty"`
	Want        *int     `yaml:"want,omitempty"`
	Error       string   `yaml:"error,omitempty"`
}

// ExpectsError reports whether the case expects evaluation to fail.
func (c *Case) ExpectsError() bool {
	return c.Error != ""
}
