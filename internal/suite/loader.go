package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/calc/internal/apperr"
	"gopkg.in/yaml.v3"
)

var knownKinds = map[string]struct{}{}

func init() {
	for k := apperr.EmptyInput; k <= apperr.MalformedExpression; k++ {
		knownKinds[k.String()] = struct{}{}
	}
	for k := apperr.Overflow; k <= apperr.ModulusByZero; k++ {
		knownKinds[k.String()] = struct{}{}
	}
}

func LoadFromFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*TestSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Tokens != nil && c.Expression != "" {
			return nil, fmt.Errorf("case %q sets both tokens and expression", c.ID)
		}
		if (c.Want == nil) == (c.Error == "") {
			return nil, fmt.Errorf("case %q must set exactly one of want or error", c.ID)
		}
		if c.Error != "" {
			if _, ok := knownKinds[c.Error]; !ok {
				return nil, fmt.Errorf("case %q expects unknown error kind %q", c.ID, c.Error)
			}
		}
	}

	return &s, nil
}
