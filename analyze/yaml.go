package analyze

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadRules parses a rule-table set from YAML. Sections left empty in
// the document fall back to the built-in defaults, so a file may
// override just the intents, or just the sentiment lexicon, without
// restating everything else.
func ReadRules(r io.Reader) (Rules, error) {
	rules := Rules{}
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&rules); err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	defaults := DefaultRules()
	if rules.Intents == nil {
		rules.Intents = defaults.Intents
	}
	if rules.Entities == nil {
		rules.Entities = defaults.Entities
	}
	if len(rules.Sentiment.Positive) == 0 && len(rules.Sentiment.Negative) == 0 {
		rules.Sentiment = defaults.Sentiment
	}
	if rules.Languages == nil {
		rules.Languages = defaults.Languages
	}
	if rules.DefaultLanguage == "" {
		rules.DefaultLanguage = defaults.DefaultLanguage
	}

	return rules, nil
}

// LoadRulesFile reads a YAML rule file from disk.
func LoadRulesFile(path string) (Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, err
	}
	defer f.Close()
	return ReadRules(f)
}
