// CLAUDE:SUMMARY YAML lexicon file loading: one LexiconSpec document per file, compiled on load.
package reldate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLexiconFile reads a lexicon spec from a YAML file and compiles it.
// The file holds one LexiconSpec document; it goes through the same
// compilation — and the same authoring checks — as the built-in lexicons,
// so a file that loads is a file that matches deterministically.
func LoadLexiconFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	var spec LexiconSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	lx, err := Compile(&spec)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lx, nil
}
