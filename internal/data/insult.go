package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type insultListFile struct {
	Insults []string `yaml:"insults"`
}

var defaultInsults = []string{
	"Your aim is a rumour",
	"Nice shoes. Did a blind goat pick them?",
	"You smell like a wet ashtray",
	"Go home, your mum called",
	"You walk like a shopping trolley",
	"I've seen scarier toast",
}

// DefaultInsults returns a copy of the built-in insult lines.
func DefaultInsults() []string {
	return append([]string(nil), defaultInsults...)
}

// LoadInsults loads insult lines from a YAML file. Blank lines are dropped.
// An empty path yields the built-in lines.
func LoadInsults(path string) ([]string, error) {
	if path == "" {
		return DefaultInsults(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read insult_list: %w", err)
	}
	var f insultListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse insult_list: %w", err)
	}
	lines := f.Insults[:0]
	for _, l := range f.Insults {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("insult_list %s: no insults", path)
	}
	return lines, nil
}
