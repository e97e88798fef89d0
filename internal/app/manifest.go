package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	checkbox "github.com/patik/inquirer-grouped-checkbox"
)

// Manifest is the YAML document the demo binary consumes.
type Manifest struct {
	Prompt string          `yaml:"prompt"`
	Items  []ManifestGroup `yaml:"groups"`
}

// ManifestGroup mirrors one group definition.
type ManifestGroup struct {
	Key     string           `yaml:"key"`
	Label   string           `yaml:"label"`
	Icon    string           `yaml:"icon"`
	Choices []ManifestChoice `yaml:"choices"`
}

// ManifestChoice mirrors one choice definition.
type ManifestChoice struct {
	Value       string `yaml:"value"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Short       string `yaml:"short"`
	Disabled    bool   `yaml:"disabled"`
	Reason      string `yaml:"reason"`
	Checked     bool   `yaml:"checked"`
	Separator   bool   `yaml:"separator"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(raw)
}

// ParseManifest decodes manifest YAML and checks its basic shape.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if len(m.Items) == 0 {
		return nil, fmt.Errorf("manifest declares no groups")
	}
	for i, g := range m.Items {
		if g.Key == "" {
			return nil, fmt.Errorf("group %d has no key", i)
		}
	}
	return &m, nil
}

// Groups converts the manifest into prompt input.
func (m *Manifest) Groups() []checkbox.Group[string] {
	groups := make([]checkbox.Group[string], 0, len(m.Items))
	for _, g := range m.Items {
		label := g.Label
		if label == "" {
			label = g.Key
		}
		choices := make([]checkbox.Choice[string], 0, len(g.Choices))
		for _, c := range g.Choices {
			choices = append(choices, checkbox.Choice[string]{
				Value:       c.Value,
				Name:        c.Name,
				Description: c.Description,
				Short:       c.Short,
				Disabled:    c.Disabled,
				Reason:      c.Reason,
				Checked:     c.Checked,
				Separator:   c.Separator,
			})
		}
		groups = append(groups, checkbox.Group[string]{
			Key:     g.Key,
			Label:   label,
			Icon:    g.Icon,
			Choices: choices,
		})
	}
	return groups
}
