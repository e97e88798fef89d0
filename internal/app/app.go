package app

import (
	"errors"
	"fmt"
	"os"

	checkbox "github.com/patik/inquirer-grouped-checkbox"
)

// Config describes user-provided options for the demo binary.
type Config struct {
	ManifestPath string
	Prompt       string
	Search       bool
	PageSize     int
	Required     bool
	ShowFooter   bool
}

// Run loads the manifest, executes the prompt, and prints the selection
// mapping to stdout.
func Run(cfg Config) error {
	manifest, err := LoadManifest(cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = manifest.Prompt
	}

	results, err := checkbox.Run(checkbox.Config[string]{
		Prompt:     prompt,
		Groups:     manifest.Groups(),
		Search:     cfg.Search,
		PageSize:   cfg.PageSize,
		Required:   cfg.Required,
		ShowFooter: cfg.ShowFooter,
	})
	if errors.Is(err, checkbox.ErrAbandoned) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return nil
	}
	if err != nil {
		return err
	}

	for _, g := range manifest.Items {
		fmt.Printf("%s:", g.Key)
		for _, v := range results[g.Key] {
			fmt.Printf(" %s", v)
		}
		fmt.Println()
	}
	return nil
}
