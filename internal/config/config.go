package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/patik/inquirer-grouped-checkbox/internal/app"
)

// Config captures runtime configuration for the demo binary.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envManifest = "GROUPED_CHECKBOX_MANIFEST"
	envPrompt   = "GROUPED_CHECKBOX_PROMPT"
	envSearch   = "GROUPED_CHECKBOX_SEARCH"
	envPageSize = "GROUPED_CHECKBOX_PAGE_SIZE"
	envRequired = "GROUPED_CHECKBOX_REQUIRED"
	envFooter   = "GROUPED_CHECKBOX_FOOTER"
	envTrace    = "GROUPED_CHECKBOX_TRACE"
	envLogFile  = "GROUPED_CHECKBOX_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("grouped-checkbox", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	manifest := fs.String("manifest", envOrDefault(env, envManifest, ""), "path to the YAML manifest describing groups and choices")
	prompt := fs.String("prompt", envOrDefault(env, envPrompt, ""), "heading shown above the list (overrides the manifest)")
	search := fs.Bool("search", envOrBool(env, envSearch, true), "enable the live text filter")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, 0), "visible list rows (0 uses the default)")
	required := fs.Bool("required", envOrBool(env, envRequired, false), "refuse submission with zero selections")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable the key-hint footer row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *manifest == "" {
		return Config{}, fmt.Errorf("a manifest path is required (use -manifest or %s)", envManifest)
	}
	if *pageSize < 0 {
		return Config{}, fmt.Errorf("page-size must be >= 0 (got %d)", *pageSize)
	}

	cfg := Config{
		App: app.Config{
			ManifestPath: *manifest,
			Prompt:       *prompt,
			Search:       *search,
			PageSize:     *pageSize,
			Required:     *required,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"manifest": *manifest,
			"prompt":   *prompt,
			"search":   strconv.FormatBool(*search),
			"pageSize": strconv.Itoa(*pageSize),
			"required": strconv.FormatBool(*required),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
