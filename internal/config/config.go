package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/runmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	List    bool
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile   = "RUNMENU_FILE"
	envRootMenu   = "RUNMENU_ROOT"
	envWidth      = "RUNMENU_WIDTH"
	envHeight     = "RUNMENU_HEIGHT"
	envShowFooter = "RUNMENU_FOOTER"
	envTrace      = "RUNMENU_TRACE"
	envLogFile    = "RUNMENU_LOG_FILE"

	defaultPercent = 60
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("runmenu", flag.ContinueOnError)
	usage := new(strings.Builder)
	fs.SetOutput(usage)

	menuFile := fs.String("menu", envOrDefault(env, envMenuFile, ""), "path to a YAML menu definition (built-in menu when empty)")
	root := fs.String("root", envOrDefault(env, envRootMenu, ""), "start inside the named sub-menu")
	width := fs.Int("width", envOrInt(env, envWidth, defaultPercent), "popup width as a percentage of the terminal")
	height := fs.Int("height", envOrInt(env, envHeight, defaultPercent), "popup height as a percentage of the terminal")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show key help below the list")
	list := fs.Bool("list", false, "print the menu as a table and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, fmt.Errorf("%w\n%s", err, usage.String())
		}
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			MenuFile:      strings.TrimSpace(*menuFile),
			RootMenu:      *root,
			WidthPercent:  *width,
			HeightPercent: *height,
			ShowFooter:    *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		List: *list,
		Flags: map[string]string{
			"menu":    *menuFile,
			"root":    *root,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"list":    strconv.FormatBool(*list),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
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
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
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
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks value ranges and that a configured menu file exists.
func Validate(cfg Config) error {
	if p := cfg.App.WidthPercent; p < 1 || p > 100 {
		return fmt.Errorf("width must be between 1 and 100 (got %d)", p)
	}
	if p := cfg.App.HeightPercent; p < 1 || p > 100 {
		return fmt.Errorf("height must be between 1 and 100 (got %d)", p)
	}
	if cfg.App.MenuFile != "" {
		info, err := os.Stat(cfg.App.MenuFile)
		if err != nil {
			return fmt.Errorf("menu file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("menu file %s is a directory", cfg.App.MenuFile)
		}
	}
	return nil
}
