package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/runmenu/internal/app"
	"github.com/atomicstack/runmenu/internal/config"
	"github.com/atomicstack/runmenu/internal/logging"
	"github.com/atomicstack/runmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if runtimeCfg.List {
		if err := app.List(runtimeCfg.App, os.Stdout); err != nil {
			fail(err)
		}
		return
	}

	command, err := app.Run(runtimeCfg.App)
	if err != nil {
		fail(err)
	}
	if err := app.WriteCommand(os.Stdout, command); err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["logPath"] = logging.Path()
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	// UI names the descriptor the menu is drawn on.
	UI          string          `json:"ui"`
	Detected    *ttyDetected    `json:"detected,omitempty"`
	Descriptors []ttyDescriptor `json:"descriptors"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyDescriptor struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals. The
// detected size comes from the UI descriptor when it is a terminal.
func collectTTYDetails() ttyDetails {
	files := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	details := ttyDetails{Descriptors: make([]ttyDescriptor, 0, len(files))}
	for _, f := range files {
		desc := inspectTTY(f.name, f.file)
		details.Descriptors = append(details.Descriptors, desc)
		if f.file != app.UIOutput {
			continue
		}
		details.UI = f.name
		if desc.IsTerminal && desc.Error == "" {
			details.Detected = &ttyDetected{Source: f.name, Width: desc.Width, Height: desc.Height}
		}
	}
	return details
}

func inspectTTY(name string, f *os.File) ttyDescriptor {
	result := ttyDescriptor{Name: name}
	if f == nil {
		return result
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return result
	}
	result.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Width, result.Height = width, height
	return result
}
