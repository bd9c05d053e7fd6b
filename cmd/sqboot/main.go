// sqboot resolves the run configuration for a SonarQube analysis build step.
//
// Usage:
//
//	sqboot begin /key:my.project /d:sonar.host.url=http://localhost:9000
//	sqboot end /d:sonar.login=token
//
// The command line belongs entirely to the analysis grammar (verbs, /d:, /s:,
// /key:, /name:, /version:). The tool itself is configured through the
// environment:
//
//	SQBOOT_FORMAT             auto, terminal, llm or json (default auto)
//	SQBOOT_THEME              default, sonar or mono
//	SQBOOT_SERVER_PROPERTIES  property file standing in for server settings
//	SQBOOT_ENV_FILE           .env file seeding build variables (default .env)
//	NO_COLOR                  disable styling
//
// Output modes (auto-detected):
//
//	terminal  styled summary (default when TTY)
//	llm       terse plain text (default when piped)
//	json      structured JSON for automation
//
// Exit codes: 0 success, 1 validation failure, 2 internal or usage failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"golang.org/x/term"

	"github.com/dkoosis/sqboot/internal/analysisconfig"
	"github.com/dkoosis/sqboot/internal/args"
	"github.com/dkoosis/sqboot/internal/buildenv"
	"github.com/dkoosis/sqboot/internal/logging"
	"github.com/dkoosis/sqboot/internal/serverprops"
	"github.com/dkoosis/sqboot/internal/version"
	"github.com/dkoosis/sqboot/pkg/mapper"
	"github.com/dkoosis/sqboot/pkg/property"
	"github.com/dkoosis/sqboot/pkg/render"
)

const (
	envFormat           = "SQBOOT_FORMAT"
	envTheme            = "SQBOOT_THEME"
	envServerProperties = "SQBOOT_SERVER_PROPERTIES"
	envDotEnvFile       = "SQBOOT_ENV_FILE"

	defaultDotEnvFile = ".env"

	// DefaultPropertiesFileName is loaded from the executable's directory
	// when no /s: argument is given.
	DefaultPropertiesFileName = "SonarQube.Analysis.xml"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	mode, err := resolveFormat(os.Getenv(envFormat), stdout)
	if err != nil {
		fmt.Fprintf(stderr, "sqboot: %v\n", err)
		return 2
	}

	console := logging.NewConsole(stderr, consoleTheme(stderr))
	rec := logging.NewRecorder()
	logger := logging.Tee(console, rec)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, code := bootstrap(ctx, argv, console, rec, logger)
	r.Warnings = len(rec.Warnings)
	r.Errors = rec.Errors

	output := selectRenderer(mode, os.Getenv(envTheme), stdout).Render(mapper.FromRun(r))
	fmt.Fprint(stdout, output)
	return code
}

// bootstrap processes the arguments and, for the begin step, writes the
// analysis config. It returns what is known about the run and the exit code.
func bootstrap(ctx context.Context, argv []string, console *logging.Console, rec *logging.Recorder, logger logging.Logger) (mapper.Run, int) {
	var opts []args.Option
	if p := defaultPropertiesFile(); p != "" {
		opts = append(opts, args.WithDefaultPropertiesFile(p))
	}

	settings, ok := args.TryProcess(argv, logger, opts...)
	if !ok {
		return mapper.Run{FailedStage: "argument processing"}, 1
	}

	// Verbosity is only known once the arguments are processed; replay what
	// the processor logged at debug level so the console gets it too.
	console.SetVerbosity(settings.Verbosity())
	for _, msg := range rec.Debugs {
		console.Debugf("%s", msg)
	}
	logger.Debugf("%s", version.String())
	logger.Debugf("phase %s, %d child argument(s)", settings.Phase(), len(settings.ChildArgs()))

	r := mapper.Run{
		Phase:          settings.Phase().String(),
		HostURL:        settings.URL(),
		ProjectKey:     settings.ProjectKey(),
		ProjectName:    settings.ProjectName(),
		ProjectVersion: settings.ProjectVersion(),
		Verbosity:      settings.Verbosity().String(),
		ChildArgs:      len(settings.ChildArgs()),
		SettingsFile:   settings.PropertiesFile(),
		File:           settings.FileProperties(),
		CommandLine:    settings.LocalProperties(),
	}

	if settings.Phase() != args.PreProcessing {
		return r, 0
	}

	env, code := buildEnvironment(logger)
	if code != 0 {
		r.FailedStage = "build environment"
		return r, code
	}

	server, err := serverProvider().Properties(ctx)
	if err != nil {
		logger.Errorf("Failed to read server properties: %v", err)
		r.FailedStage = "server properties"
		return r, 1
	}
	r.Server = sortedList(server)

	cfg, err := analysisconfig.Generate(settings, env, server, logger)
	if err != nil {
		logger.Errorf("Failed to generate the analysis config: %v", err)
		r.FailedStage = "config generation"
		return r, 2
	}
	r.ConfigPath = env.AnalysisConfigPath()
	logger.Debugf("analysis config has %d server and %d local setting(s)", len(cfg.ServerSettings), len(cfg.LocalSettings))
	return r, 0
}

func buildEnvironment(logger logging.Logger) (*buildenv.Settings, int) {
	path := os.Getenv(envDotEnvFile)
	if path == "" {
		path = defaultDotEnvFile
	}
	lookup, err := buildenv.LoadDotEnv(path)
	if err != nil {
		logger.Errorf("%v", err)
		return nil, 2
	}

	wd, err := os.Getwd()
	if err != nil {
		logger.Errorf("Cannot determine the working directory: %v", err)
		return nil, 2
	}

	env, err := buildenv.FromEnvironment(lookup, wd)
	if err != nil {
		logger.Errorf("%v", err)
		return nil, 1
	}
	logger.Debugf("%s build rooted at %s", env.Kind, env.BuildDirectory)
	return env, 0
}

// sortedList orders server properties by key, matching the analysis config.
func sortedList(m map[string]string) property.List {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	l := make(property.List, 0, len(keys))
	for _, k := range keys {
		l.Add(k, m[k])
	}
	return l
}

func serverProvider() serverprops.Provider {
	if path := os.Getenv(envServerProperties); path != "" {
		return serverprops.File{Path: path}
	}
	return serverprops.Static{}
}

// defaultPropertiesFile returns the settings file next to the executable,
// or "" if the executable cannot be located.
func defaultPropertiesFile() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultPropertiesFileName)
}

var errUnknownFormat = errors.New("unknown format")

func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case "", "auto":
		// Auto-detect: TTY = terminal, piped = llm
		if isTTYWriter(w) {
			return render.ModeTerminal, nil
		}
		return render.ModeLLM, nil
	case render.ModeTerminal, render.ModeLLM, render.ModeJSON:
		return format, nil
	default:
		return "", fmt.Errorf("%w %q in %s (expected auto, terminal, llm, json)", errUnknownFormat, format, envFormat)
	}
}

func selectRenderer(mode, themeName string, w io.Writer) render.Renderer {
	switch mode {
	case render.ModeJSON:
		return render.NewJSON()
	case render.ModeLLM:
		return render.NewLLM()
	default:
		theme := render.ThemeByName(themeName)
		// Honor NO_COLOR
		if os.Getenv("NO_COLOR") != "" {
			theme = render.MonoTheme()
		}
		return render.NewTerminal(theme, termWidth(w))
	}
}

func consoleTheme(w io.Writer) render.Theme {
	if os.Getenv("NO_COLOR") != "" || !isTTYWriter(w) {
		return render.MonoTheme()
	}
	return render.ThemeByName(os.Getenv(envTheme))
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
