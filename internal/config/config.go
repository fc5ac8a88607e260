// Package config resolves runtime settings from command-line flags,
// environment variables and an optional .env file.
//
// Precedence, highest first: flag, process environment, .env file,
// built-in default.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/logger"
)

// Environment variable names.
const (
	EnvHistoryFile = "GASTRO_HISTORY_FILE"
	EnvCatalog     = "GASTRO_CATALOG"
	EnvLogFile     = "GASTRO_LOG_FILE"
	EnvLogLevel    = "GASTRO_LOG_LEVEL"
	EnvPause       = "GASTRO_PAUSE"
	EnvNoSound     = "GASTRO_NO_SOUND"
	EnvPlain       = "GASTRO_PLAIN"
)

// Config is the resolved runtime configuration.
type Config struct {
	HistoryFile string        // order log appended on checkout
	Catalog     string        // menu YAML; empty uses the built-in menu
	LogFile     string        // "stderr" logs to the console
	LogLevel    logger.Level
	Pause       time.Duration // delay after each menu iteration
	NoSound     bool
	Plain       bool // line console instead of the terminal UI
	EnvFile     string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HistoryFile: "order_history.txt",
		LogFile:     ".gastro-logs/gastro.log",
		LogLevel:    logger.LevelNormal,
		Pause:       100 * time.Millisecond,
		EnvFile:     ".env",
	}
}

// ErrHelp is returned by Load when -h or -help is given. Print Usage and
// exit successfully.
var ErrHelp = flag.ErrHelp

// Usage writes the flag summary to w.
func Usage(w io.Writer) {
	fset, _ := newFlagSet(Default())
	fset.SetOutput(w)
	fmt.Fprintf(w, "Usage of gastro:\n")
	fset.PrintDefaults()
	fmt.Fprintf(w, "\nEvery flag except -env-file can also be set with its GASTRO_* environment variable.\n")
}

type flagValues struct {
	historyFile, catalog, logFile, logLevel, pause *string
	noSound, plain, envFile                         *string
}

func newFlagSet(cfg Config) (*flag.FlagSet, flagValues) {
	fset := flag.NewFlagSet("gastro", flag.ContinueOnError)
	f := flagValues{
		historyFile: fset.String("history-file", "", "order log appended on every checkout (default \""+cfg.HistoryFile+"\")"),
		catalog:     fset.String("catalog", "", "menu YAML file (default: built-in menu)"),
		logFile:     fset.String("log-file", "", "file to write logs to, \"stderr\" for the console (default \""+cfg.LogFile+"\")"),
		logLevel:    fset.String("log-level", "", "off, normal or verbose (default \""+cfg.LogLevel.String()+"\")"),
		pause:       fset.String("pause", "", "delay after each menu iteration (default "+cfg.Pause.String()+")"),
		noSound:     new(string),
		plain:       new(string),
		envFile:     fset.String("env-file", cfg.EnvFile, "dotenv file to read defaults from"),
	}
	fset.Var(boolString{f.noSound}, "no-sound", "disable the order chime")
	fset.Var(boolString{f.plain}, "plain", "use a plain line console instead of the terminal UI")
	return fset, f
}

// Load parses args (without the program name). getenv looks up process
// environment variables; pass os.Getenv in production. A missing .env file
// is not an error.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()

	fset, f := newFlagSet(cfg)
	fset.SetOutput(io.Discard)

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, ErrHelp
		}
		return cfg, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	cfg.EnvFile = *f.envFile

	dotenv, err := godotenv.Read(cfg.EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("%w: reading %s: %w", domain.ErrValidation, cfg.EnvFile, err)
	}

	set := map[string]bool{}
	fset.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	lookup := func(name, env string, flagVal *string) (string, bool) {
		if set[name] {
			return *flagVal, true
		}
		if v := getenv(env); v != "" {
			return v, true
		}
		if v, ok := dotenv[env]; ok && v != "" {
			return v, true
		}
		return "", false
	}

	if v, ok := lookup("history-file", EnvHistoryFile, f.historyFile); ok {
		cfg.HistoryFile = v
	}
	if v, ok := lookup("catalog", EnvCatalog, f.catalog); ok {
		cfg.Catalog = v
	}
	if v, ok := lookup("log-file", EnvLogFile, f.logFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("log-level", EnvLogLevel, f.logLevel); ok {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup("pause", EnvPause, f.pause); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("%w: invalid pause %q", domain.ErrValidation, v)
		}
		cfg.Pause = d
	}
	if v, ok := lookup("no-sound", EnvNoSound, f.noSound); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: invalid no-sound %q", domain.ErrValidation, v)
		}
		cfg.NoSound = b
	}
	if v, ok := lookup("plain", EnvPlain, f.plain); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: invalid plain %q", domain.ErrValidation, v)
		}
		cfg.Plain = b
	}

	if cfg.HistoryFile == "" {
		return cfg, fmt.Errorf("%w: history file cannot be empty", domain.ErrValidation)
	}
	return cfg, nil
}

// boolString is a string flag that accepts a bare -name as "true", so an
// unset flag can still be told apart from -name=false.
type boolString struct{ p *string }

func (b boolString) String() string {
	if b.p == nil {
		return ""
	}
	return *b.p
}

func (b boolString) Set(v string) error {
	*b.p = v
	return nil
}

func (b boolString) IsBoolFlag() bool { return true }
