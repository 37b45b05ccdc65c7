// Package config parses the command-line configuration of the console and
// the development server.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/erazemk/bloodbank/internal/client"
)

// Environment variables that override built-in defaults. Flags still win.
const (
	EnvAPIURL = "BLOODBANK_API_URL"
	EnvState  = "BLOODBANK_STATE"
)

// DefaultAPIURL is the backend the console talks to when nothing else is set.
const DefaultAPIURL = "http://localhost:8080/api"

// Console is the configuration of the bloodbank console.
type Console struct {
	APIURL    string
	StatePath string
	Offline   bool
	Timeout   time.Duration
	LogPath   string
	Verbose   bool

	// Command and Args are the subcommand and its arguments.
	Command string
	Args    []string
}

const consoleUsage = `Usage: bloodbank [flags] <command> [args]

Commands:
  login <email>           sign in (password is read from stdin)
  signup <email>          create an account and sign in
  logout                  forget the current session
  whoami                  show the signed-in user
  dashboard               donor and stock counters
  stock                   blood inventory (search, filter, intake, discard)
  donors                  donor registry
  requests                blood requests (list, create)
  admin                   approve or reject requests, adjust stock
  hotspots                water-logging hotspots
  reports                 citizen reports and photos
  analytics               rainfall, severity distribution, predictions

Flags:
  -a, -api <url>          backend base URL (default: $BLOODBANK_API_URL or %s)
  -s, -state <path>       local state file (default: $BLOODBANK_STATE or %s)
  -offline                allow login/signup against local accounts when the backend is unreachable
  -timeout <duration>     per-request timeout (default: %s)
  -l, -log <path>         log file path (default: no file)
  -v                      verbose logging
  -h, -help               show this help and exit
`

// ParseConsole parses the console's global flags from args (without the
// program name). getenv supplies environment overrides. Help and usage
// errors are written to out; -h returns flag.ErrHelp.
func ParseConsole(args []string, getenv func(string) string, out io.Writer) (*Console, error) {
	cfg := &Console{}

	apiDefault := DefaultAPIURL
	if v := getenv(EnvAPIURL); v != "" {
		apiDefault = v
	}
	stateDefault := DefaultStatePath(getenv)
	if v := getenv(EnvState); v != "" {
		stateDefault = v
	}

	fs := flag.NewFlagSet("bloodbank", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.APIURL, "api", apiDefault, "")
	fs.StringVar(&cfg.APIURL, "a", apiDefault, "")

	fs.StringVar(&cfg.StatePath, "state", stateDefault, "")
	fs.StringVar(&cfg.StatePath, "s", stateDefault, "")

	fs.BoolVar(&cfg.Offline, "offline", false, "")
	fs.DurationVar(&cfg.Timeout, "timeout", client.DefaultTimeout, "")

	fs.StringVar(&cfg.LogPath, "log", "", "")
	fs.StringVar(&cfg.LogPath, "l", "", "")

	fs.BoolVar(&cfg.Verbose, "v", false, "")

	fs.Usage = func() {
		fmt.Fprintf(out, consoleUsage, DefaultAPIURL, stateDefault, client.DefaultTimeout)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, errors.New("missing command")
	}
	cfg.Command = fs.Arg(0)
	cfg.Args = fs.Args()[1:]
	return cfg, nil
}

// DefaultStatePath is $XDG_CONFIG_HOME/bloodbank/state.sqlite3, falling back
// to ~/.config and finally to the working directory.
func DefaultStatePath(getenv func(string) string) string {
	dir := getenv("XDG_CONFIG_HOME")
	if dir == "" {
		if home := getenv("HOME"); home != "" {
			dir = filepath.Join(home, ".config")
		}
	}
	if dir == "" {
		return "bloodbank-state.sqlite3"
	}
	return filepath.Join(dir, "bloodbank", "state.sqlite3")
}
