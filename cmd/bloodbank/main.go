package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/erazemk/bloodbank/internal/client"
	"github.com/erazemk/bloodbank/internal/clock"
	"github.com/erazemk/bloodbank/internal/config"
	"github.com/erazemk/bloodbank/internal/db"
	"github.com/erazemk/bloodbank/internal/logging"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/session"
	"github.com/erazemk/bloodbank/internal/views"
)

// app is one console invocation.
type app struct {
	client   *client.Client
	sessions *session.Manager
	clock    clock.Clock

	in  *bufio.Reader
	out io.Writer
	err io.Writer
}

// actionError carries the user-facing action name to the toast.
type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string { return e.action + ": " + e.err.Error() }
func (e *actionError) Unwrap() error { return e.err }

func fail(action string, err error) error {
	if err == nil {
		return nil
	}
	return &actionError{action: action, err: err}
}

type command func(a *app, ctx context.Context, args []string) error

var commands = map[string]command{
	"login":     cmdLogin,
	"signup":    cmdSignup,
	"logout":    cmdLogout,
	"whoami":    cmdWhoami,
	"password":  cmdPassword,
	"dashboard": cmdDashboard,
	"stock":     cmdStock,
	"donors":    cmdDonors,
	"requests":  cmdRequests,
	"admin":     cmdAdmin,
	"hotspots":  cmdHotspots,
	"reports":   cmdReports,
	"analytics": cmdAnalytics,
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.ParseConsole(args, getenv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	cmd, ok := commands[cfg.Command]
	if !ok {
		fmt.Fprintf(stderr, "unknown command: %s\n", cfg.Command)
		return 2
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	// Logs go to stderr so tables on stdout stay clean.
	closeLog, err := logging.Setup(stderr, cfg.LogPath, level)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx := context.Background()

	a, closeState, err := newApp(ctx, cfg, stdin, stdout, stderr)
	if err != nil {
		slog.Error("failed to open local state", "path", cfg.StatePath, "error", err)
		return 1
	}
	defer closeState()

	if err := cmd(a, ctx, cfg.Args); err != nil {
		var ae *actionError
		if errors.As(err, &ae) {
			slog.Debug("command failed", "command", cfg.Command, "error", err)
			fmt.Fprintln(stderr, views.Toast(ae.action, ae.err))
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

// newApp opens the state file and wires the session store, client and
// session manager together.
func newApp(ctx context.Context, cfg *config.Console, stdin io.Reader, stdout, stderr io.Writer) (*app, func(), error) {
	if dir := filepath.Dir(cfg.StatePath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, nil, fmt.Errorf("creating state directory: %w", err)
		}
	}
	state, err := db.Open(cfg.StatePath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(state); err != nil {
		state.Close()
		return nil, nil, err
	}

	clk := clock.NewSystem()
	store, err := session.Open(ctx, state, clk)
	if err != nil {
		state.Close()
		return nil, nil, err
	}

	c := client.New(cfg.APIURL, store,
		client.WithTimeout(cfg.Timeout),
		client.WithUserAgent("bloodbank-console"),
		client.WithUnauthorizedHandler(func() {
			fmt.Fprintln(stderr, "Session expired. Sign in again with: bloodbank login <email>")
		}),
	)

	var opts []session.ManagerOption
	if cfg.Offline {
		opts = append(opts, session.WithOfflineFallback())
	}

	a := &app{
		client:   c,
		sessions: session.NewManager(store, c, opts...),
		clock:    clk,
		in:       bufio.NewReader(stdin),
		out:      stdout,
		err:      stderr,
	}
	return a, func() { state.Close() }, nil
}

// newFlags returns a flag set for a subcommand. Errors are reported on the
// console's error stream.
func (a *app) newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.err)
	return fs
}

// requireSession fails early when nobody is signed in.
func (a *app) requireSession() error {
	if a.sessions.Store().Current() == nil {
		return errors.New("not signed in, run: bloodbank login <email>")
	}
	return nil
}

// readLine reads one line of input without its line ending.
func (a *app) readLine(prompt string) (string, error) {
	fmt.Fprint(a.err, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, &model.ValidationError{Field: "id", Message: fmt.Sprintf("invalid id %q", s)}
	}
	return id, nil
}

// subcommand splits args into an action name and the rest. An empty or
// flag-looking first argument selects def.
func subcommand(args []string, def string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return def, args
	}
	return args[0], args[1:]
}

// idArg parses the leading id argument of a subcommand.
func idArg(args []string, usage string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("usage: %s", usage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, nil, err
	}
	return id, args[1:], nil
}
