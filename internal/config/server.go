package config

import (
	"flag"
	"fmt"
	"io"
)

// Server is the configuration of the development backend.
type Server struct {
	DBPath     string
	Addr       string
	AdminEmail string
	LogPath    string
}

const serverUsage = `Usage: bloodbank-server [flags]

Flags:
  -d, -db <path>          SQLite database path (default: bloodbank.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -u, -user <email>       admin email on first run (default: admin@bloodbank.local)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit
`

// ParseServer parses the server flags from args (without the program name).
func ParseServer(args []string, out io.Writer) (*Server, error) {
	cfg := &Server{}

	fs := flag.NewFlagSet("bloodbank-server", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.DBPath, "db", "bloodbank.sqlite3", "")
	fs.StringVar(&cfg.DBPath, "d", "bloodbank.sqlite3", "")

	fs.StringVar(&cfg.Addr, "addr", ":8080", "")
	fs.StringVar(&cfg.Addr, "a", ":8080", "")

	fs.StringVar(&cfg.AdminEmail, "user", "admin@bloodbank.local", "")
	fs.StringVar(&cfg.AdminEmail, "u", "admin@bloodbank.local", "")

	fs.StringVar(&cfg.LogPath, "log", "", "")
	fs.StringVar(&cfg.LogPath, "l", "", "")

	fs.Usage = func() { fmt.Fprint(out, serverUsage) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return cfg, nil
}
