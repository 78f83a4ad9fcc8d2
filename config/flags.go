package config

import (
	"flag"
	"fmt"
	"os"
)

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Core
	Config string

	// Server
	Addr    string
	Port    int
	Allowed string
	CORS    string

	// Ledger
	RPCURL string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ParseFlags parses command-line flags.
func ParseFlags() *Flags {
	f := &Flags{}
	fs := flag.NewFlagSet("solgate", flag.ContinueOnError)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")

	// Core
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Server
	fs.StringVar(&f.Addr, "addr", "", "HTTP listen address")
	fs.IntVar(&f.Port, "port", 0, "HTTP listen port")
	fs.StringVar(&f.Allowed, "allowed", "", "Allowed client IPs/CIDRs (comma-separated, empty = all)")
	fs.StringVar(&f.CORS, "cors", "", "Allowed CORS origins (comma-separated)")

	// Ledger
	fs.StringVar(&f.RPCURL, "rpc-url", "", "Solana RPC endpoint URL")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	fs.Usage = printUsage

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	f.SetLogJSON = isFlagSet(fs, "log-json")

	return f
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Server
	if f.Addr != "" {
		cfg.Server.Addr = f.Addr
	}
	if f.Port != 0 {
		cfg.Server.Port = f.Port
	}
	if f.Allowed != "" {
		cfg.Server.AllowedIPs = parseStringList(f.Allowed)
	}
	if f.CORS != "" {
		cfg.Server.CORSOrigins = parseStringList(f.CORS)
	}

	// Ledger
	if f.RPCURL != "" {
		cfg.Ledger.RPCURL = f.RPCURL
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// ApplyEnv applies environment overrides to a Config struct.
// PORT and SOLANA_RPC_URL take precedence over flags and file settings
// so the same binary works unmodified on container platforms.
func ApplyEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if url := os.Getenv("SOLANA_RPC_URL"); url != "" {
		cfg.Ledger.RPCURL = url
	}
	return nil
}

// Load builds the final configuration: defaults, then the optional
// config file, then flags, then environment overrides.
func Load() (*Config, *Flags, error) {
	f := ParseFlags()

	if f.Help {
		printUsage()
		os.Exit(0)
	}

	cfg := Default()

	if f.Config != "" {
		values, err := LoadFile(f.Config)
		if err != nil {
			return nil, nil, fmt.Errorf("load config file: %w", err)
		}
		if err := ApplyFileConfig(cfg, values); err != nil {
			return nil, nil, err
		}
	}

	ApplyFlags(cfg, f)

	if err := ApplyEnv(cfg); err != nil {
		return nil, nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, nil, err
	}

	return cfg, f, nil
}

// isFlagSet reports whether a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// printUsage prints command-line usage.
func printUsage() {
	fmt.Fprintf(os.Stderr, `solgated - Solana HTTP gateway

Usage:
  solgated [flags]

Flags:
  --config, -c <path>   Config file path
  --addr <ip>           HTTP listen address (default 0.0.0.0)
  --port <port>         HTTP listen port (default 3000)
  --allowed <list>      Allowed client IPs/CIDRs (empty = all)
  --cors <list>         Allowed CORS origins
  --rpc-url <url>       Solana RPC endpoint URL
  --log-level <level>   Log level (debug, info, warn, error)
  --log-file <path>     Log file path
  --log-json            Output logs as JSON
  --help, -h            Show this help
  --version             Show version

Environment:
  PORT                  Overrides --port
  SOLANA_RPC_URL        Overrides --rpc-url
`)
}
