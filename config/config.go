// Package config handles application configuration.
//
// Configuration is layered: built-in defaults, then an optional
// key = value .conf file, then command-line flags, then environment
// overrides (PORT, SOLANA_RPC_URL) for container deployments.
package config

import (
	"time"
)

// Config holds runtime configuration for the gateway.
type Config struct {
	// HTTP server
	Server ServerConfig

	// Ledger RPC client
	Ledger LedgerConfig

	// Logging
	Log LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr        string
	Port        int
	AllowedIPs  []string // Empty = allow all.
	CORSOrigins []string // Empty = no CORS headers.
}

// LedgerConfig holds Solana RPC client settings.
type LedgerConfig struct {
	RPCURL         string
	Timeout        time.Duration
	ConfirmTimeout time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
	JSON  bool
}
