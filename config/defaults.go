package config

import "time"

// DefaultRPCURL is the ledger endpoint used when none is configured.
const DefaultRPCURL = "https://api.devnet.solana.com"

// Default returns the default gateway configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: "0.0.0.0",
			Port: 3000,
			// Empty allow-list = accept any client IP.
			AllowedIPs:  []string{},
			CORSOrigins: []string{},
		},
		Ledger: LedgerConfig{
			RPCURL:         DefaultRPCURL,
			Timeout:        30 * time.Second,
			ConfirmTimeout: 90 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
			JSON:  false,
		},
	}
}
