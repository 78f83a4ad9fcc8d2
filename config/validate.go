package config

import (
	"fmt"
	"net/url"
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in range [1, 65535]")
	}
	if cfg.Ledger.RPCURL == "" {
		return fmt.Errorf("ledger.rpc_url is required")
	}
	u, err := url.Parse(cfg.Ledger.RPCURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("ledger.rpc_url must be an http(s) URL")
	}
	if cfg.Ledger.Timeout <= 0 {
		return fmt.Errorf("ledger.timeout must be positive")
	}
	if cfg.Ledger.ConfirmTimeout <= 0 {
		return fmt.Errorf("ledger.confirm_timeout must be positive")
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	return nil
}
