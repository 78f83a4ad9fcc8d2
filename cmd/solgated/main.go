// Solgate gateway daemon.
//
// Usage:
//
//	solgated [--port=3000 --rpc-url=...] Run gateway
//	solgated --help                      Show help
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solgate/solgate/config"
	"github.com/solgate/solgate/internal/ledger"
	"github.com/solgate/solgate/internal/log"
	"github.com/solgate/solgate/internal/server"
)

const version = "0.3.1"

func main() {
	cfg, flags, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.Version {
		fmt.Printf("solgated %s\n", version)
		os.Exit(0)
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := ledger.NewRPCClient(cfg.Ledger)

	srv := server.New(cfg.Server, client)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info().
		Str("version", version).
		Str("addr", srv.Addr()).
		Str("rpc_url", cfg.Ledger.RPCURL).
		Msg("Solana gateway running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := srv.Stop(); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
}
