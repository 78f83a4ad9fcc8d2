// Package server implements the HTTP gateway API.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/solgate/solgate/config"
	"github.com/solgate/solgate/internal/ledger"
	klog "github.com/solgate/solgate/internal/log"
)

// maxBodySize is the maximum allowed request body size (1 MB).
const maxBodySize = 1 << 20

// Server is the HTTP gateway server.
type Server struct {
	addr        string
	ledger      ledger.Client
	server      *http.Server
	router      *mux.Router
	logger      zerolog.Logger
	ln          net.Listener
	allowedNets []*net.IPNet // Empty = allow all.
	corsOrigins []string     // Empty = no CORS headers.
}

// New creates a gateway server. The ledger client is injected so that
// tests can substitute a fake.
func New(cfg config.ServerConfig, lc ledger.Client) *Server {
	s := &Server{
		addr:        fmt.Sprintf("%s:%d", cfg.Addr, cfg.Port),
		ledger:      lc,
		logger:      klog.WithComponent("server"),
		allowedNets: parseAllowedIPs(cfg.AllowedIPs),
		corsOrigins: cfg.CORSOrigins,
	}

	s.router = mux.NewRouter()
	s.routes()

	s.server = &http.Server{
		Handler:     s.withMiddleware(s.router),
		ReadTimeout: 30 * time.Second,
		// Submit-and-confirm flows wait for cluster confirmation.
		WriteTimeout: 2 * time.Minute,
	}

	return s
}

// routes registers all endpoint handlers.
func (s *Server) routes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	s.router.HandleFunc("/keypair", s.handleGenerateKeypair).Methods(http.MethodPost)
	s.router.HandleFunc("/account/create", s.handleCreateAccount).Methods(http.MethodPost)
	s.router.HandleFunc("/account/{pubkey}", s.handleGetAccount).Methods(http.MethodGet)
	s.router.HandleFunc("/airdrop", s.handleAirdrop).Methods(http.MethodPost)

	s.router.HandleFunc("/message/sign", s.handleSignMessage).Methods(http.MethodPost)
	s.router.HandleFunc("/message/verify", s.handleVerifyMessage).Methods(http.MethodPost)

	s.router.HandleFunc("/send/sol", s.handleSendSol).Methods(http.MethodPost)
	s.router.HandleFunc("/send/token", s.handleSendToken).Methods(http.MethodPost)

	s.router.HandleFunc("/token/create", s.handleCreateToken).Methods(http.MethodPost)
	s.router.HandleFunc("/token/mint", s.handleMintToken).Methods(http.MethodPost)

	s.router.HandleFunc("/transfer", s.handleTransfer).Methods(http.MethodPost)
}

// withMiddleware wraps the router with IP filtering, CORS, body limits,
// and request logging.
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// IP filtering.
		if len(s.allowedNets) > 0 {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			ip := net.ParseIP(host)
			if ip == nil || !s.isIPAllowed(ip) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		// CORS headers.
		s.setCORSHeaders(w, r)

		// Handle CORS preflight.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("Request handled")
	})
}

// parseAllowedIPs converts string IP/CIDR entries into net.IPNet.
func parseAllowedIPs(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, entry := range entries {
		_, ipNet, err := net.ParseCIDR(entry)
		if err == nil {
			nets = append(nets, ipNet)
			continue
		}
		// Try as a single IP (add /32 or /128).
		ip := net.ParseIP(entry)
		if ip == nil {
			continue
		}
		bits := 32
		if ip.To4() == nil {
			bits = 128
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets
}

// isIPAllowed checks if the IP is in the allowed networks list.
func (s *Server) isIPAllowed(ip net.IP) bool {
	for _, n := range s.allowedNets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// setCORSHeaders adds CORS headers based on the configured origins.
func (s *Server) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	if len(s.corsOrigins) == 0 {
		return
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}

	allowed := false
	for _, o := range s.corsOrigins {
		if o == "*" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			allowed = true
			break
		}
		if o == origin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			allowed = true
			break
		}
	}

	if allowed {
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	}
}

// Start begins listening and serving in a background goroutine.
// It returns immediately after the listener is bound.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server listen: %w", err)
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("HTTP server error")
		}
	}()

	return nil
}

// Addr returns the listener address (useful when bound to :0).
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// handleHealth is the plain-text liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "Solana Server is Healthy!")
}
