package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

// lamportsPerSOL is the number of lamports in one SOL.
const lamportsPerSOL = 1_000_000_000

// Service-level bounds, not protocol limits.
const (
	// maxTransferLamports caps a single native transfer at 100 SOL.
	maxTransferLamports = 100 * lamportsPerSOL

	// maxTokenAmount guards downstream arithmetic against overflow.
	maxTokenAmount = ^uint64(0) / 2

	// maxMintDecimals is the conventional upper bound for token mints.
	maxMintDecimals = 9

	// maxAirdropSOL is the faucet ceiling per request.
	maxAirdropSOL = 5.0
)

// decodeRequest parses the JSON body into dst. Any syntax error, type
// mismatch, or oversized body maps to a generic 400 rather than leaking
// parser internals.
func decodeRequest(r *http.Request, dst interface{}) *Error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidInput("Malformed JSON request body")
	}
	return nil
}

// requireString extracts a required string field. A field is missing if
// absent, null, or empty after trimming; the trimmed value is NOT
// returned, the original spelling passes through to decoding.
func requireString(s *string) (string, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", false
	}
	return *s, true
}

// requireAmount extracts a required positive integer amount. Zero is
// treated the same as absent.
func requireAmount(a *uint64) (uint64, bool) {
	if a == nil || *a == 0 {
		return 0, false
	}
	return *a, true
}

// solToLamports converts a SOL amount to lamports, truncating.
func solToLamports(sol float64) uint64 {
	return uint64(sol * lamportsPerSOL)
}

// lamportsToSOL converts lamports to a SOL amount.
func lamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / lamportsPerSOL
}
