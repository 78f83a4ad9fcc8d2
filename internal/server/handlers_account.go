package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/solgate/solgate/pkg/keys"
)

// handleGetAccount looks up live account state for a base58 public key.
func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	pubkeyStr := mux.Vars(r)["pubkey"]

	pub, err := keys.DecodePubkey(pubkeyStr)
	if err != nil {
		writeLegacyError(w, errInvalidInput("Invalid public key format"))
		return
	}

	account, err := s.ledger.GetAccount(r.Context(), pub)
	if err != nil {
		writeLegacyError(w, errClientError(err))
		return
	}

	writeBare(w, accountInfoResponse{
		PublicKey:       keys.EncodePubkey(pub),
		BalanceSOL:      lamportsToSOL(account.Lamports),
		BalanceLamports: account.Lamports,
		Executable:      account.Executable,
		Owner:           keys.EncodePubkey(account.Owner),
		RentEpoch:       account.RentEpoch,
	})
}

// handleAirdrop requests faucet funds and waits for confirmation.
// Validation runs presence, then format, then range, before any
// ledger call is made.
func (s *Server) handleAirdrop(w http.ResponseWriter, r *http.Request) {
	var req airdropRequest
	if e := decodeRequest(r, &req); e != nil {
		writeLegacyError(w, e)
		return
	}

	publicKey, ok := requireString(req.PublicKey)
	if !ok || req.AmountSOL == nil {
		writeLegacyError(w, errMissingFields())
		return
	}
	amountSOL := *req.AmountSOL

	pub, err := keys.DecodePubkey(publicKey)
	if err != nil {
		writeLegacyError(w, errInvalidInput("Invalid public key format"))
		return
	}

	if amountSOL <= 0 || amountSOL > maxAirdropSOL {
		writeLegacyError(w, errInvalidInput("Amount must be between 0.1 and 5.0 SOL for devnet"))
		return
	}

	amountLamports := solToLamports(amountSOL)

	sig, err := s.ledger.RequestAirdrop(r.Context(), pub, amountLamports)
	if err != nil {
		writeLegacyError(w, errClientError(err))
		return
	}

	confirmed, err := s.ledger.ConfirmTransaction(r.Context(), sig)
	if err != nil {
		writeLegacyError(w, errClientError(err))
		return
	}
	if !confirmed {
		writeLegacyError(w, errTransactionFailed("Airdrop transaction failed to confirm"))
		return
	}

	writeBare(w, airdropResponse{
		TransactionSignature: sig.String(),
		PublicKey:            publicKey,
		AmountSOL:            amountSOL,
		AmountLamports:       amountLamports,
		Message:              fmt.Sprintf("Successfully airdropped %v SOL to account", amountSOL),
	})
}
