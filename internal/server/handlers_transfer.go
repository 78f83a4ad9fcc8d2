package server

import (
	"fmt"
	"net/http"

	"github.com/solgate/solgate/pkg/instruction"
	"github.com/solgate/solgate/pkg/keys"
)

// handleTransfer is the funded transfer flow: the only stateful
// operation. It checks the live balance, fetches a recent blockhash,
// builds and signs a transfer transaction, then submits and waits for
// confirmation.
func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if e := decodeRequest(r, &req); e != nil {
		writeLegacyError(w, e)
		return
	}

	fromPrivateKey, okFrom := requireString(req.FromPrivateKey)
	toPublicKey, okTo := requireString(req.ToPublicKey)
	if !okFrom || !okTo || req.AmountSOL == nil {
		writeLegacyError(w, errMissingFields())
		return
	}
	amountSOL := *req.AmountSOL

	toPub, err := keys.DecodePubkey(toPublicKey)
	if err != nil {
		writeLegacyError(w, errInvalidInput("Invalid recipient public key format"))
		return
	}

	fromKey, err := keys.DecodeKeypairBase64(fromPrivateKey)
	if err != nil {
		writeLegacyError(w, errInvalidInput("Invalid private key format"))
		return
	}

	if amountSOL <= 0 {
		writeLegacyError(w, errInvalidInput("Amount must be greater than 0"))
		return
	}

	amountLamports := solToLamports(amountSOL)
	fromPub := fromKey.PublicKey()

	balance, err := s.ledger.GetBalance(r.Context(), fromPub)
	if err != nil {
		writeLegacyError(w, errClientError(err))
		return
	}
	if balance < amountLamports {
		writeLegacyError(w, errInsufficientFunds())
		return
	}

	blockhash, err := s.ledger.GetLatestBlockhash(r.Context())
	if err != nil {
		writeLegacyError(w, errClientError(err))
		return
	}

	tx, err := instruction.SignedNativeTransferTx(fromKey, toPub, amountLamports, blockhash)
	if err != nil {
		writeLegacyError(w, &Error{Kind: KindInternal, Detail: err.Error()})
		return
	}

	sig, err := s.ledger.SendAndConfirmTransaction(r.Context(), tx)
	if err != nil {
		writeLegacyError(w, errTransactionFailed(err.Error()))
		return
	}

	writeBare(w, transferResponse{
		TransactionSignature: sig.String(),
		FromPublicKey:        keys.EncodePubkey(fromPub),
		ToPublicKey:          toPublicKey,
		AmountSOL:            amountSOL,
		AmountLamports:       amountLamports,
		Message:              fmt.Sprintf("Successfully transferred %v SOL", amountSOL),
	})
}
