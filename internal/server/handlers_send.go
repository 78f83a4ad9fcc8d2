package server

import (
	"encoding/base64"
	"net/http"

	"github.com/solgate/solgate/pkg/instruction"
	"github.com/solgate/solgate/pkg/keys"
)

// handleSendSol builds an unsigned native transfer instruction.
func (s *Server) handleSendSol(w http.ResponseWriter, r *http.Request) {
	var req sendSolRequest
	if e := decodeRequest(r, &req); e != nil {
		writeError(w, e)
		return
	}

	from, okFrom := requireString(req.From)
	to, okTo := requireString(req.To)
	lamports, okAmount := requireAmount(req.Lamports)
	if !okFrom || !okTo || !okAmount {
		writeError(w, errMissingFields())
		return
	}

	fromPub, err := keys.DecodePubkey(from)
	if err != nil {
		writeError(w, errInvalidInput("Invalid sender address"))
		return
	}

	toPub, err := keys.DecodePubkey(to)
	if err != nil {
		writeError(w, errInvalidInput("Invalid recipient address"))
		return
	}

	if lamports > maxTransferLamports {
		writeError(w, errInvalidInput("Amount exceeds maximum limit (100 SOL)"))
		return
	}

	if fromPub.Equals(toPub) {
		writeError(w, errInvalidInput("Sender and recipient cannot be the same"))
		return
	}

	s.logger.Info().
		Uint64("lamports", lamports).
		Str("from", from).
		Str("to", to).
		Msg("Creating SOL transfer instruction")

	in, err := instruction.NativeTransfer(fromPub, toPub, lamports)
	if err != nil {
		writeError(w, &Error{Kind: KindInternal, Detail: err.Error()})
		return
	}

	accounts := make([]string, len(in.Accounts))
	for i, acc := range in.Accounts {
		accounts[i] = keys.EncodePubkey(acc.Pubkey)
	}

	writeData(w, sendSolResponse{
		ProgramID:       keys.EncodePubkey(in.ProgramID),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(in.Data),
	})
}

// handleSendToken builds an unsigned token transfer instruction between
// the associated token accounts of owner and destination.
func (s *Server) handleSendToken(w http.ResponseWriter, r *http.Request) {
	var req sendTokenRequest
	if e := decodeRequest(r, &req); e != nil {
		writeError(w, e)
		return
	}

	destination, okDest := requireString(req.Destination)
	mint, okMint := requireString(req.Mint)
	owner, okOwner := requireString(req.Owner)
	amount, okAmount := requireAmount(req.Amount)
	if !okDest || !okMint || !okOwner || !okAmount {
		writeError(w, errMissingFields())
		return
	}

	destPub, err := keys.DecodePubkey(destination)
	if err != nil {
		writeError(w, errInvalidInput("Invalid destination wallet address"))
		return
	}

	mintPub, err := keys.DecodePubkey(mint)
	if err != nil {
		writeError(w, errInvalidInput("Invalid mint address"))
		return
	}

	ownerPub, err := keys.DecodePubkey(owner)
	if err != nil {
		writeError(w, errInvalidInput("Invalid owner address"))
		return
	}

	if amount > maxTokenAmount {
		writeError(w, errInvalidInput("Token amount is too large"))
		return
	}

	if ownerPub.Equals(destPub) {
		writeError(w, errInvalidInput("Token owner and destination cannot be the same"))
		return
	}

	s.logger.Info().
		Uint64("amount", amount).
		Str("mint", mint).
		Str("owner", owner).
		Str("destination", destination).
		Msg("Creating token transfer instruction")

	in, err := instruction.TokenTransfer(ownerPub, destPub, mintPub, amount)
	if err != nil {
		writeError(w, errTokenError(err.Error()))
		return
	}

	accounts := make([]tokenAccountMeta, len(in.Accounts))
	for i, acc := range in.Accounts {
		accounts[i] = tokenAccountMeta{
			Pubkey:   keys.EncodePubkey(acc.Pubkey),
			IsSigner: acc.IsSigner,
		}
	}

	writeData(w, sendTokenResponse{
		ProgramID:       keys.EncodePubkey(in.ProgramID),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(in.Data),
	})
}
