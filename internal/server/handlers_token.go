package server

import (
	"encoding/base64"
	"net/http"

	"github.com/solgate/solgate/pkg/instruction"
	"github.com/solgate/solgate/pkg/keys"
)

// handleCreateToken builds an unsigned mint-initialization instruction.
// The freeze authority defaults to the mint authority.
func (s *Server) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	var req createTokenRequest
	if e := decodeRequest(r, &req); e != nil {
		writeError(w, e)
		return
	}

	mintAuthority, okAuth := requireString(req.MintAuthority)
	mint, okMint := requireString(req.Mint)
	if !okAuth || !okMint || req.Decimals == nil {
		writeError(w, errMissingFields())
		return
	}
	decimals := *req.Decimals

	authorityPub, err := keys.DecodePubkey(mintAuthority)
	if err != nil {
		writeError(w, errInvalidInput("Invalid mint authority public key"))
		return
	}

	mintPub, err := keys.DecodePubkey(mint)
	if err != nil {
		writeError(w, errInvalidInput("Invalid mint public key"))
		return
	}

	if decimals > maxMintDecimals {
		writeError(w, errInvalidInput("Decimals must be between 0 and 9"))
		return
	}

	if mintPub.Equals(authorityPub) {
		writeError(w, errInvalidInput("Mint account and mint authority cannot be the same"))
		return
	}

	// Advisory only: surfaces what the authority's associated token
	// account would be. Failure here never blocks construction.
	if authorityATA, err := instruction.AssociatedTokenAddress(authorityPub, mintPub); err == nil {
		s.logger.Info().
			Str("mint", mint).
			Str("authority", mintAuthority).
			Str("authority_ata", keys.EncodePubkey(authorityATA)).
			Msg("Creating mint initialization instruction")
	}

	in, err := instruction.InitializeMint(mintPub, authorityPub, decimals)
	if err != nil {
		writeError(w, errTokenError(err.Error()))
		return
	}

	writeData(w, buildInstructionResponse(in))
}

// handleMintToken builds an unsigned mint-to instruction targeting the
// destination wallet's associated token account.
func (s *Server) handleMintToken(w http.ResponseWriter, r *http.Request) {
	var req mintTokenRequest
	if e := decodeRequest(r, &req); e != nil {
		writeError(w, e)
		return
	}

	mint, okMint := requireString(req.Mint)
	destination, okDest := requireString(req.Destination)
	authority, okAuth := requireString(req.Authority)
	amount, okAmount := requireAmount(req.Amount)
	if !okMint || !okDest || !okAuth || !okAmount {
		writeError(w, errMissingFields())
		return
	}

	mintPub, err := keys.DecodePubkey(mint)
	if err != nil {
		writeError(w, errInvalidInput("Invalid mint address"))
		return
	}

	destPub, err := keys.DecodePubkey(destination)
	if err != nil {
		writeError(w, errInvalidInput("Invalid destination wallet address"))
		return
	}

	authorityPub, err := keys.DecodePubkey(authority)
	if err != nil {
		writeError(w, errInvalidInput("Invalid authority address"))
		return
	}

	if amount > maxTokenAmount {
		writeError(w, errInvalidInput("Token amount is too large"))
		return
	}

	in, err := instruction.MintTo(mintPub, destPub, authorityPub, amount)
	if err != nil {
		writeError(w, errTokenError(err.Error()))
		return
	}

	writeData(w, buildInstructionResponse(in))
}

// buildInstructionResponse flattens a built instruction into the full
// account-meta wire shape shared by the token endpoints.
func buildInstructionResponse(in instruction.Instruction) instructionResponse {
	accounts := make([]accountMeta, len(in.Accounts))
	for i, acc := range in.Accounts {
		accounts[i] = accountMeta{
			Pubkey:     keys.EncodePubkey(acc.Pubkey),
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		}
	}
	return instructionResponse{
		ProgramID:       keys.EncodePubkey(in.ProgramID),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(in.Data),
	}
}
