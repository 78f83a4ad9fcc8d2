package server

import (
	"net/http"

	"github.com/solgate/solgate/pkg/keys"
)

// handleGenerateKeypair returns a fresh random keypair, base58-encoded.
func (s *Server) handleGenerateKeypair(w http.ResponseWriter, r *http.Request) {
	key, err := keys.Generate()
	if err != nil {
		writeError(w, &Error{Kind: KindInternal, Detail: err.Error()})
		return
	}

	writeData(w, keypairResponse{
		Pubkey: keys.EncodePubkey(key.PublicKey()),
		Secret: keys.EncodeKeypairBase58(key),
	})
}

// handleCreateAccount generates a keypair and optionally returns the
// private key (base64) when the caller asks for it.
func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if e := decodeRequest(r, &req); e != nil {
		writeLegacyError(w, e)
		return
	}

	key, err := keys.Generate()
	if err != nil {
		writeLegacyError(w, &Error{Kind: KindInternal, Detail: err.Error()})
		return
	}

	var privateKey *string
	if req.SavePrivateKey {
		enc := keys.EncodeKeypairBase64(key)
		privateKey = &enc
	}

	writeBare(w, createAccountResponse{
		PublicKey:  keys.EncodePubkey(key.PublicKey()),
		PrivateKey: privateKey,
		Message:    "Account created successfully. Note: This is a new keypair, it needs to be funded before use.",
	})
}
