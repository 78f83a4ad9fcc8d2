package server

import (
	"net/http"

	"github.com/solgate/solgate/pkg/keys"
)

// handleSignMessage signs an arbitrary message with a base58 keypair.
func (s *Server) handleSignMessage(w http.ResponseWriter, r *http.Request) {
	var req signMessageRequest
	if e := decodeRequest(r, &req); e != nil {
		writeError(w, e)
		return
	}

	message, okMsg := requireString(req.Message)
	secret, okSec := requireString(req.Secret)
	if !okMsg || !okSec {
		writeError(w, errMissingFields())
		return
	}

	key, err := keys.DecodeKeypairBase58(secret)
	if err != nil {
		writeError(w, errInvalidInput("Invalid secret key"))
		return
	}

	sig, err := keys.Sign(key, []byte(message))
	if err != nil {
		writeError(w, &Error{Kind: KindInternal, Detail: err.Error()})
		return
	}

	writeData(w, signMessageResponse{
		Signature: keys.EncodeSignature(sig),
		PublicKey: keys.EncodePubkey(key.PublicKey()),
		Message:   message,
	})
}

// handleVerifyMessage checks a base64 signature over a message against
// a base58 public key. A well-formed but wrong signature yields
// valid=false with HTTP 200, not an error.
func (s *Server) handleVerifyMessage(w http.ResponseWriter, r *http.Request) {
	var req verifyMessageRequest
	if e := decodeRequest(r, &req); e != nil {
		writeError(w, e)
		return
	}

	message, okMsg := requireString(req.Message)
	signature, okSig := requireString(req.Signature)
	pubkey, okPub := requireString(req.Pubkey)
	if !okMsg || !okSig || !okPub {
		writeError(w, errMissingFields())
		return
	}

	pub, err := keys.DecodePubkey(pubkey)
	if err != nil {
		writeError(w, errInvalidInput("Invalid public key format"))
		return
	}

	sig, err := keys.DecodeSignature(signature)
	if err != nil {
		writeError(w, errInvalidInput("Invalid signature format"))
		return
	}

	writeData(w, verifyMessageResponse{
		Valid:   keys.Verify(pub, []byte(message), sig),
		Message: message,
		Pubkey:  pubkey,
	})
}
