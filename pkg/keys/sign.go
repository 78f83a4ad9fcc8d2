package keys

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Sign produces an ed25519 signature over an arbitrary byte message.
// Signing is deterministic: the same key and message always yield the
// same signature.
func Sign(key solana.PrivateKey, message []byte) (solana.Signature, error) {
	sig, err := key.Sign(message)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("sign message: %w", err)
	}
	return sig, nil
}

// Verify checks an ed25519 signature against a public key and message.
// Returns false for any mismatch; it never fails. Malformed-size input
// is rejected earlier by the codec, not here.
func Verify(pub solana.PublicKey, message []byte, sig solana.Signature) bool {
	return sig.Verify(pub, message)
}
