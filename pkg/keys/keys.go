// Package keys provides text codecs for Solana public keys, signatures
// and keypairs, plus message signing and verification.
package keys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// KeypairSize is the length of a packed keypair in bytes:
// 32-byte ed25519 secret seed followed by the 32-byte public key.
const KeypairSize = 64

// SignatureSize is the length of an ed25519 signature in bytes.
const SignatureSize = 64

// Generate creates a new random keypair.
func Generate() (solana.PrivateKey, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return key, nil
}

// DecodePubkey parses a base58-encoded 32-byte public key.
func DecodePubkey(s string) (solana.PublicKey, error) {
	pub, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid public key: %w", err)
	}
	return pub, nil
}

// EncodePubkey returns the canonical base58 form of a public key.
func EncodePubkey(pub solana.PublicKey) string {
	return pub.String()
}

// DecodeSignature parses a base64-encoded 64-byte signature.
func DecodeSignature(s string) (solana.Signature, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("invalid signature encoding: %w", err)
	}
	if len(raw) != SignatureSize {
		return solana.Signature{}, fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(raw))
	}
	return solana.SignatureFromBytes(raw), nil
}

// EncodeSignature returns the canonical base64 form of a signature.
func EncodeSignature(sig solana.Signature) string {
	return base64.StdEncoding.EncodeToString(sig[:])
}

// DecodeKeypairBase58 parses a base58-encoded 64-byte keypair
// (secret seed in bytes [0:32], public key in bytes [32:64]).
func DecodeKeypairBase58(s string) (solana.PrivateKey, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid keypair encoding: %w", err)
	}
	return keypairFromBytes(raw)
}

// DecodeKeypairBase64 parses a base64-encoded 64-byte keypair.
// This is the legacy encoding used by the funded transfer endpoint.
func DecodeKeypairBase64(s string) (solana.PrivateKey, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid keypair encoding: %w", err)
	}
	return keypairFromBytes(raw)
}

// EncodeKeypairBase58 returns the base58 form of the packed 64-byte keypair.
func EncodeKeypairBase58(key solana.PrivateKey) string {
	return base58.Encode(key)
}

// EncodeKeypairBase64 returns the base64 form of the packed 64-byte keypair.
func EncodeKeypairBase64(key solana.PrivateKey) string {
	return base64.StdEncoding.EncodeToString(key)
}

// keypairFromBytes validates length and the embedded public key half.
func keypairFromBytes(raw []byte) (solana.PrivateKey, error) {
	if len(raw) != KeypairSize {
		return nil, fmt.Errorf("keypair must be %d bytes, got %d", KeypairSize, len(raw))
	}

	// The last 32 bytes must be the public key derived from the seed,
	// otherwise the keypair was corrupted or hand-assembled.
	derived := ed25519.NewKeyFromSeed(raw[:32])
	if !bytes.Equal(derived[32:], raw[32:]) {
		return nil, fmt.Errorf("keypair public key does not match secret")
	}

	return solana.PrivateKey(raw), nil
}
