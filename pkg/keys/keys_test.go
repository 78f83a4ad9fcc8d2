package keys

import (
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestGenerate(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(key) != KeypairSize {
		t.Errorf("keypair length = %d, want %d", len(key), KeypairSize)
	}

	if key.PublicKey().IsZero() {
		t.Error("generated keypair has zero public key")
	}
}

func TestGenerate_Unique(t *testing.T) {
	k1, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	k2, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if k1.PublicKey().Equals(k2.PublicKey()) {
		t.Error("two generated keypairs should not be identical")
	}
}

func TestDecodePubkey_RoundTrip(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	encoded := EncodePubkey(key.PublicKey())
	decoded, err := DecodePubkey(encoded)
	if err != nil {
		t.Fatalf("DecodePubkey() error: %v", err)
	}

	if !decoded.Equals(key.PublicKey()) {
		t.Errorf("round trip mismatch: got %s, want %s", decoded, key.PublicKey())
	}
}

func TestDecodePubkey_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad alphabet", "0OIl+/=="},
		{"too short", "abc"},
		{"too long", strings.Repeat("1", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePubkey(tt.input); err == nil {
				t.Errorf("DecodePubkey(%q) expected error", tt.input)
			}
		})
	}
}

func TestDecodeSignature_RoundTrip(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	sig, err := Sign(key, []byte("round trip"))
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	decoded, err := DecodeSignature(EncodeSignature(sig))
	if err != nil {
		t.Fatalf("DecodeSignature() error: %v", err)
	}
	if decoded != sig {
		t.Error("signature round trip mismatch")
	}
}

func TestDecodeSignature_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not base64", "!!not-base64!!"},
		{"wrong length", "aGVsbG8="}, // "hello", 5 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSignature(tt.input); err == nil {
				t.Errorf("DecodeSignature(%q) expected error", tt.input)
			}
		})
	}
}

func TestDecodeKeypair_RoundTrip(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	fromB58, err := DecodeKeypairBase58(EncodeKeypairBase58(key))
	if err != nil {
		t.Fatalf("DecodeKeypairBase58() error: %v", err)
	}
	if !fromB58.PublicKey().Equals(key.PublicKey()) {
		t.Error("base58 keypair round trip mismatch")
	}

	fromB64, err := DecodeKeypairBase64(EncodeKeypairBase64(key))
	if err != nil {
		t.Fatalf("DecodeKeypairBase64() error: %v", err)
	}
	if !fromB64.PublicKey().Equals(key.PublicKey()) {
		t.Error("base64 keypair round trip mismatch")
	}
}

func TestDecodeKeypair_Invalid(t *testing.T) {
	short := EncodeKeypairBase58(solana.PrivateKey(make([]byte, 32)))

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad alphabet", "0OIl"},
		{"wrong length", short},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeKeypairBase58(tt.input); err == nil {
				t.Errorf("DecodeKeypairBase58(%q) expected error", tt.input)
			}
		})
	}
}

func TestDecodeKeypair_MismatchedHalves(t *testing.T) {
	k1, _ := Generate()
	k2, _ := Generate()

	// Secret seed from k1, public key from k2.
	mixed := make([]byte, KeypairSize)
	copy(mixed[:32], k1[:32])
	copy(mixed[32:], k2[32:])

	if _, err := DecodeKeypairBase58(EncodeKeypairBase58(solana.PrivateKey(mixed))); err == nil {
		t.Error("expected error for keypair with mismatched halves")
	}
}

func TestSign_Verify(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	msg := []byte("hello")
	sig, err := Sign(key, msg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	if !Verify(key.PublicKey(), msg, sig) {
		t.Error("signature should verify against the correct key and message")
	}
}

func TestSign_Deterministic(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	msg := []byte("determinism check")
	s1, err := Sign(key, msg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	s2, err := Sign(key, msg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	if s1 != s2 {
		t.Error("signing the same message twice should yield the same signature")
	}
}

func TestSign_EmptyMessage(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	sig, err := Sign(key, nil)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	if !Verify(key.PublicKey(), nil, sig) {
		t.Error("empty message signature should verify")
	}
}

func TestVerify_Negative(t *testing.T) {
	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	other, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	msg := []byte("hello")
	sig, err := Sign(key, msg)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	if Verify(other.PublicKey(), msg, sig) {
		t.Error("signature should not verify against a different key")
	}

	if Verify(key.PublicKey(), []byte("jello"), sig) {
		t.Error("signature should not verify against a different message of the same length")
	}

	flipped := sig
	flipped[0] ^= 0x01
	if Verify(key.PublicKey(), msg, flipped) {
		t.Error("flipped signature should not verify")
	}
}
