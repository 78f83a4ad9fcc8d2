package instruction

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// AssociatedTokenAddress derives the associated token account address
// for a wallet and mint using the canonical SPL derivation (program
// constants + owner + token program + mint, hashed off-curve with a
// bump search). Pure and deterministic; the account is not checked for
// on-chain existence.
func AssociatedTokenAddress(wallet, mint solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive associated token address: %w", err)
	}
	return addr, nil
}
