package instruction

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// TokenTransfer builds a token-program transfer between the associated
// token accounts of owner and destination wallet.
// Accounts: [source ATA (writable), destination ATA (writable),
// owner (signer)]. Data: (opcode=3 u8, amount u64 little-endian).
func TokenTransfer(owner, destWallet, mint solana.PublicKey, amount uint64) (Instruction, error) {
	sourceATA, err := AssociatedTokenAddress(owner, mint)
	if err != nil {
		return Instruction{}, err
	}
	destATA, err := AssociatedTokenAddress(destWallet, mint)
	if err != nil {
		return Instruction{}, err
	}

	built, err := token.NewTransferInstruction(amount, sourceATA, destATA, owner, nil).ValidateAndBuild()
	if err != nil {
		return Instruction{}, fmt.Errorf("build token transfer: %w", err)
	}
	return fromSolana(built)
}

// InitializeMint builds a token-program mint initialization.
// The freeze authority defaults to the mint authority.
// Accounts: [mint (writable), rent sysvar]. Data: (opcode=0 u8,
// decimals u8, authority 32 bytes, freeze flag u8, freeze authority
// 32 bytes).
func InitializeMint(mint, authority solana.PublicKey, decimals uint8) (Instruction, error) {
	built, err := token.NewInitializeMintInstruction(
		decimals,
		authority,
		authority,
		mint,
		solana.SysVarRentPubkey,
	).ValidateAndBuild()
	if err != nil {
		return Instruction{}, fmt.Errorf("build initialize mint: %w", err)
	}
	return fromSolana(built)
}

// MintTo builds a token-program mint-to targeting the destination
// wallet's associated token account.
// Accounts: [mint (writable), destination ATA (writable),
// authority (signer)]. Data: (opcode=7 u8, amount u64 little-endian).
func MintTo(mint, destWallet, authority solana.PublicKey, amount uint64) (Instruction, error) {
	destATA, err := AssociatedTokenAddress(destWallet, mint)
	if err != nil {
		return Instruction{}, err
	}

	built, err := token.NewMintToInstruction(amount, mint, destATA, authority, nil).ValidateAndBuild()
	if err != nil {
		return Instruction{}, fmt.Errorf("build mint to: %w", err)
	}
	return fromSolana(built)
}
