package instruction

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// NativeTransfer builds a system-program lamport transfer.
// Accounts: [from (signer, writable), to (writable)].
// Data: little-endian (opcode=2 u32, lamports u64).
func NativeTransfer(from, to solana.PublicKey, lamports uint64) (Instruction, error) {
	built, err := system.NewTransferInstruction(lamports, from, to).ValidateAndBuild()
	if err != nil {
		return Instruction{}, fmt.Errorf("build transfer: %w", err)
	}
	return fromSolana(built)
}

// SignedNativeTransferTx assembles and signs a one-instruction transfer
// transaction for the funded transfer flow. The sender pays the fee.
func SignedNativeTransferTx(from solana.PrivateKey, to solana.PublicKey, lamports uint64, blockhash solana.Hash) (*solana.Transaction, error) {
	in, err := NativeTransfer(from.PublicKey(), to, lamports)
	if err != nil {
		return nil, err
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{in.Solana()},
		blockhash,
		solana.TransactionPayer(from.PublicKey()),
	)
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(from.PublicKey()) {
			return &from
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	return tx, nil
}
