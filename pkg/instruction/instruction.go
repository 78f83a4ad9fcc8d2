// Package instruction assembles unsigned Solana instructions: a target
// program, an ordered account list with signer/writable flags, and an
// opaque data payload. Builders are pure functions; nothing here touches
// the network.
package instruction

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// AccountMeta is one entry of an instruction's ordered account list.
type AccountMeta struct {
	Pubkey     solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is an unsigned unit of work for the Solana runtime.
// Immutable once built; the caller embeds it in a transaction.
type Instruction struct {
	ProgramID solana.PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// Solana converts the instruction to the form the transaction
// assembler expects.
func (in Instruction) Solana() *solana.GenericInstruction {
	metas := make(solana.AccountMetaSlice, len(in.Accounts))
	for i, acc := range in.Accounts {
		metas[i] = &solana.AccountMeta{
			PublicKey:  acc.Pubkey,
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		}
	}
	return solana.NewInstruction(in.ProgramID, metas, in.Data)
}

// fromSolana flattens a built program instruction into an Instruction.
func fromSolana(src solana.Instruction) (Instruction, error) {
	data, err := src.Data()
	if err != nil {
		return Instruction{}, fmt.Errorf("encode instruction data: %w", err)
	}

	accounts := make([]AccountMeta, len(src.Accounts()))
	for i, meta := range src.Accounts() {
		accounts[i] = AccountMeta{
			Pubkey:     meta.PublicKey,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
	}

	return Instruction{
		ProgramID: src.ProgramID(),
		Accounts:  accounts,
		Data:      data,
	}, nil
}
