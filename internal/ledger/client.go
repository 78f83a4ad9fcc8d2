// Package ledger provides the external Solana RPC capability consumed
// by the gateway. The production implementation wraps a JSON-RPC client;
// tests substitute a fake. The gateway core never constructs a client
// itself; one is built from config at startup and injected.
package ledger

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// AccountInfo is the subset of on-chain account state the gateway exposes.
type AccountInfo struct {
	Lamports   uint64
	Owner      solana.PublicKey
	Executable bool
	RentEpoch  uint64
}

// Client is the ledger capability used by the request handlers.
// All operations block on network I/O and honor context cancellation.
type Client interface {
	// GetAccount fetches account state, failing if the account does not exist.
	GetAccount(ctx context.Context, pub solana.PublicKey) (AccountInfo, error)

	// GetBalance returns the account's lamport balance (0 if absent).
	GetBalance(ctx context.Context, pub solana.PublicKey) (uint64, error)

	// GetLatestBlockhash fetches a recent blockhash for transaction building.
	GetLatestBlockhash(ctx context.Context) (solana.Hash, error)

	// RequestAirdrop asks the cluster faucet to fund an account.
	RequestAirdrop(ctx context.Context, pub solana.PublicKey, lamports uint64) (solana.Signature, error)

	// ConfirmTransaction waits until the signature reaches confirmed
	// commitment. Returns false if the cluster reports the transaction
	// as failed.
	ConfirmTransaction(ctx context.Context, sig solana.Signature) (bool, error)

	// SendAndConfirmTransaction broadcasts a signed transaction and
	// waits for confirmation.
	SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}
