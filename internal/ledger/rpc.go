package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"github.com/solgate/solgate/config"
	"github.com/solgate/solgate/internal/log"
)

// ErrAccountNotFound is returned by GetAccount when the requested
// account does not exist on the cluster.
var ErrAccountNotFound = errors.New("account not found")

// confirmPollInterval is how often ConfirmTransaction polls signature status.
const confirmPollInterval = 2 * time.Second

// RPCClient implements Client against a Solana JSON-RPC endpoint.
type RPCClient struct {
	rpc            *rpc.Client
	timeout        time.Duration
	confirmTimeout time.Duration
	logger         zerolog.Logger
}

// NewRPCClient creates a ledger client for the configured endpoint.
func NewRPCClient(cfg config.LedgerConfig) *RPCClient {
	return &RPCClient{
		rpc:            rpc.New(cfg.RPCURL),
		timeout:        cfg.Timeout,
		confirmTimeout: cfg.ConfirmTimeout,
		logger:         log.Ledger,
	}
}

// GetAccount fetches account state at confirmed commitment.
func (c *RPCClient) GetAccount(ctx context.Context, pub solana.PublicKey) (AccountInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.rpc.GetAccountInfoWithOpts(ctx, pub, &rpc.GetAccountInfoOpts{
		Commitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		// The RPC client reports a missing account as an error with a
		// nil result; normalize both shapes to ErrAccountNotFound.
		if errors.Is(err, rpc.ErrNotFound) {
			return AccountInfo{}, ErrAccountNotFound
		}
		return AccountInfo{}, fmt.Errorf("getAccountInfo: %w", err)
	}
	if res == nil || res.Value == nil {
		return AccountInfo{}, ErrAccountNotFound
	}

	acc := res.Value
	rentEpoch := uint64(0)
	if acc.RentEpoch != nil {
		rentEpoch = acc.RentEpoch.Uint64()
	}

	return AccountInfo{
		Lamports:   acc.Lamports,
		Owner:      acc.Owner,
		Executable: acc.Executable,
		RentEpoch:  rentEpoch,
	}, nil
}

// GetBalance returns the lamport balance at confirmed commitment.
func (c *RPCClient) GetBalance(ctx context.Context, pub solana.PublicKey) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.rpc.GetBalance(ctx, pub, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("getBalance: %w", err)
	}
	return res.Value, nil
}

// GetLatestBlockhash fetches a recent blockhash at confirmed commitment.
func (c *RPCClient) GetLatestBlockhash(ctx context.Context) (solana.Hash, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("getLatestBlockhash: %w", err)
	}
	return res.Value.Blockhash, nil
}

// RequestAirdrop asks the cluster faucet for lamports.
func (c *RPCClient) RequestAirdrop(ctx context.Context, pub solana.PublicKey, lamports uint64) (solana.Signature, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sig, err := c.rpc.RequestAirdrop(ctx, pub, lamports, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("requestAirdrop: %w", err)
	}

	c.logger.Debug().
		Str("account", pub.String()).
		Uint64("lamports", lamports).
		Str("signature", sig.String()).
		Msg("Airdrop requested")

	return sig, nil
}

// ConfirmTransaction polls signature status until the transaction reaches
// confirmed commitment, the cluster reports it failed, or the confirm
// timeout elapses.
func (c *RPCClient) ConfirmTransaction(ctx context.Context, sig solana.Signature) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		res, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return false, fmt.Errorf("getSignatureStatuses: %w", err)
		}

		if len(res.Value) > 0 && res.Value[0] != nil {
			status := res.Value[0]
			if status.Err != nil {
				c.logger.Warn().
					Str("signature", sig.String()).
					Interface("err", status.Err).
					Msg("Transaction failed on cluster")
				return false, nil
			}
			switch status.ConfirmationStatus {
			case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
				return true, nil
			}
		}

		select {
		case <-ctx.Done():
			return false, fmt.Errorf("confirm %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

// SendAndConfirmTransaction broadcasts a signed transaction and waits for
// confirmed commitment.
func (c *RPCClient) SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sig, err := c.rpc.SendTransactionWithOpts(sendCtx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("sendTransaction: %w", err)
	}

	c.logger.Debug().
		Str("signature", sig.String()).
		Msg("Transaction broadcast")

	ok, err := c.ConfirmTransaction(ctx, sig)
	if err != nil {
		return sig, err
	}
	if !ok {
		return sig, fmt.Errorf("transaction %s failed on cluster", sig)
	}
	return sig, nil
}
