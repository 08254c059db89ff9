package ethereum

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const DefaultPollInterval = 2 * time.Second

// ReceiptWaiter polls the node until a transaction receipt shows up.
type ReceiptWaiter struct {
	chain    *ChainClient
	interval time.Duration
}

func NewReceiptWaiter(chain *ChainClient, interval time.Duration) *ReceiptWaiter {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &ReceiptWaiter{
		chain:    chain,
		interval: interval,
	}
}

// Await returns the receipt once the transaction is included. When timeout
// elapses first it returns a nil receipt, found == false and no error; the
// transaction itself is left untouched. Node errors other than "not found"
// are returned as they are.
func (w *ReceiptWaiter) Await(ctx context.Context, hash common.Hash, timeout time.Duration) (receipt *types.Receipt, found bool, err error) {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		receipt, err := w.chain.TransactionReceipt(waitCtx, hash)
		switch {
		case err == nil:
			return receipt, true, nil
		case isNotFound(err):
		case waitCtx.Err() != nil && ctx.Err() == nil:
			return nil, false, nil
		default:
			return nil, false, err
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, false, ctx.Err()
			}
			return nil, false, nil
		case <-ticker.C:
		}
	}
}
