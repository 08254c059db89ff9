package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

const sendTimeout = 30 * time.Second

// RelayService submits contract calls with the relayer credential and tracks
// them until inclusion. Building, signing and broadcasting run under one lock
// so two submissions never pick the same nonce.
type RelayService struct {
	logs       *zap.SugaredLogger
	client     EthClient
	chain      *ChainClient
	builder    *TransactionBuilder
	submitter  *Submitter
	waiter     *ReceiptWaiter
	contract   common.Address
	abi        abi.ABI
	credential *Credential

	mu sync.Mutex
}

func NewRelayService(
	logger *zap.SugaredLogger,
	client EthClient,
	chain *ChainClient,
	contract common.Address,
	contractABI abi.ABI,
	credential *Credential,
	pollInterval time.Duration,
) *RelayService {
	return &RelayService{
		logs:       logger,
		client:     client,
		chain:      chain,
		builder:    NewTransactionBuilder(chain, contract, contractABI),
		submitter:  NewSubmitter(logger, client, chain),
		waiter:     NewReceiptWaiter(chain, pollInterval),
		contract:   contract,
		abi:        contractABI,
		credential: credential,
	}
}

// Submit builds, signs and broadcasts a call to method. record is invoked with
// the transaction hash while the submission lock is still held, right after
// the node accepted the transaction. Once signed, broadcasting and recording
// ignore cancellation of ctx and are bounded by sendTimeout instead.
func (s *RelayService) Submit(ctx context.Context, method string, args []any, record func(common.Hash) error) (common.Hash, error) {
	if s.credential == nil {
		return common.Hash{}, ErrNoCredential
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.builder.Build(ctx, method, args, s.credential.Address(), nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("build transaction: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	hash, err := s.submitter.SignAndSend(sendCtx, tx, s.credential)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign and send: %w", err)
	}

	if record != nil {
		if err := record(hash); err != nil {
			s.logs.Errorw("transaction broadcast but not recorded",
				"error", err,
				"txHash", hash.Hex(),
				"method", method)
			return hash, fmt.Errorf("record transaction %s: %w", hash.Hex(), err)
		}
	}

	return hash, nil
}

// AwaitReceipt waits up to timeout for the transaction to be included.
func (s *RelayService) AwaitReceipt(ctx context.Context, hash common.Hash, timeout time.Duration) (*types.Receipt, bool, error) {
	return s.waiter.Await(ctx, hash, timeout)
}

// RevertReason replays a failed transaction at its block to recover the
// revert reason. It falls back to a generic description.
func (s *RelayService) RevertReason(ctx context.Context, hash common.Hash, receipt *types.Receipt) string {
	fallback := fmt.Sprintf("transaction %s failed", hash.Hex())
	if receipt != nil && receipt.BlockNumber != nil {
		fallback = fmt.Sprintf("transaction %s failed in block %s", hash.Hex(), receipt.BlockNumber)
	}

	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		s.logs.Warnw("could not load failed transaction", "error", err, "txHash", hash.Hex())
		return fallback
	}

	signer := types.LatestSignerForChainID(s.chain.ChainID())
	from, err := types.Sender(signer, tx)
	if err != nil {
		return fallback
	}

	msg := geth.CallMsg{
		From:      from,
		To:        tx.To(),
		Gas:       tx.Gas(),
		Value:     tx.Value(),
		Data:      tx.Data(),
		GasPrice:  tx.GasPrice(),
		GasTipCap: tx.GasTipCap(),
		GasFeeCap: tx.GasFeeCap(),
	}
	if tx.Type() == types.DynamicFeeTxType {
		msg.GasPrice = nil
	} else {
		msg.GasTipCap, msg.GasFeeCap = nil, nil
	}

	var block *big.Int
	if receipt != nil {
		block = receipt.BlockNumber
	}

	if reason := s.chain.ReplayRevertReason(ctx, msg, block); reason != "" {
		return reason
	}

	return fallback
}

// FetchReceipts looks up receipts for many transactions in parallel. Hashes
// that are not included yet are left out of the result; other failures are
// joined into the returned error.
func (s *RelayService) FetchReceipts(ctx context.Context, hashes []common.Hash) ([]*types.Receipt, error) {
	type receiptResult struct {
		receipt *types.Receipt
		err     error
	}

	resultsChan := make(chan receiptResult)

	var wg sync.WaitGroup
	for _, hash := range hashes {
		wg.Add(1)
		go func(hash common.Hash) {
			defer wg.Done()
			receipt, err := s.chain.TransactionReceipt(ctx, hash)
			if err != nil && !isNotFound(err) {
				err = fmt.Errorf("fetching receipt %q: %w", hash.Hex(), err)
			}
			resultsChan <- receiptResult{receipt, err}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var receipts []*types.Receipt
	var aggrErr error
	for result := range resultsChan {
		if result.err != nil {
			if !isNotFound(result.err) {
				aggrErr = errors.Join(aggrErr, result.err)
			}
			continue
		}
		receipts = append(receipts, result.receipt)
	}

	return receipts, aggrErr
}

// VoteCount reads the tally of a candidate from the contract.
func (s *RelayService) VoteCount(ctx context.Context, electionID, candidateID *big.Int) (*big.Int, error) {
	values, err := s.chain.Read(ctx, s.contract, s.abi, MethodGetVoteCount, electionID, candidateID)
	if err != nil {
		return nil, err
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrRead, MethodGetVoteCount, len(values))
	}

	count, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s returned %T", ErrRead, MethodGetVoteCount, values[0])
	}

	return count, nil
}

// Decoder returns an event decoder bound to the relay contract.
func (s *RelayService) Decoder() *EventDecoder {
	return NewEventDecoder(s.contract, s.abi)
}
