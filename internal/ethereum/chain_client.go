package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

var pendingBlock = big.NewInt(int64(rpc.PendingBlockNumber))

// ChainClient wraps an ethereum node and the chain identity verified at
// connection time.
type ChainClient struct {
	logs    *zap.SugaredLogger
	client  EthClient
	chainID *big.Int
}

// Dial connects to the node at providerURL and verifies its chain identity.
func Dial(ctx context.Context, logger *zap.SugaredLogger, providerURL string, expectedChainID *big.Int) (*ChainClient, *ethclient.Client, error) {
	if providerURL == "" {
		return nil, nil, fmt.Errorf("%w: provider url is empty", ErrConnectivity)
	}

	client, err := ethclient.DialContext(ctx, providerURL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	chain, err := NewChainClient(ctx, logger, client, expectedChainID)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	return chain, client, nil
}

// NewChainClient checks the node is reachable and establishes the chain
// identity. When the node reports no identity the expected one is used; with
// neither available the connection fails.
func NewChainClient(ctx context.Context, logger *zap.SugaredLogger, client EthClient, expectedChainID *big.Int) (*ChainClient, error) {
	if _, err := client.BlockNumber(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	nodeChainID, err := client.ChainID(ctx)
	if err != nil {
		logger.Warnw("node did not report a chain id", "error", err)
		nodeChainID = nil
	}

	var chainID *big.Int
	switch {
	case nodeChainID != nil && expectedChainID != nil:
		if nodeChainID.Cmp(expectedChainID) != 0 {
			return nil, fmt.Errorf("%w: configured %s, node reports %s", ErrChainMismatch, expectedChainID, nodeChainID)
		}
		chainID = nodeChainID
	case nodeChainID != nil:
		chainID = nodeChainID
	case expectedChainID != nil:
		chainID = expectedChainID
	default:
		return nil, ErrNoChainIdentity
	}

	logger.Infow("connected to ethereum node", "chainId", chainID.String())

	return &ChainClient{
		logs:    logger,
		client:  client,
		chainID: new(big.Int).Set(chainID),
	}, nil
}

// ChainID returns the chain identity established at connection time.
func (c *ChainClient) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// CurrentFeeModel inspects the pending block. A base fee selects the dynamic
// model, its absence the legacy one.
func (c *ChainClient) CurrentFeeModel(ctx context.Context) (FeeModel, error) {
	header, err := c.client.HeaderByNumber(ctx, pendingBlock)
	if err != nil {
		return nil, fmt.Errorf("get pending block: %w", err)
	}

	if header != nil && header.BaseFee != nil {
		tip, err := c.client.SuggestGasTipCap(ctx)
		if err != nil {
			c.logs.Warnw("node could not suggest a priority fee", "error", err)
			tip = nil
		}
		return DynamicFeeModel{BaseFee: new(big.Int).Set(header.BaseFee), SuggestedTip: tip}, nil
	}

	price, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	return LegacyFeeModel{GasPrice: price}, nil
}

// Read performs a side-effect-free contract call and unpacks its outputs.
func (c *ChainClient) Read(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...any) ([]any, error) {
	if _, ok := contractABI.Methods[method]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s arguments: %w", method, err)
	}

	output, err := c.client.CallContract(ctx, geth.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, method, err)
	}

	values, err := contractABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s: %w", ErrRead, method, err)
	}

	return values, nil
}

// NextNonce returns the next unused nonce for the account. It is never cached.
func (c *ChainClient) NextNonce(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.client.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("get account nonce: %w", err)
	}
	return nonce, nil
}

// EstimateGas dry-runs the call against the node.
func (c *ChainClient) EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error) {
	gas, err := c.client.EstimateGas(ctx, msg)
	if err != nil {
		if reverted, ok := AsRevert(err); ok {
			return 0, fmt.Errorf("%w: %w", ErrGasEstimation, reverted)
		}
		return 0, fmt.Errorf("%w: %w", ErrGasEstimation, err)
	}
	return gas, nil
}

// ReplayRevertReason re-executes a failed call at the given block to recover
// the revert reason. The returned string is empty when nothing was recovered.
func (c *ChainClient) ReplayRevertReason(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) string {
	_, err := c.client.CallContract(ctx, msg, blockNumber)
	if err == nil {
		return ""
	}

	if reverted, ok := AsRevert(err); ok {
		return reverted.Reason
	}

	return err.Error()
}

// TransactionReceipt returns the receipt, or geth.NotFound when the
// transaction is not yet included.
func (c *ChainClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := c.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, geth.NotFound
	}
	return receipt, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, geth.NotFound)
}
