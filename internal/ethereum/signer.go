package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// Credential is the custodial relayer key and its address. Formatting a
// Credential only ever prints the address.
type Credential struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewCredential parses a hex private key, with or without the 0x prefix.
// An empty key yields a nil credential and ErrNoCredential.
func NewCredential(hexKey string) (*Credential, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, ErrNoCredential
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse relayer private key: %w", err)
	}

	return NewCredentialFromKey(key), nil
}

func NewCredentialFromKey(key *ecdsa.PrivateKey) *Credential {
	return &Credential{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (c *Credential) Address() common.Address {
	return c.address
}

func (c *Credential) String() string {
	return c.address.Hex()
}

func (c *Credential) GoString() string {
	return fmt.Sprintf("Credential{address: %s}", c.address.Hex())
}

// Submitter signs transactions with the relayer credential and broadcasts them.
type Submitter struct {
	logs   *zap.SugaredLogger
	client EthClient
	chain  *ChainClient
}

func NewSubmitter(logger *zap.SugaredLogger, client EthClient, chain *ChainClient) *Submitter {
	return &Submitter{
		logs:   logger,
		client: client,
		chain:  chain,
	}
}

// SignAndSend signs tx and broadcasts it. The hash is returned only when the
// node accepted the transaction.
func (s *Submitter) SignAndSend(ctx context.Context, tx UnsignedTransaction, credential *Credential) (common.Hash, error) {
	if credential == nil || credential.key == nil {
		return common.Hash{}, ErrNoCredential
	}

	if tx.ChainID == nil {
		tx.ChainID = s.chain.ChainID()
	}

	data, err := tx.TxData()
	if err != nil {
		return common.Hash{}, err
	}

	signer := types.LatestSignerForChainID(tx.ChainID)
	signed, err := types.SignNewTx(credential.key, signer, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		if reverted, ok := AsRevert(err); ok {
			return common.Hash{}, reverted
		}
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	s.logs.Infow("transaction broadcast",
		"txHash", signed.Hash().Hex(),
		"method", tx.Method,
		"nonce", tx.Nonce,
		"type", signed.Type(),
		"from", credential.Address().Hex())

	return signed.Hash(), nil
}
