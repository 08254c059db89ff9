package ethereum_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"beevs/internal/ethereum"
	"beevs/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Credential", func() {
	It("should derive the address and never print the key", func() {
		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		hexKey := hexutil.Encode(crypto.FromECDSA(key))

		credential, err := ethereum.NewCredential(hexKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(credential.Address()).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))

		for _, printed := range []string{
			fmt.Sprint(credential),
			fmt.Sprintf("%v", credential),
			fmt.Sprintf("%#v", credential),
		} {
			Expect(printed).NotTo(ContainSubstring(hexKey[2:]))
			Expect(printed).To(ContainSubstring(credential.Address().Hex()))
		}
	})

	It("should accept keys without the 0x prefix", func() {
		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		credential, err := ethereum.NewCredential(common.Bytes2Hex(crypto.FromECDSA(key)))
		Expect(err).NotTo(HaveOccurred())
		Expect(credential.Address()).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))
	})

	It("should report a missing key", func() {
		credential, err := ethereum.NewCredential("  ")
		Expect(err).To(MatchError(ethereum.ErrNoCredential))
		Expect(credential).To(BeNil())
	})

	It("should reject malformed keys", func() {
		_, err := ethereum.NewCredential("0xnothex")
		Expect(err).To(HaveOccurred())
		Expect(err).NotTo(MatchError(ethereum.ErrNoCredential))
	})
})

var _ = Describe("Submitter", func() {
	var (
		fakeClient *fake.EthClient
		submitter  *ethereum.Submitter
		credential *ethereum.Credential
		ctx        context.Context
		chainID    *big.Int
		unsigned   ethereum.UnsignedTransaction
		hash       common.Hash
		err        error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		chainID = big.NewInt(1337)

		fakeClient.BlockNumberReturns(1, nil)
		fakeClient.ChainIDReturns(chainID, nil)
		chain, initErr := ethereum.NewChainClient(ctx, zap.NewNop().Sugar(), fakeClient, nil)
		Expect(initErr).NotTo(HaveOccurred())

		key, keyErr := crypto.GenerateKey()
		Expect(keyErr).NotTo(HaveOccurred())
		credential = ethereum.NewCredentialFromKey(key)

		submitter = ethereum.NewSubmitter(zap.NewNop().Sugar(), fakeClient, chain)

		unsigned = ethereum.UnsignedTransaction{
			To:     contractAddress,
			Method: ethereum.MethodRegisterVoter,
			Data:   []byte{0x01, 0x02},
			From:   credential.Address(),
			Nonce:  4,
			Gas:    90_000,
			Value:  big.NewInt(0),
			Pricing: ethereum.DynamicPricing{
				GasTipCap: big.NewInt(2),
				GasFeeCap: big.NewInt(30),
			},
		}
	})

	JustBeforeEach(func() {
		hash, err = submitter.SignAndSend(ctx, unsigned, credential)
	})

	When("the node accepts the transaction", func() {
		It("should sign for the connected chain and return the hash", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))

			_, sent := fakeClient.SendTransactionArgsForCall(0)
			Expect(hash).To(Equal(sent.Hash()))
			Expect(sent.Type()).To(Equal(uint8(types.DynamicFeeTxType)))
			Expect(sent.ChainId()).To(Equal(chainID))
			Expect(sent.Nonce()).To(Equal(uint64(4)))
			Expect(sent.GasTipCap()).To(Equal(big.NewInt(2)))
			Expect(sent.GasFeeCap()).To(Equal(big.NewInt(30)))

			sender, senderErr := types.Sender(types.LatestSignerForChainID(chainID), sent)
			Expect(senderErr).NotTo(HaveOccurred())
			Expect(sender).To(Equal(credential.Address()))
		})
	})

	When("the transaction uses legacy pricing", func() {
		BeforeEach(func() {
			unsigned.Pricing = ethereum.LegacyPricing{GasPrice: big.NewInt(5)}
		})

		It("should still bind the signature to the chain id", func() {
			Expect(err).NotTo(HaveOccurred())
			_, sent := fakeClient.SendTransactionArgsForCall(0)
			Expect(sent.Type()).To(Equal(uint8(types.LegacyTxType)))
			Expect(sent.Protected()).To(BeTrue())
			Expect(sent.ChainId()).To(Equal(chainID))
		})
	})

	When("no credential is configured", func() {
		BeforeEach(func() {
			credential = nil
		})

		It("should fail without broadcasting", func() {
			Expect(err).To(MatchError(ethereum.ErrNoCredential))
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
		})
	})

	When("the node rejects the transaction with a revert", func() {
		BeforeEach(func() {
			fakeClient.SendTransactionReturns(rpcDataError{message: "execution reverted", data: revertPayload("voter already registered")})
		})

		It("should surface the revert reason and no hash", func() {
			var reverted *ethereum.ContractRevertedError
			Expect(errors.As(err, &reverted)).To(BeTrue())
			Expect(reverted.Reason).To(Equal("voter already registered"))
			Expect(hash).To(Equal(common.Hash{}))
		})
	})

	When("the node rejects the transaction for another reason", func() {
		BeforeEach(func() {
			fakeClient.SendTransactionReturns(errors.New("nonce too low"))
		})

		It("should return a send error", func() {
			Expect(err).To(MatchError(ContainSubstring("send transaction: nonce too low")))
			var reverted *ethereum.ContractRevertedError
			Expect(errors.As(err, &reverted)).To(BeFalse())
		})
	})

	When("the transaction has no pricing", func() {
		BeforeEach(func() {
			unsigned.Pricing = nil
		})

		It("should refuse to sign", func() {
			Expect(err).To(MatchError(ethereum.ErrTransactionEmpty))
		})
	})
})

var _ = Describe("AsRevert", func() {
	It("should fall back to the raw error text when the payload is not a revert", func() {
		reverted, ok := ethereum.AsRevert(rpcDataError{message: "execution reverted: custom", data: "0xdeadbeef"})
		Expect(ok).To(BeTrue())
		Expect(reverted.Reason).To(Equal("execution reverted: custom"))
	})

	It("should ignore errors that are not reverts", func() {
		_, ok := ethereum.AsRevert(errors.New("connection refused"))
		Expect(ok).To(BeFalse())
	})
})
