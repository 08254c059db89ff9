package ethereum_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sync"
	"time"

	"beevs/internal/ethereum"
	"beevs/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RelayService", func() {
	var (
		fakeClient *fake.EthClient
		chain      *ethereum.ChainClient
		key        *ecdsa.PrivateKey
		credential *ethereum.Credential
		service    *ethereum.RelayService
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		testErr = errors.New("test error")

		fakeClient.BlockNumberReturns(1, nil)
		fakeClient.ChainIDReturns(big.NewInt(1337), nil)
		fakeClient.EstimateGasReturns(50_000, nil)
		fakeClient.HeaderByNumberReturns(&types.Header{BaseFee: big.NewInt(1_000_000_000)}, nil)
		fakeClient.SuggestGasTipCapReturns(big.NewInt(1_000_000_000), nil)

		var err error
		chain, err = ethereum.NewChainClient(ctx, zap.NewNop().Sugar(), fakeClient, nil)
		Expect(err).NotTo(HaveOccurred())

		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		credential = ethereum.NewCredentialFromKey(key)
	})

	JustBeforeEach(func() {
		service = ethereum.NewRelayService(zap.NewNop().Sugar(), fakeClient, chain, contractAddress, evotingABI(), credential, 5*time.Millisecond)
	})

	Describe("Submit", func() {
		It("should record the hash of the broadcast transaction", func() {
			var recorded common.Hash
			hash, err := service.Submit(ctx, ethereum.MethodAddCandidate, []any{big.NewInt(7), "Ada"}, func(h common.Hash) error {
				recorded = h
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				return nil
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(recorded).To(Equal(hash))

			_, sent := fakeClient.SendTransactionArgsForCall(0)
			Expect(sent.Hash()).To(Equal(hash))
			Expect(*sent.To()).To(Equal(contractAddress))
		})

		It("should hand back the hash when recording fails", func() {
			hash, err := service.Submit(ctx, ethereum.MethodAddCandidate, []any{big.NewInt(7), "Ada"}, func(common.Hash) error {
				return testErr
			})

			Expect(err).To(MatchError(testErr))
			Expect(hash).NotTo(Equal(common.Hash{}))
		})

		It("should not call record when the node rejects the transaction", func() {
			fakeClient.SendTransactionReturns(testErr)

			called := false
			_, err := service.Submit(ctx, ethereum.MethodAddCandidate, []any{big.NewInt(7), "Ada"}, func(common.Hash) error {
				called = true
				return nil
			})

			Expect(err).To(MatchError(testErr))
			Expect(called).To(BeFalse())
		})

		It("should keep broadcasting and recording when the caller cancels", func() {
			callerCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			var sendErr error
			fakeClient.SendTransactionStub = func(sendCtx context.Context, _ *types.Transaction) error {
				cancel()
				sendErr = sendCtx.Err()
				return nil
			}

			recorded := false
			_, err := service.Submit(callerCtx, ethereum.MethodAddCandidate, []any{big.NewInt(7), "Ada"}, func(common.Hash) error {
				recorded = true
				return nil
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(sendErr).NotTo(HaveOccurred())
			Expect(recorded).To(BeTrue())
		})

		It("should give concurrent submissions distinct nonces", func() {
			fakeClient.PendingNonceAtStub = func(context.Context, common.Address) (uint64, error) {
				return uint64(fakeClient.SendTransactionCallCount()), nil
			}

			const submissions = 8
			var wg sync.WaitGroup
			for i := 0; i < submissions; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					_, err := service.Submit(ctx, ethereum.MethodAddCandidate, []any{big.NewInt(7), "Candidate"}, nil)
					Expect(err).NotTo(HaveOccurred())
				}(i)
			}
			wg.Wait()

			Expect(fakeClient.SendTransactionCallCount()).To(Equal(submissions))
			nonces := map[uint64]bool{}
			for i := 0; i < submissions; i++ {
				_, sent := fakeClient.SendTransactionArgsForCall(i)
				nonces[sent.Nonce()] = true
			}
			Expect(nonces).To(HaveLen(submissions))
		})

		When("no credential is configured", func() {
			BeforeEach(func() {
				credential = nil
			})

			It("should fail before building anything", func() {
				_, err := service.Submit(ctx, ethereum.MethodAddCandidate, []any{big.NewInt(7), "Ada"}, nil)
				Expect(err).To(MatchError(ethereum.ErrNoCredential))
				Expect(fakeClient.PendingNonceAtCallCount()).To(Equal(0))
			})
		})
	})

	Describe("RevertReason", func() {
		var (
			hash    common.Hash
			receipt *types.Receipt
		)

		BeforeEach(func() {
			receipt = &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(55)}
		})

		JustBeforeEach(func() {
			to := contractAddress
			signed, err := types.SignNewTx(key, types.LatestSignerForChainID(big.NewInt(1337)), &types.DynamicFeeTx{
				ChainID:   big.NewInt(1337),
				Nonce:     1,
				GasTipCap: big.NewInt(1),
				GasFeeCap: big.NewInt(10),
				Gas:       60_000,
				To:        &to,
				Data:      []byte{0x01},
			})
			Expect(err).NotTo(HaveOccurred())
			hash = signed.Hash()
			fakeClient.TransactionByHashReturns(signed, false, nil)
		})

		It("should replay the transaction at its block to recover the reason", func() {
			fakeClient.CallContractReturns(nil, rpcDataError{message: "execution reverted", data: revertPayload("already voted")})

			Expect(service.RevertReason(ctx, hash, receipt)).To(Equal("already voted"))

			_, msg, block := fakeClient.CallContractArgsForCall(0)
			Expect(block).To(Equal(big.NewInt(55)))
			Expect(msg.From).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))
			Expect(msg.GasPrice).To(BeNil())
			Expect(msg.GasFeeCap).To(Equal(big.NewInt(10)))
		})

		It("should fall back to a generic description when the replay succeeds", func() {
			fakeClient.CallContractReturns(nil, nil)

			Expect(service.RevertReason(ctx, hash, receipt)).To(Equal("transaction " + hash.Hex() + " failed in block 55"))
		})

		It("should fall back when the transaction cannot be loaded", func() {
			fakeClient.TransactionByHashReturns(nil, false, testErr)

			Expect(service.RevertReason(ctx, hash, receipt)).To(ContainSubstring("failed in block 55"))
			Expect(fakeClient.CallContractCallCount()).To(Equal(0))
		})
	})

	Describe("FetchReceipts", func() {
		It("should return included receipts and skip pending ones", func() {
			included := common.HexToHash("0x01")
			pending := common.HexToHash("0x02")
			fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				if hash == included {
					return &types.Receipt{TxHash: included, Status: types.ReceiptStatusSuccessful}, nil
				}
				return nil, geth.NotFound
			}

			receipts, err := service.FetchReceipts(ctx, []common.Hash{included, pending})
			Expect(err).NotTo(HaveOccurred())
			Expect(receipts).To(HaveLen(1))
			Expect(receipts[0].TxHash).To(Equal(included))
		})

		It("should join lookup failures", func() {
			fakeClient.TransactionReceiptReturns(nil, testErr)

			receipts, err := service.FetchReceipts(ctx, []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02")})
			Expect(err).To(MatchError(testErr))
			Expect(err.Error()).To(ContainSubstring(common.HexToHash("0x01").Hex()))
			Expect(err.Error()).To(ContainSubstring(common.HexToHash("0x02").Hex()))
			Expect(receipts).To(BeEmpty())
		})
	})

	Describe("VoteCount", func() {
		It("should read the tally from the contract", func() {
			output, err := evotingABI().Methods[ethereum.MethodGetVoteCount].Outputs.Pack(big.NewInt(12))
			Expect(err).NotTo(HaveOccurred())
			fakeClient.CallContractReturns(output, nil)

			count, err := service.VoteCount(ctx, big.NewInt(7), big.NewInt(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(big.NewInt(12)))
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
		})

		It("should report read failures", func() {
			fakeClient.CallContractReturns(nil, testErr)

			_, err := service.VoteCount(ctx, big.NewInt(7), big.NewInt(3))
			Expect(err).To(MatchError(ethereum.ErrRead))
		})
	})
})
