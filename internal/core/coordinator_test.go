package core_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"beevs/internal/core"
	"beevs/internal/core/fake"
	"beevs/internal/ethereum"
	"beevs/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var _ = Describe("RelayCoordinator", func() {
	var (
		fakeRepo    *fake.Repository
		fakeRelayer *fake.Relayer
		fakeDecoder *fake.EventDecoder
		registry    *prometheus.Registry
		coordinator *core.RelayCoordinator
		ctx         context.Context
		testErr     error
		txHash      common.Hash
		receipt     *types.Receipt
		election    repository.Election
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeRelayer = new(fake.Relayer)
		fakeDecoder = new(fake.EventDecoder)
		registry = prometheus.NewRegistry()
		ctx = context.Background()
		testErr = errors.New("test error")
		txHash = common.HexToHash("0xbeef")

		coordinator = core.NewRelayCoordinator(zap.NewNop().Sugar(), fakeRepo, fakeRelayer, fakeDecoder, core.NewMetrics(registry), time.Second)

		election = repository.Election{
			ID:        1,
			Title:     "Faculty Council",
			StartsAt:  time.Unix(1_700_000_000, 0),
			EndsAt:    time.Unix(1_700_086_400, 0),
			OnchainID: ptr("7"),
		}
		fakeRepo.GetElectionReturns(election, nil)

		fakeRepo.CreateAuditStub = func(_ context.Context, audit *repository.TransactionAudit) error {
			audit.ID = "audit-1"
			audit.Status = repository.StatusPending
			return nil
		}

		fakeRelayer.SubmitStub = func(_ context.Context, _ string, _ []any, record func(common.Hash) error) (common.Hash, error) {
			return txHash, record(txHash)
		}

		receipt = &types.Receipt{TxHash: txHash, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(42)}
		fakeRelayer.AwaitReceiptReturns(receipt, true, nil)
	})

	Describe("CreateElection", func() {
		BeforeEach(func() {
			election.OnchainID = nil
			fakeRepo.GetElectionReturns(election, nil)
			fakeDecoder.ElectionsCreatedReturns([]ethereum.ElectionCreated{{ElectionID: big.NewInt(9), Title: "Faculty Council"}}, nil)
		})

		It("should relay the election and link the decoded id", func() {
			record, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.ID).To(Equal("audit-1"))
			Expect(record.Action).To(Equal(repository.ActionCreateElection))
			Expect(record.TxHash).To(Equal(txHash.Hex()))
			Expect(record.Status).To(Equal(repository.StatusConfirmed))
			Expect(record.BlockNumber).To(Equal(ptr(uint64(42))))
			Expect(record.OnchainID).To(Equal(ptr("9")))

			_, method, args, _ := fakeRelayer.SubmitArgsForCall(0)
			Expect(method).To(Equal(ethereum.MethodCreateElection))
			Expect(args).To(Equal([]any{"Faculty Council", big.NewInt(1_700_000_000), big.NewInt(1_700_086_400)}))

			_, audit := fakeRepo.CreateAuditArgsForCall(0)
			Expect(audit.Action).To(Equal(repository.ActionCreateElection))
			Expect(audit.ElectionID).To(Equal(ptr(uint(1))))
			Expect(audit.TxHash).To(Equal(txHash.Hex()))
			Expect(audit.DedupKey).To(Equal(ptr("create-election:1")))

			_, confirmation := fakeRepo.ConfirmAuditArgsForCall(0)
			Expect(confirmation.TxHash).To(Equal(txHash.Hex()))
			Expect(confirmation.BlockNumber).To(Equal(uint64(42)))
			Expect(confirmation.Receipt).To(ContainSubstring(`"transactionHash":"` + txHash.Hex() + `"`))
			Expect(confirmation.Link).To(Equal(repository.ElectionLink(1, "9")))

			Expect(transactionsTotal(registry, repository.ActionCreateElection, "confirmed")).To(Equal(1.0))
			Expect(confirmationSamples(registry, repository.ActionCreateElection)).To(Equal(uint64(1)))
		})

		It("should wait with the default timeout unless one is given", func() {
			_, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).NotTo(HaveOccurred())
			_, _, timeout := fakeRelayer.AwaitReceiptArgsForCall(0)
			Expect(timeout).To(Equal(time.Second))

			fakeRepo.CountAuditsByDedupKeyReturns(0, nil)
			_, err = coordinator.CreateElection(ctx, 1, 5*time.Second)
			Expect(err).NotTo(HaveOccurred())
			_, _, timeout = fakeRelayer.AwaitReceiptArgsForCall(1)
			Expect(timeout).To(Equal(5 * time.Second))
		})

		It("should refuse an election that is already on chain", func() {
			election.OnchainID = ptr("9")
			fakeRepo.GetElectionReturns(election, nil)

			_, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).To(MatchError(core.ErrAlreadyRelayed))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
		})

		It("should refuse an election with a previous transaction", func() {
			fakeRepo.CountAuditsByDedupKeyReturns(1, nil)

			_, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).To(MatchError(core.ErrAlreadyRelayed))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))

			_, key := fakeRepo.CountAuditsByDedupKeyArgsForCall(0)
			Expect(key).To(Equal("create-election:1"))
		})

		It("should report a missing election", func() {
			fakeRepo.GetElectionReturns(repository.Election{}, repository.ErrElectionNotFound)

			_, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).To(MatchError(repository.ErrElectionNotFound))
		})

		It("should leave the audit pending when no receipt arrives in time", func() {
			fakeRelayer.AwaitReceiptReturns(nil, false, nil)

			record, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(repository.StatusPending))
			Expect(record.TxHash).To(Equal(txHash.Hex()))
			Expect(record.BlockNumber).To(BeNil())
			Expect(fakeRepo.ConfirmAuditCallCount()).To(Equal(0))
			Expect(transactionsTotal(registry, repository.ActionCreateElection, "pending")).To(Equal(1.0))
		})

		It("should return the pending record with the error when waiting fails", func() {
			fakeRelayer.AwaitReceiptReturns(nil, false, testErr)

			record, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).To(MatchError(testErr))
			Expect(record.Status).To(Equal(repository.StatusPending))
			Expect(fakeRepo.ConfirmAuditCallCount()).To(Equal(0))
		})

		It("should not record anything when the node rejects the call", func() {
			fakeRelayer.SubmitReturns(common.Hash{}, &ethereum.ContractRevertedError{Reason: "window closed"})

			_, err := coordinator.CreateElection(ctx, 1, 0)
			var reverted *ethereum.ContractRevertedError
			Expect(errors.As(err, &reverted)).To(BeTrue())
			Expect(reverted.Reason).To(Equal("window closed"))
			Expect(fakeRepo.CreateAuditCallCount()).To(Equal(0))
			Expect(transactionsTotal(registry, repository.ActionCreateElection, "reverted")).To(Equal(1.0))
		})

		It("should count other submission failures as failed", func() {
			fakeRelayer.SubmitReturns(common.Hash{}, ethereum.ErrGasEstimation)

			_, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).To(MatchError(ethereum.ErrGasEstimation))
			Expect(transactionsTotal(registry, repository.ActionCreateElection, "failed")).To(Equal(1.0))
		})

		It("should keep a failed transaction pending and surface its revert reason", func() {
			receipt.Status = types.ReceiptStatusFailed
			fakeRelayer.RevertReasonReturns("title required")

			record, err := coordinator.CreateElection(ctx, 1, 0)
			var reverted *ethereum.ContractRevertedError
			Expect(errors.As(err, &reverted)).To(BeTrue())
			Expect(reverted.Reason).To(Equal("title required"))
			Expect(record.Status).To(Equal(repository.StatusPending))
			Expect(fakeRepo.ConfirmAuditCallCount()).To(Equal(0))

			_, hash, failed := fakeRelayer.RevertReasonArgsForCall(0)
			Expect(hash).To(Equal(txHash))
			Expect(failed).To(BeIdenticalTo(receipt))

			Expect(fakeRepo.MarkRevertedCallCount()).To(Equal(1))
			_, reversion := fakeRepo.MarkRevertedArgsForCall(0)
			Expect(reversion.TxHash).To(Equal(txHash.Hex()))
			Expect(reversion.BlockNumber).To(Equal(uint64(42)))
			Expect(reversion.Reason).To(Equal("title required"))
			Expect(reversion.Receipt).To(ContainSubstring(`"transactionHash":"` + txHash.Hex() + `"`))
			Expect(record.RevertReason).To(Equal(ptr("title required")))
		})

		It("should still surface the revert when it cannot be stored", func() {
			receipt.Status = types.ReceiptStatusFailed
			fakeRelayer.RevertReasonReturns("title required")
			fakeRepo.MarkRevertedReturns(testErr)

			record, err := coordinator.CreateElection(ctx, 1, 0)
			var reverted *ethereum.ContractRevertedError
			Expect(errors.As(err, &reverted)).To(BeTrue())
			Expect(record.RevertReason).To(BeNil())
		})

		It("should record the audit even when the caller goes away after broadcast", func() {
			callerCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			fakeRelayer.SubmitStub = func(_ context.Context, _ string, _ []any, record func(common.Hash) error) (common.Hash, error) {
				cancel()
				return txHash, record(txHash)
			}
			fakeRepo.CreateAuditStub = func(auditCtx context.Context, audit *repository.TransactionAudit) error {
				if err := auditCtx.Err(); err != nil {
					return err
				}
				audit.ID = "audit-1"
				audit.Status = repository.StatusPending
				return nil
			}
			fakeRelayer.AwaitReceiptReturns(nil, false, nil)

			record, err := coordinator.CreateElection(callerCtx, 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal("audit-1"))
			Expect(record.TxHash).To(Equal(txHash.Hex()))
			Expect(fakeRepo.CreateAuditCallCount()).To(Equal(1))
		})

		It("should confirm without a link when the receipt cannot be decoded", func() {
			fakeDecoder.ElectionsCreatedReturns(nil, ethereum.ErrDecode)

			record, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(repository.StatusConfirmed))
			Expect(record.OnchainID).To(BeNil())

			_, confirmation := fakeRepo.ConfirmAuditArgsForCall(0)
			Expect(confirmation.Link).To(BeNil())
		})

		It("should confirm without a link when the event is missing", func() {
			fakeDecoder.ElectionsCreatedReturns([]ethereum.ElectionCreated{}, nil)

			record, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.OnchainID).To(BeNil())
		})

		It("should return the stored record when another pass confirmed it first", func() {
			fakeRepo.ConfirmAuditReturns(repository.ErrAuditNotPending)
			fakeRepo.GetAuditByTxHashReturns(repository.TransactionAudit{
				ID:          "audit-1",
				TxHash:      txHash.Hex(),
				Action:      repository.ActionCreateElection,
				Status:      repository.StatusConfirmed,
				BlockNumber: ptr(uint64(42)),
			}, nil)

			record, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(repository.StatusConfirmed))
			Expect(record.BlockNumber).To(Equal(ptr(uint64(42))))
		})

		It("should report storage failures while confirming", func() {
			fakeRepo.ConfirmAuditReturns(testErr)

			record, err := coordinator.CreateElection(ctx, 1, 0)
			Expect(err).To(MatchError(testErr))
			Expect(record.Status).To(Equal(repository.StatusPending))
		})
	})

	Describe("AddCandidate", func() {
		var candidate repository.Candidate

		BeforeEach(func() {
			candidate = repository.Candidate{ID: 3, ElectionID: 1, PostID: 2, Name: "Ada"}
			fakeRepo.GetCandidateReturns(candidate, nil)
			fakeRepo.GetPostReturns(repository.Post{ID: 2, ElectionID: 1, Title: "President"}, nil)
			fakeDecoder.CandidatesAddedReturns([]ethereum.CandidateAdded{{ElectionID: big.NewInt(7), CandidateID: big.NewInt(11), Name: "Ada"}}, nil)
		})

		It("should relay the candidate under the on-chain election", func() {
			record, err := coordinator.AddCandidate(ctx, 3, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.OnchainID).To(Equal(ptr("11")))
			Expect(record.CandidateID).To(Equal(ptr(uint(3))))

			_, method, args, _ := fakeRelayer.SubmitArgsForCall(0)
			Expect(method).To(Equal(ethereum.MethodAddCandidate))
			Expect(args).To(Equal([]any{big.NewInt(7), "Ada"}))

			_, audit := fakeRepo.CreateAuditArgsForCall(0)
			Expect(audit.DedupKey).To(Equal(ptr("add-candidate:3")))

			_, confirmation := fakeRepo.ConfirmAuditArgsForCall(0)
			Expect(confirmation.Link).To(Equal(repository.CandidateLink(3, "11")))
		})

		It("should refuse a candidate whose election is not on chain", func() {
			election.OnchainID = nil
			fakeRepo.GetElectionReturns(election, nil)

			_, err := coordinator.AddCandidate(ctx, 3, 0)
			Expect(err).To(MatchError(core.ErrNotOnchain))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
		})

		It("should refuse a candidate already on chain", func() {
			candidate.OnchainID = ptr("11")
			fakeRepo.GetCandidateReturns(candidate, nil)

			_, err := coordinator.AddCandidate(ctx, 3, 0)
			Expect(err).To(MatchError(core.ErrAlreadyRelayed))
		})

		It("should refuse a post from another election", func() {
			fakeRepo.GetPostReturns(repository.Post{ID: 2, ElectionID: 4}, nil)

			_, err := coordinator.AddCandidate(ctx, 3, 0)
			Expect(err).To(MatchError(core.ErrInvalidSelection))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
		})
	})

	Describe("RegisterVoter", func() {
		var (
			voter     repository.Voter
			voterHash common.Hash
		)

		BeforeEach(func() {
			voter = repository.Voter{ID: 5, ElectionID: 1, Name: "Grace", RegistrationNumber: "S-1001"}
			voterHash = ethereum.VoterHash(big.NewInt(7), "S-1001")
			fakeRepo.GetVoterReturns(voter, nil)
			fakeDecoder.VotersRegisteredReturns([]ethereum.VoterRegistered{{ElectionID: big.NewInt(7), VoterHash: voterHash}}, nil)
		})

		It("should register the voter hash and link it", func() {
			record, err := coordinator.RegisterVoter(ctx, 5, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.VoterID).To(Equal(ptr(uint(5))))
			Expect(record.OnchainID).To(Equal(ptr(voterHash.Hex())))

			_, method, args, _ := fakeRelayer.SubmitArgsForCall(0)
			Expect(method).To(Equal(ethereum.MethodRegisterVoter))
			Expect(args).To(Equal([]any{big.NewInt(7), [32]byte(voterHash)}))

			_, audit := fakeRepo.CreateAuditArgsForCall(0)
			Expect(audit.DedupKey).To(Equal(ptr("register-voter:7:" + voterHash.Hex())))

			_, confirmation := fakeRepo.ConfirmAuditArgsForCall(0)
			Expect(confirmation.Link).To(Equal(repository.VoterLink(5, voterHash.Hex())))
		})

		It("should refuse a voter already registered", func() {
			voter.OnchainHash = ptr(voterHash.Hex())
			fakeRepo.GetVoterReturns(voter, nil)

			_, err := coordinator.RegisterVoter(ctx, 5, 0)
			Expect(err).To(MatchError(core.ErrAlreadyRelayed))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
		})
	})

	Describe("CastVote", func() {
		var (
			voter      repository.Voter
			voterHash  common.Hash
			president  repository.Candidate
			secretary  repository.Candidate
			candidates []repository.Candidate
		)

		BeforeEach(func() {
			voterHash = ethereum.VoterHash(big.NewInt(7), "S-1001")
			voter = repository.Voter{ID: 5, ElectionID: 1, RegistrationNumber: "S-1001", OnchainHash: ptr(voterHash.Hex())}
			president = repository.Candidate{ID: 3, ElectionID: 1, PostID: 2, Name: "Ada", OnchainID: ptr("11")}
			secretary = repository.Candidate{ID: 4, ElectionID: 1, PostID: 6, Name: "Linus", OnchainID: ptr("12")}
			candidates = []repository.Candidate{president, secretary}

			fakeRepo.GetVoterReturns(voter, nil)
			fakeRepo.GetCandidatesStub = func(context.Context, []uint) ([]repository.Candidate, error) {
				return candidates, nil
			}
			fakeDecoder.VotesCastReturns([]ethereum.VoteCast{{ElectionID: big.NewInt(7), VoterHash: voterHash}}, nil)
		})

		It("should cast the ballot in the requested order", func() {
			record, err := coordinator.CastVote(ctx, 5, []uint{4, 3}, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(repository.StatusConfirmed))
			Expect(record.CandidateID).To(BeNil())
			Expect(record.OnchainID).To(BeNil())

			_, method, args, _ := fakeRelayer.SubmitArgsForCall(0)
			Expect(method).To(Equal(ethereum.MethodCastVote))
			Expect(args).To(Equal([]any{big.NewInt(7), [32]byte(voterHash), []*big.Int{big.NewInt(12), big.NewInt(11)}}))

			_, audit := fakeRepo.CreateAuditArgsForCall(0)
			Expect(audit.Action).To(Equal(repository.ActionCastVote))
			Expect(audit.VoterID).To(Equal(ptr(uint(5))))
			Expect(audit.DedupKey).To(Equal(ptr("cast-vote:7:" + voterHash.Hex())))

			_, confirmation := fakeRepo.ConfirmAuditArgsForCall(0)
			Expect(confirmation.Link).To(BeNil())
			Expect(transactionsTotal(registry, repository.ActionCastVote, "confirmed")).To(Equal(1.0))
		})

		It("should reference the candidate of a single choice ballot", func() {
			candidates = []repository.Candidate{president}

			record, err := coordinator.CastVote(ctx, 5, []uint{3}, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.CandidateID).To(Equal(ptr(uint(3))))
		})

		It("should refuse a candidate that is not on chain before building anything", func() {
			secretary.OnchainID = nil
			candidates = []repository.Candidate{president, secretary}

			_, err := coordinator.CastVote(ctx, 5, []uint{3, 4}, 0)
			Expect(err).To(MatchError(core.ErrNotOnchain))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
			Expect(fakeRepo.CreateAuditCallCount()).To(Equal(0))
		})

		It("should refuse a voter that is not registered on chain", func() {
			voter.OnchainHash = nil
			fakeRepo.GetVoterReturns(voter, nil)

			_, err := coordinator.CastVote(ctx, 5, []uint{3}, 0)
			Expect(err).To(MatchError(core.ErrNotOnchain))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
		})

		It("should refuse an empty ballot", func() {
			_, err := coordinator.CastVote(ctx, 5, nil, 0)
			Expect(err).To(MatchError(core.ErrInvalidSelection))
			Expect(fakeRepo.GetVoterCallCount()).To(Equal(0))
		})

		It("should refuse two candidates for the same post", func() {
			secretary.PostID = president.PostID
			candidates = []repository.Candidate{president, secretary}

			_, err := coordinator.CastVote(ctx, 5, []uint{3, 4}, 0)
			Expect(err).To(MatchError(core.ErrInvalidSelection))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
		})

		It("should refuse a candidate from another election", func() {
			secretary.ElectionID = 2
			candidates = []repository.Candidate{president, secretary}

			_, err := coordinator.CastVote(ctx, 5, []uint{3, 4}, 0)
			Expect(err).To(MatchError(core.ErrInvalidSelection))
		})

		It("should refuse the same candidate twice", func() {
			candidates = []repository.Candidate{president}

			_, err := coordinator.CastVote(ctx, 5, []uint{3, 3}, 0)
			Expect(err).To(MatchError(core.ErrInvalidSelection))
		})

		It("should report unknown candidates", func() {
			fakeRepo.GetCandidatesStub = nil
			fakeRepo.GetCandidatesReturns(nil, repository.ErrCandidateNotFound)

			_, err := coordinator.CastVote(ctx, 5, []uint{3, 99}, 0)
			Expect(err).To(MatchError(repository.ErrCandidateNotFound))
		})

		It("should refuse a voter who already voted", func() {
			fakeRepo.CountAuditsByDedupKeyReturns(1, nil)

			_, err := coordinator.CastVote(ctx, 5, []uint{3, 4}, 0)
			Expect(err).To(MatchError(core.ErrAlreadyVoted))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(0))
		})

		It("should let only one of two concurrent ballots through", func() {
			release := make(chan struct{})
			fakeRelayer.SubmitStub = func(_ context.Context, _ string, _ []any, record func(common.Hash) error) (common.Hash, error) {
				<-release
				return txHash, record(txHash)
			}

			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				_, err := coordinator.CastVote(ctx, 5, []uint{3, 4}, 0)
				done <- err
			}()

			Eventually(fakeRelayer.SubmitCallCount).Should(Equal(1))

			_, err := coordinator.CastVote(ctx, 5, []uint{3, 4}, 0)
			Expect(err).To(MatchError(core.ErrAlreadyVoted))

			close(release)
			Eventually(done).Should(Receive(BeNil()))
			Expect(fakeRelayer.SubmitCallCount()).To(Equal(1))
			Expect(fakeRepo.CreateAuditCallCount()).To(Equal(1))
		})
	})

	Describe("GetTally", func() {
		It("should read the count from the contract", func() {
			fakeRelayer.VoteCountReturns(big.NewInt(12), nil)

			count, err := coordinator.GetTally(ctx, big.NewInt(7), big.NewInt(11))
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(big.NewInt(12)))

			_, electionID, candidateID := fakeRelayer.VoteCountArgsForCall(0)
			Expect(electionID).To(Equal(big.NewInt(7)))
			Expect(candidateID).To(Equal(big.NewInt(11)))
		})

		It("should report read failures", func() {
			fakeRelayer.VoteCountReturns(nil, ethereum.ErrRead)

			_, err := coordinator.GetTally(ctx, big.NewInt(7), big.NewInt(11))
			Expect(err).To(MatchError(ethereum.ErrRead))
		})
	})

	Describe("Reconcile", func() {
		var audit repository.TransactionAudit

		BeforeEach(func() {
			audit = repository.TransactionAudit{
				ID:         "audit-1",
				ElectionID: ptr(uint(1)),
				Action:     repository.ActionCreateElection,
				TxHash:     txHash.Hex(),
				Status:     repository.StatusPending,
				CreatedAt:  time.Now().Add(-time.Minute),
			}
			fakeRepo.GetAuditByTxHashReturns(audit, nil)
			fakeDecoder.ElectionsCreatedReturns([]ethereum.ElectionCreated{{ElectionID: big.NewInt(9)}}, nil)
		})

		It("should confirm a pending audit once its receipt is available", func() {
			record, err := coordinator.Reconcile(ctx, txHash.Hex(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(repository.StatusConfirmed))
			Expect(record.OnchainID).To(Equal(ptr("9")))

			_, hash, _ := fakeRelayer.AwaitReceiptArgsForCall(0)
			Expect(hash).To(Equal(txHash))

			_, confirmation := fakeRepo.ConfirmAuditArgsForCall(0)
			Expect(confirmation.Link).To(Equal(repository.ElectionLink(1, "9")))
		})

		It("should return a confirmed audit as it is", func() {
			audit.Status = repository.StatusConfirmed
			audit.BlockNumber = ptr(uint64(42))
			fakeRepo.GetAuditByTxHashReturns(audit, nil)

			record, err := coordinator.Reconcile(ctx, txHash.Hex(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(repository.StatusConfirmed))
			Expect(fakeRelayer.AwaitReceiptCallCount()).To(Equal(0))
		})

		It("should keep the audit pending while the transaction is not included", func() {
			fakeRelayer.AwaitReceiptReturns(nil, false, nil)

			record, err := coordinator.Reconcile(ctx, txHash.Hex(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(repository.StatusPending))
			Expect(fakeRepo.ConfirmAuditCallCount()).To(Equal(0))
		})

		It("should return a reverted audit without asking the node again", func() {
			audit.RevertReason = ptr("title required")
			fakeRepo.GetAuditByTxHashReturns(audit, nil)

			record, err := coordinator.Reconcile(ctx, txHash.Hex(), 0)
			var reverted *ethereum.ContractRevertedError
			Expect(errors.As(err, &reverted)).To(BeTrue())
			Expect(reverted.Reason).To(Equal("title required"))
			Expect(record.Status).To(Equal(repository.StatusPending))
			Expect(fakeRelayer.AwaitReceiptCallCount()).To(Equal(0))
			Expect(fakeRelayer.RevertReasonCallCount()).To(Equal(0))
		})

		It("should report an unknown hash", func() {
			fakeRepo.GetAuditByTxHashReturns(repository.TransactionAudit{}, repository.ErrAuditNotFound)

			_, err := coordinator.Reconcile(ctx, txHash.Hex(), 0)
			Expect(err).To(MatchError(repository.ErrAuditNotFound))
		})
	})

	Describe("ReconcilePending", func() {
		var included, failed, waiting common.Hash

		BeforeEach(func() {
			included = common.HexToHash("0x01")
			failed = common.HexToHash("0x02")
			waiting = common.HexToHash("0x03")

			fakeRepo.ListPendingAuditsReturns([]repository.TransactionAudit{
				{ID: "a", Action: repository.ActionCastVote, TxHash: included.Hex(), Status: repository.StatusPending},
				{ID: "b", Action: repository.ActionCastVote, TxHash: failed.Hex(), Status: repository.StatusPending},
				{ID: "c", Action: repository.ActionCastVote, TxHash: waiting.Hex(), Status: repository.StatusPending},
			}, nil)
			fakeRelayer.FetchReceiptsReturns([]*types.Receipt{
				{TxHash: included, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(40)},
				{TxHash: failed, Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(41)},
			}, nil)
			fakeRelayer.RevertReasonReturns("already voted")
		})

		It("should fetch every pending receipt once and settle the included ones", func() {
			summary, err := coordinator.ReconcilePending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary).To(Equal(core.ReconcileSummary{Checked: 3, Confirmed: 1, Pending: 1, Reverted: 1}))

			_, hashes := fakeRelayer.FetchReceiptsArgsForCall(0)
			Expect(hashes).To(Equal([]common.Hash{included, failed, waiting}))

			Expect(fakeRepo.ConfirmAuditCallCount()).To(Equal(1))
			_, confirmation := fakeRepo.ConfirmAuditArgsForCall(0)
			Expect(confirmation.TxHash).To(Equal(included.Hex()))
			Expect(confirmation.BlockNumber).To(Equal(uint64(40)))
		})

		It("should not replay a revert it already stored", func() {
			audits := []repository.TransactionAudit{
				{ID: "b", Action: repository.ActionCastVote, TxHash: failed.Hex(), Status: repository.StatusPending},
				{ID: "c", Action: repository.ActionCastVote, TxHash: waiting.Hex(), Status: repository.StatusPending},
			}
			fakeRepo.MarkRevertedStub = func(_ context.Context, reversion repository.Reversion) error {
				for i := range audits {
					if audits[i].TxHash == reversion.TxHash {
						audits[i].RevertReason = ptr(reversion.Reason)
					}
				}
				return nil
			}
			fakeRepo.ListPendingAuditsStub = func(context.Context) ([]repository.TransactionAudit, error) {
				open := []repository.TransactionAudit{}
				for _, audit := range audits {
					if audit.RevertReason == nil {
						open = append(open, audit)
					}
				}
				return open, nil
			}

			first, err := coordinator.ReconcilePending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(core.ReconcileSummary{Checked: 2, Pending: 1, Reverted: 1}))

			second, err := coordinator.ReconcilePending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(core.ReconcileSummary{Checked: 1, Pending: 1}))

			Expect(fakeRelayer.RevertReasonCallCount()).To(Equal(1))
			Expect(fakeRepo.MarkRevertedCallCount()).To(Equal(1))
			_, hashes := fakeRelayer.FetchReceiptsArgsForCall(1)
			Expect(hashes).To(Equal([]common.Hash{waiting}))
		})

		It("should still settle what it could fetch when some lookups fail", func() {
			fakeRelayer.FetchReceiptsReturns([]*types.Receipt{
				{TxHash: included, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(40)},
			}, testErr)

			summary, err := coordinator.ReconcilePending(ctx)
			Expect(err).To(MatchError(testErr))
			Expect(summary.Confirmed).To(Equal(1))
			Expect(summary.Pending).To(Equal(2))
		})

		It("should do nothing without pending audits", func() {
			fakeRepo.ListPendingAuditsReturns([]repository.TransactionAudit{}, nil)

			summary, err := coordinator.ReconcilePending(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary).To(Equal(core.ReconcileSummary{}))
			Expect(fakeRelayer.FetchReceiptsCallCount()).To(Equal(0))
		})

		It("should report listing failures", func() {
			fakeRepo.ListPendingAuditsReturns(nil, testErr)

			_, err := coordinator.ReconcilePending(ctx)
			Expect(err).To(MatchError(testErr))
		})
	})

	Describe("RunReconciler", func() {
		It("should reconcile on every tick until cancelled", func() {
			fakeRepo.ListPendingAuditsReturns([]repository.TransactionAudit{}, nil)
			running, cancel := context.WithCancel(ctx)

			stopped := make(chan struct{})
			go func() {
				defer close(stopped)
				coordinator.RunReconciler(running, 5*time.Millisecond)
			}()

			Eventually(fakeRepo.ListPendingAuditsCallCount).Should(BeNumerically(">=", 2))
			cancel()
			Eventually(stopped).Should(BeClosed())
		})
	})
})
