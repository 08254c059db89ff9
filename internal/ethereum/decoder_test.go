package ethereum_test

import (
	"math/big"

	"beevs/internal/ethereum"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EventDecoder", func() {
	var (
		contractABI abi.ABI
		decoder     *ethereum.EventDecoder
		receipt     *types.Receipt
		voterHash   common.Hash
	)

	BeforeEach(func() {
		contractABI = evotingABI()
		decoder = ethereum.NewEventDecoder(contractAddress, contractABI)
		receipt = &types.Receipt{Status: types.ReceiptStatusSuccessful}
		voterHash = ethereum.VoterHash(big.NewInt(7), "S-1001")
	})

	It("should decode an election creation", func() {
		receipt.Logs = []*types.Log{
			eventLog(contractABI, contractAddress, ethereum.EventElectionCreated, []common.Hash{uintTopic(7)}, "Faculty Council"),
		}

		events, err := decoder.ElectionsCreated(receipt)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(Equal([]ethereum.ElectionCreated{{ElectionID: big.NewInt(7), Title: "Faculty Council"}}))
	})

	It("should decode candidate additions with both indexed ids", func() {
		receipt.Logs = []*types.Log{
			eventLog(contractABI, contractAddress, ethereum.EventCandidateAdded, []common.Hash{uintTopic(7), uintTopic(3)}, "Ada"),
		}

		events, err := decoder.CandidatesAdded(receipt)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(HaveLen(1))
		Expect(events[0].ElectionID).To(Equal(big.NewInt(7)))
		Expect(events[0].CandidateID).To(Equal(big.NewInt(3)))
		Expect(events[0].Name).To(Equal("Ada"))
	})

	It("should decode a voter registration carried only in topics", func() {
		receipt.Logs = []*types.Log{
			eventLog(contractABI, contractAddress, ethereum.EventVoterRegistered, []common.Hash{uintTopic(7), voterHash}),
		}

		events, err := decoder.VotersRegistered(receipt)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(Equal([]ethereum.VoterRegistered{{ElectionID: big.NewInt(7), VoterHash: voterHash}}))
	})

	It("should decode the candidate list of a cast vote", func() {
		receipt.Logs = []*types.Log{
			eventLog(contractABI, contractAddress, ethereum.EventVoteCast, []common.Hash{uintTopic(7), voterHash}, []*big.Int{big.NewInt(3), big.NewInt(9)}),
		}

		events, err := decoder.VotesCast(receipt)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(HaveLen(1))
		Expect(events[0].VoterHash).To(Equal(voterHash))
		Expect(events[0].CandidateIDs).To(Equal([]*big.Int{big.NewInt(3), big.NewInt(9)}))
	})

	It("should ignore logs from other contracts and other events", func() {
		other := common.HexToAddress("0x00000000000000000000000000000000000000ff")
		receipt.Logs = []*types.Log{
			eventLog(contractABI, other, ethereum.EventElectionCreated, []common.Hash{uintTopic(1)}, "Spoofed"),
			eventLog(contractABI, contractAddress, ethereum.EventVoterRegistered, []common.Hash{uintTopic(7), voterHash}),
			eventLog(contractABI, contractAddress, ethereum.EventElectionCreated, []common.Hash{uintTopic(8)}, "Real"),
		}

		events, err := decoder.ElectionsCreated(receipt)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(Equal([]ethereum.ElectionCreated{{ElectionID: big.NewInt(8), Title: "Real"}}))
	})

	It("should return an empty list when nothing matches", func() {
		decoded, err := decoder.Decode(receipt, ethereum.EventVoteCast)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded).NotTo(BeNil())
		Expect(decoded).To(BeEmpty())
	})

	It("should fail on a matching log with the wrong number of topics", func() {
		receipt.Logs = []*types.Log{
			eventLog(contractABI, contractAddress, ethereum.EventCandidateAdded, []common.Hash{uintTopic(7)}, "Ada"),
		}

		_, err := decoder.CandidatesAdded(receipt)
		Expect(err).To(MatchError(ethereum.ErrDecode))
	})

	It("should fail on a matching log with truncated data", func() {
		log := eventLog(contractABI, contractAddress, ethereum.EventElectionCreated, []common.Hash{uintTopic(7)}, "Faculty Council")
		log.Data = log.Data[:40]
		receipt.Logs = []*types.Log{log}

		_, err := decoder.ElectionsCreated(receipt)
		Expect(err).To(MatchError(ethereum.ErrDecode))
	})

	It("should reject unknown events", func() {
		_, err := decoder.Decode(receipt, "Selfdestructed")
		Expect(err).To(MatchError(ethereum.ErrDecode))
	})
})
