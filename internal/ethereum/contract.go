package ethereum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// EVoting contract methods.
const (
	MethodCreateElection = "createElection"
	MethodAddCandidate   = "addCandidate"
	MethodRegisterVoter  = "registerVoter"
	MethodCastVote       = "castVote"
	MethodGetVoteCount   = "getVoteCount"
)

// EVoting contract events.
const (
	EventElectionCreated = "ElectionCreated"
	EventCandidateAdded  = "CandidateAdded"
	EventVoterRegistered = "VoterRegistered"
	EventVoteCast        = "VoteCast"
)

// EVotingABI is the interface of the EVoting contract the relay is built for.
// It is used when no ABI source is configured.
const EVotingABI = `[
  {"type":"function","name":"createElection","stateMutability":"nonpayable",
   "inputs":[{"name":"title","type":"string"},{"name":"startsAt","type":"uint256"},{"name":"endsAt","type":"uint256"}],
   "outputs":[{"name":"electionId","type":"uint256"}]},
  {"type":"function","name":"addCandidate","stateMutability":"nonpayable",
   "inputs":[{"name":"electionId","type":"uint256"},{"name":"name","type":"string"}],
   "outputs":[{"name":"candidateId","type":"uint256"}]},
  {"type":"function","name":"registerVoter","stateMutability":"nonpayable",
   "inputs":[{"name":"electionId","type":"uint256"},{"name":"voterHash","type":"bytes32"}],
   "outputs":[]},
  {"type":"function","name":"castVote","stateMutability":"nonpayable",
   "inputs":[{"name":"electionId","type":"uint256"},{"name":"voterHash","type":"bytes32"},{"name":"candidateIds","type":"uint256[]"}],
   "outputs":[]},
  {"type":"function","name":"getVoteCount","stateMutability":"view",
   "inputs":[{"name":"electionId","type":"uint256"},{"name":"candidateId","type":"uint256"}],
   "outputs":[{"name":"count","type":"uint256"}]},
  {"type":"event","name":"ElectionCreated","anonymous":false,
   "inputs":[{"name":"electionId","type":"uint256","indexed":true},{"name":"title","type":"string","indexed":false}]},
  {"type":"event","name":"CandidateAdded","anonymous":false,
   "inputs":[{"name":"electionId","type":"uint256","indexed":true},{"name":"candidateId","type":"uint256","indexed":true},{"name":"name","type":"string","indexed":false}]},
  {"type":"event","name":"VoterRegistered","anonymous":false,
   "inputs":[{"name":"electionId","type":"uint256","indexed":true},{"name":"voterHash","type":"bytes32","indexed":true}]},
  {"type":"event","name":"VoteCast","anonymous":false,
   "inputs":[{"name":"electionId","type":"uint256","indexed":true},{"name":"voterHash","type":"bytes32","indexed":true},{"name":"candidateIds","type":"uint256[]","indexed":false}]}
]`

var errNoABI error = errors.New("abi json does not contain an abi list")

// LoadABI parses a contract ABI from a file path or an inline JSON document.
// Both a bare ABI list and a compiled artifact with an "abi" (or "data.abi")
// list are accepted. An empty source yields EVotingABI.
func LoadABI(source string) (abi.ABI, error) {
	if source == "" {
		source = EVotingABI
	}

	raw := []byte(source)
	if content, err := os.ReadFile(source); err == nil {
		raw = content
	}

	list, err := abiList(raw)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("extract abi: %w", err)
	}

	parsed, err := abi.JSON(bytes.NewReader(list))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse abi: %w", err)
	}

	return parsed, nil
}

func abiList(raw []byte) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		return raw, nil
	}

	var artifact struct {
		ABI  json.RawMessage `json:"abi"`
		Data struct {
			ABI json.RawMessage `json:"abi"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("decode abi json: %w", err)
	}

	for _, candidate := range []json.RawMessage{artifact.ABI, artifact.Data.ABI} {
		trimmed := bytes.TrimSpace(candidate)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			return trimmed, nil
		}
	}

	return nil, errNoABI
}
