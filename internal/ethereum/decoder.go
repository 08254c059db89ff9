package ethereum

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type ElectionCreated struct {
	ElectionID *big.Int
	Title      string
}

type CandidateAdded struct {
	ElectionID  *big.Int
	CandidateID *big.Int
	Name        string
}

type VoterRegistered struct {
	ElectionID *big.Int
	VoterHash  common.Hash
}

type VoteCast struct {
	ElectionID   *big.Int
	VoterHash    common.Hash
	CandidateIDs []*big.Int
}

// EventDecoder turns receipt logs emitted by the contract into typed events.
type EventDecoder struct {
	contract common.Address
	abi      abi.ABI
}

func NewEventDecoder(contract common.Address, contractABI abi.ABI) *EventDecoder {
	return &EventDecoder{
		contract: contract,
		abi:      contractABI,
	}
}

// Decode returns the fields of every log in the receipt that was emitted by
// the contract and matches the named event. No matching log yields an empty
// slice; a matching log that cannot be unpacked yields ErrDecode.
func (d *EventDecoder) Decode(receipt *types.Receipt, eventName string) ([]map[string]any, error) {
	event, ok := d.abi.Events[eventName]
	if !ok {
		return nil, fmt.Errorf("%w: unknown event %q", ErrDecode, eventName)
	}

	decoded := []map[string]any{}
	if receipt == nil {
		return decoded, nil
	}

	indexed := indexedArguments(event.Inputs)
	for _, log := range receipt.Logs {
		if log == nil || log.Address != d.contract || len(log.Topics) == 0 || log.Topics[0] != event.ID {
			continue
		}

		if len(log.Topics)-1 != len(indexed) {
			return nil, fmt.Errorf("%w: %s: expected %d indexed topics, got %d", ErrDecode, eventName, len(indexed), len(log.Topics)-1)
		}

		fields := map[string]any{}
		if err := event.Inputs.UnpackIntoMap(fields, log.Data); err != nil {
			return nil, fmt.Errorf("%w: %s data: %w", ErrDecode, eventName, err)
		}
		if err := abi.ParseTopicsIntoMap(fields, indexed, log.Topics[1:]); err != nil {
			return nil, fmt.Errorf("%w: %s topics: %w", ErrDecode, eventName, err)
		}

		decoded = append(decoded, fields)
	}

	return decoded, nil
}

func (d *EventDecoder) ElectionsCreated(receipt *types.Receipt) ([]ElectionCreated, error) {
	logs, err := d.Decode(receipt, EventElectionCreated)
	if err != nil {
		return nil, err
	}

	events := make([]ElectionCreated, 0, len(logs))
	for _, fields := range logs {
		id, err := field[*big.Int](fields, "electionId")
		if err != nil {
			return nil, err
		}
		title, err := field[string](fields, "title")
		if err != nil {
			return nil, err
		}
		events = append(events, ElectionCreated{ElectionID: id, Title: title})
	}
	return events, nil
}

func (d *EventDecoder) CandidatesAdded(receipt *types.Receipt) ([]CandidateAdded, error) {
	logs, err := d.Decode(receipt, EventCandidateAdded)
	if err != nil {
		return nil, err
	}

	events := make([]CandidateAdded, 0, len(logs))
	for _, fields := range logs {
		electionID, err := field[*big.Int](fields, "electionId")
		if err != nil {
			return nil, err
		}
		candidateID, err := field[*big.Int](fields, "candidateId")
		if err != nil {
			return nil, err
		}
		name, err := field[string](fields, "name")
		if err != nil {
			return nil, err
		}
		events = append(events, CandidateAdded{ElectionID: electionID, CandidateID: candidateID, Name: name})
	}
	return events, nil
}

func (d *EventDecoder) VotersRegistered(receipt *types.Receipt) ([]VoterRegistered, error) {
	logs, err := d.Decode(receipt, EventVoterRegistered)
	if err != nil {
		return nil, err
	}

	events := make([]VoterRegistered, 0, len(logs))
	for _, fields := range logs {
		electionID, err := field[*big.Int](fields, "electionId")
		if err != nil {
			return nil, err
		}
		voterHash, err := field[[32]byte](fields, "voterHash")
		if err != nil {
			return nil, err
		}
		events = append(events, VoterRegistered{ElectionID: electionID, VoterHash: common.Hash(voterHash)})
	}
	return events, nil
}

func (d *EventDecoder) VotesCast(receipt *types.Receipt) ([]VoteCast, error) {
	logs, err := d.Decode(receipt, EventVoteCast)
	if err != nil {
		return nil, err
	}

	events := make([]VoteCast, 0, len(logs))
	for _, fields := range logs {
		electionID, err := field[*big.Int](fields, "electionId")
		if err != nil {
			return nil, err
		}
		voterHash, err := field[[32]byte](fields, "voterHash")
		if err != nil {
			return nil, err
		}
		candidateIDs, err := field[[]*big.Int](fields, "candidateIds")
		if err != nil {
			return nil, err
		}
		events = append(events, VoteCast{ElectionID: electionID, VoterHash: common.Hash(voterHash), CandidateIDs: candidateIDs})
	}
	return events, nil
}

func indexedArguments(args abi.Arguments) abi.Arguments {
	indexed := abi.Arguments{}
	for _, arg := range args {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}

func field[T any](fields map[string]any, name string) (T, error) {
	var zero T
	raw, ok := fields[name]
	if !ok {
		return zero, fmt.Errorf("%w: missing field %q", ErrDecode, name)
	}
	value, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: field %q has type %T", ErrDecode, name, raw)
	}
	return value, nil
}
