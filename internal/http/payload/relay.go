package payload

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"time"

	"github.com/jellydator/validation"
)

var (
	txHashRegex    = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
	onchainIDRegex = regexp.MustCompile(`^[0-9]{1,78}$`)
)

const maxTimeout = 10 * time.Minute

type VoteRequest struct {
	VoterID      uint   `json:"voter_id"`
	CandidateIDs []uint `json:"candidate_ids"`
}

func (v VoteRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.VoterID, validation.Required),
		validation.Field(&v.CandidateIDs, validation.Required, validation.Each(validation.Required)),
	)
}

type TransactionRequest struct {
	TxHash string
}

func (t TransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}

type TallyRequest struct {
	ElectionID  string
	CandidateID string
}

func (t TallyRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ElectionID, validation.Required, validation.Match(onchainIDRegex)),
		validation.Field(&t.CandidateID, validation.Required, validation.Match(onchainIDRegex)),
	)
}

// OnchainIDs returns both ids as integers. Call Validate first.
func (t TallyRequest) OnchainIDs() (*big.Int, *big.Int) {
	election, _ := new(big.Int).SetString(t.ElectionID, 10)
	candidate, _ := new(big.Int).SetString(t.CandidateID, 10)
	return election, candidate
}

// ParseEntityID parses a local entity id taken from the request path.
func ParseEntityID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// ParseTimeout parses the optional timeout query value. Empty means the
// relay default.
func ParseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse timeout: %w", err)
	}

	if timeout <= 0 || timeout > maxTimeout {
		return 0, errors.New("timeout must be positive and at most 10m")
	}

	return timeout, nil
}
