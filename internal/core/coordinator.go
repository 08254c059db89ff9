package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"beevs/internal/ethereum"
	"beevs/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	ErrNotOnchain       error = errors.New("entity is not on chain")
	ErrAlreadyVoted     error = errors.New("voter already voted")
	ErrAlreadyRelayed   error = errors.New("entity already relayed")
	ErrInvalidSelection error = errors.New("invalid candidate selection")
)

// RelayCoordinator mirrors election actions onto the EVoting contract and
// keeps one audit record per submitted transaction.
type RelayCoordinator struct {
	logs    *zap.SugaredLogger
	repo    Repository
	relayer Relayer
	decoder EventDecoder
	metrics *Metrics
	timeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewRelayCoordinator(
	logger *zap.SugaredLogger,
	repo Repository,
	relayer Relayer,
	decoder EventDecoder,
	metrics *Metrics,
	timeout time.Duration,
) *RelayCoordinator {
	return &RelayCoordinator{
		logs:     logger,
		repo:     repo,
		relayer:  relayer,
		decoder:  decoder,
		metrics:  metrics,
		timeout:  timeout,
		inflight: map[string]struct{}{},
	}
}

type intent struct {
	method    string
	args      []any
	audit     repository.TransactionAudit
	dedupKey  string
	duplicate error
	timeout   time.Duration
}

// CreateElection relays a local election. A zero timeout uses the
// coordinator default.
func (c *RelayCoordinator) CreateElection(ctx context.Context, electionID uint, timeout time.Duration) (AuditRecord, error) {
	election, err := c.repo.GetElection(ctx, electionID)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("load election: %w", err)
	}

	if election.OnchainID != nil {
		return AuditRecord{}, fmt.Errorf("%w: election %d is on chain as %s", ErrAlreadyRelayed, election.ID, *election.OnchainID)
	}

	return c.relay(ctx, intent{
		method: ethereum.MethodCreateElection,
		args: []any{
			election.Title,
			big.NewInt(election.StartsAt.Unix()),
			big.NewInt(election.EndsAt.Unix()),
		},
		audit: repository.TransactionAudit{
			Action:     repository.ActionCreateElection,
			ElectionID: &election.ID,
		},
		dedupKey:  fmt.Sprintf("%s:%d", repository.ActionCreateElection, election.ID),
		duplicate: ErrAlreadyRelayed,
		timeout:   timeout,
	})
}

func (c *RelayCoordinator) AddCandidate(ctx context.Context, candidateID uint, timeout time.Duration) (AuditRecord, error) {
	candidate, err := c.repo.GetCandidate(ctx, candidateID)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("load candidate: %w", err)
	}

	if candidate.OnchainID != nil {
		return AuditRecord{}, fmt.Errorf("%w: candidate %d is on chain as %s", ErrAlreadyRelayed, candidate.ID, *candidate.OnchainID)
	}

	election, electionOnchainID, err := c.onchainElection(ctx, candidate.ElectionID)
	if err != nil {
		return AuditRecord{}, err
	}

	post, err := c.repo.GetPost(ctx, candidate.PostID)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("load post: %w", err)
	}

	if post.ElectionID != candidate.ElectionID {
		return AuditRecord{}, fmt.Errorf("%w: post %d does not belong to election %d", ErrInvalidSelection, post.ID, candidate.ElectionID)
	}

	return c.relay(ctx, intent{
		method: ethereum.MethodAddCandidate,
		args:   []any{electionOnchainID, candidate.Name},
		audit: repository.TransactionAudit{
			Action:      repository.ActionAddCandidate,
			ElectionID:  &election.ID,
			CandidateID: &candidate.ID,
		},
		dedupKey:  fmt.Sprintf("%s:%d", repository.ActionAddCandidate, candidate.ID),
		duplicate: ErrAlreadyRelayed,
		timeout:   timeout,
	})
}

func (c *RelayCoordinator) RegisterVoter(ctx context.Context, voterID uint, timeout time.Duration) (AuditRecord, error) {
	voter, err := c.repo.GetVoter(ctx, voterID)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("load voter: %w", err)
	}

	if voter.OnchainHash != nil {
		return AuditRecord{}, fmt.Errorf("%w: voter %d is registered as %s", ErrAlreadyRelayed, voter.ID, *voter.OnchainHash)
	}

	election, electionOnchainID, err := c.onchainElection(ctx, voter.ElectionID)
	if err != nil {
		return AuditRecord{}, err
	}

	voterHash := ethereum.VoterHash(electionOnchainID, voter.RegistrationNumber)

	return c.relay(ctx, intent{
		method: ethereum.MethodRegisterVoter,
		args:   []any{electionOnchainID, [32]byte(voterHash)},
		audit: repository.TransactionAudit{
			Action:     repository.ActionRegisterVoter,
			ElectionID: &election.ID,
			VoterID:    &voter.ID,
		},
		dedupKey:  fmt.Sprintf("%s:%s:%s", repository.ActionRegisterVoter, electionOnchainID, voterHash.Hex()),
		duplicate: ErrAlreadyRelayed,
		timeout:   timeout,
	})
}

// CastVote relays a ballot for an already authorized voter. Every candidate
// must be on chain, belong to the voter's election and run for a distinct
// post. A voter gets one cast-vote record per election.
func (c *RelayCoordinator) CastVote(ctx context.Context, voterID uint, candidateIDs []uint, timeout time.Duration) (AuditRecord, error) {
	if len(candidateIDs) == 0 {
		return AuditRecord{}, fmt.Errorf("%w: no candidate selected", ErrInvalidSelection)
	}

	voter, err := c.repo.GetVoter(ctx, voterID)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("load voter: %w", err)
	}

	if voter.OnchainHash == nil {
		return AuditRecord{}, fmt.Errorf("%w: voter %d is not registered on chain", ErrNotOnchain, voter.ID)
	}

	election, electionOnchainID, err := c.onchainElection(ctx, voter.ElectionID)
	if err != nil {
		return AuditRecord{}, err
	}

	candidates, err := c.repo.GetCandidates(ctx, candidateIDs)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("load candidates: %w", err)
	}

	byID := make(map[uint]repository.Candidate, len(candidates))
	for _, candidate := range candidates {
		byID[candidate.ID] = candidate
	}

	if len(byID) != len(candidateIDs) {
		return AuditRecord{}, fmt.Errorf("%w: candidate selected more than once", ErrInvalidSelection)
	}

	posts := map[uint]uint{}
	onchainCandidates := make([]*big.Int, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		candidate := byID[id]
		if candidate.ElectionID != voter.ElectionID {
			return AuditRecord{}, fmt.Errorf("%w: candidate %d is not part of election %d", ErrInvalidSelection, candidate.ID, voter.ElectionID)
		}

		if other, taken := posts[candidate.PostID]; taken {
			return AuditRecord{}, fmt.Errorf("%w: candidates %d and %d run for the same post", ErrInvalidSelection, other, candidate.ID)
		}
		posts[candidate.PostID] = candidate.ID

		onchainID, err := onchainNumber(candidate.OnchainID)
		if err != nil {
			return AuditRecord{}, fmt.Errorf("candidate %d: %w", candidate.ID, err)
		}
		onchainCandidates = append(onchainCandidates, onchainID)
	}

	voterHash := common.HexToHash(*voter.OnchainHash)
	audit := repository.TransactionAudit{
		Action:     repository.ActionCastVote,
		ElectionID: &election.ID,
		VoterID:    &voter.ID,
	}
	if len(candidateIDs) == 1 {
		audit.CandidateID = &candidateIDs[0]
	}

	return c.relay(ctx, intent{
		method:    ethereum.MethodCastVote,
		args:      []any{electionOnchainID, [32]byte(voterHash), onchainCandidates},
		audit:     audit,
		dedupKey:  fmt.Sprintf("%s:%s:%s", repository.ActionCastVote, electionOnchainID, voterHash.Hex()),
		duplicate: ErrAlreadyVoted,
		timeout:   timeout,
	})
}

// GetTally reads the vote count of a candidate straight from the contract.
func (c *RelayCoordinator) GetTally(ctx context.Context, electionOnchainID, candidateOnchainID *big.Int) (*big.Int, error) {
	count, err := c.relayer.VoteCount(ctx, electionOnchainID, candidateOnchainID)
	if err != nil {
		return nil, fmt.Errorf("read tally: %w", err)
	}
	return count, nil
}

func (c *RelayCoordinator) relay(ctx context.Context, in intent) (AuditRecord, error) {
	if !c.claim(in.dedupKey) {
		return AuditRecord{}, fmt.Errorf("%w: %s is already in flight", in.duplicate, in.dedupKey)
	}
	defer c.release(in.dedupKey)

	previous, err := c.repo.CountAuditsByDedupKey(ctx, in.dedupKey)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("check previous relays: %w", err)
	}
	if previous > 0 {
		return AuditRecord{}, fmt.Errorf("%w: %s was already submitted", in.duplicate, in.dedupKey)
	}

	audit := in.audit
	audit.DedupKey = &in.dedupKey
	action := audit.Action

	start := time.Now()
	hash, err := c.relayer.Submit(ctx, in.method, in.args, func(hash common.Hash) error {
		audit.TxHash = hash.Hex()
		// The node already holds the transaction; a caller gone away must not
		// leave it without an audit row.
		return c.repo.CreateAudit(context.WithoutCancel(ctx), &audit)
	})
	if err != nil {
		var reverted *ethereum.ContractRevertedError
		if errors.As(err, &reverted) {
			c.metrics.outcome(action, outcomeReverted)
		} else {
			c.metrics.outcome(action, outcomeFailed)
		}
		c.logs.Errorw("relay submission failed",
			"error", err,
			"action", action,
			"method", in.method)
		return AuditRecord{}, fmt.Errorf("submit %s: %w", in.method, err)
	}

	c.logs.Infow("transaction submitted",
		"action", action,
		"txHash", audit.TxHash,
		"auditId", audit.ID)

	receipt, found, err := c.relayer.AwaitReceipt(ctx, hash, c.timeoutOr(in.timeout))
	if err != nil {
		c.metrics.outcome(action, outcomeFailed)
		return auditToRecord(audit, nil), fmt.Errorf("await receipt %s: %w", audit.TxHash, err)
	}

	if !found {
		c.metrics.outcome(action, outcomePending)
		c.logs.Warnw("no receipt before timeout, audit left pending",
			"action", action,
			"txHash", audit.TxHash)
		return auditToRecord(audit, nil), nil
	}

	return c.complete(ctx, audit, receipt, start)
}

// complete records the outcome of an included transaction. Reverted
// transactions stay pending with their reason stored and surface as
// *ethereum.ContractRevertedError.
func (c *RelayCoordinator) complete(ctx context.Context, audit repository.TransactionAudit, receipt *types.Receipt, start time.Time) (AuditRecord, error) {
	hash := common.HexToHash(audit.TxHash)

	if receipt.Status != types.ReceiptStatusSuccessful {
		reason := c.relayer.RevertReason(ctx, hash, receipt)
		c.metrics.outcome(audit.Action, outcomeReverted)
		c.logs.Errorw("transaction reverted",
			"action", audit.Action,
			"txHash", audit.TxHash,
			"blockNumber", receipt.BlockNumber,
			"reason", reason)
		c.markReverted(ctx, &audit, receipt, reason)
		return auditToRecord(audit, nil), &ethereum.ContractRevertedError{Reason: reason}
	}

	if receipt.BlockNumber == nil {
		c.metrics.outcome(audit.Action, outcomePending)
		return auditToRecord(audit, nil), nil
	}

	sanitized, err := json.Marshal(ethereum.SanitizeReceipt(receipt))
	if err != nil {
		return auditToRecord(audit, nil), fmt.Errorf("encode receipt %s: %w", audit.TxHash, err)
	}

	link := c.link(audit, receipt)
	blockNumber := receipt.BlockNumber.Uint64()

	err = c.repo.ConfirmAudit(ctx, repository.Confirmation{
		TxHash:      audit.TxHash,
		BlockNumber: blockNumber,
		Receipt:     string(sanitized),
		Link:        link,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAuditNotPending) {
			current, getErr := c.repo.GetAuditByTxHash(ctx, audit.TxHash)
			if getErr != nil {
				return auditToRecord(audit, nil), fmt.Errorf("reload audit %s: %w", audit.TxHash, getErr)
			}
			return auditToRecord(current, nil), nil
		}
		c.metrics.outcome(audit.Action, outcomeFailed)
		return auditToRecord(audit, nil), fmt.Errorf("confirm audit %s: %w", audit.TxHash, err)
	}

	audit.Status = repository.StatusConfirmed
	audit.BlockNumber = &blockNumber
	c.metrics.confirmed(audit.Action, start)

	var onchainID *string
	if link != nil {
		value := link.Value()
		onchainID = &value
	}

	c.logs.Infow("transaction confirmed",
		"action", audit.Action,
		"txHash", audit.TxHash,
		"blockNumber", blockNumber,
		"linked", link != nil)

	return auditToRecord(audit, onchainID), nil
}

// markReverted stores the failed receipt on the audit so reconciliation skips
// it. Storage failures are logged; the next pass replays the revert again.
func (c *RelayCoordinator) markReverted(ctx context.Context, audit *repository.TransactionAudit, receipt *types.Receipt, reason string) {
	sanitized, err := json.Marshal(ethereum.SanitizeReceipt(receipt))
	if err != nil {
		c.logs.Errorw("failed to encode reverted receipt", "error", err, "txHash", audit.TxHash)
		return
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	err = c.repo.MarkReverted(ctx, repository.Reversion{
		TxHash:      audit.TxHash,
		BlockNumber: blockNumber,
		Receipt:     string(sanitized),
		Reason:      reason,
	})
	if err != nil {
		c.logs.Errorw("failed to store revert on audit",
			"error", err,
			"action", audit.Action,
			"txHash", audit.TxHash)
		return
	}

	audit.BlockNumber = &blockNumber
	audit.RevertReason = &reason
	audit.DedupKey = nil
}

// link decodes the entity identifier assigned by the contract. Decode
// problems never fail a confirmed transaction; the link is left unset.
func (c *RelayCoordinator) link(audit repository.TransactionAudit, receipt *types.Receipt) *repository.OnchainLink {
	link, err := c.decodeLink(audit, receipt)
	switch {
	case err != nil:
		c.logs.Warnw("confirmed transaction could not be decoded, on-chain link left unset",
			"error", err,
			"action", audit.Action,
			"txHash", audit.TxHash)
	case link == nil && audit.Action != repository.ActionCastVote:
		c.logs.Warnw("confirmed transaction has no matching event, on-chain link left unset",
			"action", audit.Action,
			"txHash", audit.TxHash)
	}
	return link
}

func (c *RelayCoordinator) decodeLink(audit repository.TransactionAudit, receipt *types.Receipt) (*repository.OnchainLink, error) {
	switch audit.Action {
	case repository.ActionCreateElection:
		events, err := c.decoder.ElectionsCreated(receipt)
		if err != nil || len(events) == 0 || audit.ElectionID == nil {
			return nil, err
		}
		return repository.ElectionLink(*audit.ElectionID, events[0].ElectionID.String()), nil

	case repository.ActionAddCandidate:
		events, err := c.decoder.CandidatesAdded(receipt)
		if err != nil || len(events) == 0 || audit.CandidateID == nil {
			return nil, err
		}
		return repository.CandidateLink(*audit.CandidateID, events[0].CandidateID.String()), nil

	case repository.ActionRegisterVoter:
		events, err := c.decoder.VotersRegistered(receipt)
		if err != nil || len(events) == 0 || audit.VoterID == nil {
			return nil, err
		}
		return repository.VoterLink(*audit.VoterID, events[0].VoterHash.Hex()), nil

	case repository.ActionCastVote:
		events, err := c.decoder.VotesCast(receipt)
		if err != nil {
			return nil, err
		}
		if len(events) == 0 {
			c.logs.Warnw("vote confirmed without a VoteCast event", "txHash", audit.TxHash)
		}
		return nil, nil
	}

	return nil, fmt.Errorf("%w: unknown action %q", ethereum.ErrDecode, audit.Action)
}

func (c *RelayCoordinator) onchainElection(ctx context.Context, electionID uint) (repository.Election, *big.Int, error) {
	election, err := c.repo.GetElection(ctx, electionID)
	if err != nil {
		return repository.Election{}, nil, fmt.Errorf("load election: %w", err)
	}

	onchainID, err := onchainNumber(election.OnchainID)
	if err != nil {
		return repository.Election{}, nil, fmt.Errorf("election %d: %w", election.ID, err)
	}

	return election, onchainID, nil
}

func (c *RelayCoordinator) claim(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inflight[key]; busy {
		return false
	}
	c.inflight[key] = struct{}{}
	return true
}

func (c *RelayCoordinator) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, key)
}

func (c *RelayCoordinator) timeoutOr(timeout time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}
	return c.timeout
}

func onchainNumber(value *string) (*big.Int, error) {
	if value == nil {
		return nil, ErrNotOnchain
	}

	n, ok := new(big.Int).SetString(*value, 10)
	if !ok {
		return nil, fmt.Errorf("malformed on-chain id %q", *value)
	}
	return n, nil
}

// Reconcile re-polls the receipt of a recorded transaction and completes its
// audit record. Confirmed and reverted records are returned unchanged.
func (c *RelayCoordinator) Reconcile(ctx context.Context, txHash string, timeout time.Duration) (AuditRecord, error) {
	audit, err := c.repo.GetAuditByTxHash(ctx, txHash)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("load audit: %w", err)
	}

	if audit.Status == repository.StatusConfirmed {
		return auditToRecord(audit, nil), nil
	}
	if audit.RevertReason != nil {
		return auditToRecord(audit, nil), &ethereum.ContractRevertedError{Reason: *audit.RevertReason}
	}

	receipt, found, err := c.relayer.AwaitReceipt(ctx, common.HexToHash(audit.TxHash), c.timeoutOr(timeout))
	if err != nil {
		return auditToRecord(audit, nil), fmt.Errorf("await receipt %s: %w", audit.TxHash, err)
	}

	if !found {
		return auditToRecord(audit, nil), nil
	}

	return c.complete(ctx, audit, receipt, audit.CreatedAt)
}

// ReconcilePending fetches the receipts of every pending audit once and
// completes the ones that were included.
func (c *RelayCoordinator) ReconcilePending(ctx context.Context) (ReconcileSummary, error) {
	audits, err := c.repo.ListPendingAudits(ctx)
	if err != nil {
		return ReconcileSummary{}, fmt.Errorf("list pending audits: %w", err)
	}

	summary := ReconcileSummary{Checked: len(audits)}
	if len(audits) == 0 {
		return summary, nil
	}

	hashes := make([]common.Hash, 0, len(audits))
	for _, audit := range audits {
		hashes = append(hashes, common.HexToHash(audit.TxHash))
	}

	receipts, errs := c.relayer.FetchReceipts(ctx, hashes)
	byHash := make(map[common.Hash]*types.Receipt, len(receipts))
	for _, receipt := range receipts {
		if receipt != nil {
			byHash[receipt.TxHash] = receipt
		}
	}

	for _, audit := range audits {
		receipt, ok := byHash[common.HexToHash(audit.TxHash)]
		if !ok {
			summary.Pending++
			continue
		}

		record, err := c.complete(ctx, audit, receipt, audit.CreatedAt)
		var reverted *ethereum.ContractRevertedError
		switch {
		case errors.As(err, &reverted):
			summary.Reverted++
		case err != nil:
			summary.Pending++
			errs = errors.Join(errs, err)
		case record.Status == repository.StatusConfirmed:
			summary.Confirmed++
		default:
			summary.Pending++
		}
	}

	c.logs.Infow("reconciled pending audits",
		"checked", summary.Checked,
		"confirmed", summary.Confirmed,
		"reverted", summary.Reverted,
		"pending", summary.Pending)

	return summary, errs
}

// RunReconciler runs ReconcilePending every interval until ctx is done.
func (c *RelayCoordinator) RunReconciler(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.ReconcilePending(ctx); err != nil {
				c.logs.Errorw("reconcile pending audits", "error", err)
			}
		}
	}
}
