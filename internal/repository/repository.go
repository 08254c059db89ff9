package repository

import (
	"context"
	"errors"
	"fmt"

	"beevs/internal/db"

	"github.com/google/uuid"
)

var (
	ErrElectionNotFound  error = errors.New("election not found")
	ErrPostNotFound      error = errors.New("post not found")
	ErrCandidateNotFound error = errors.New("candidate not found")
	ErrVoterNotFound     error = errors.New("voter not found")
	ErrAuditNotFound     error = errors.New("transaction audit not found")
	ErrAuditNotPending   error = errors.New("transaction audit is not pending")
	ErrDuplicateAudit    error = errors.New("transaction audit already exists")
	ErrLinkTargetMissing error = errors.New("linked entity not found")
)

// Confirmation completes a pending audit record and, when Link is set, stores
// the on-chain identifier of the entity it relayed.
type Confirmation struct {
	TxHash      string
	BlockNumber uint64
	Receipt     string
	Link        *OnchainLink
}

// Reversion is what a reverted transaction leaves on its audit record.
type Reversion struct {
	TxHash      string
	BlockNumber uint64
	Receipt     string
	Reason      string
}

// OnchainLink points at the entity column that receives an on-chain identifier.
type OnchainLink struct {
	model  any
	column string
	id     uint
	value  string
}

func ElectionLink(electionID uint, onchainID string) *OnchainLink {
	return &OnchainLink{model: &Election{}, column: "onchain_id", id: electionID, value: onchainID}
}

func CandidateLink(candidateID uint, onchainID string) *OnchainLink {
	return &OnchainLink{model: &Candidate{}, column: "onchain_id", id: candidateID, value: onchainID}
}

func VoterLink(voterID uint, voterHash string) *OnchainLink {
	return &OnchainLink{model: &Voter{}, column: "onchain_hash", id: voterID, value: voterHash}
}

func (l *OnchainLink) Value() string {
	return l.value
}

type RelayRepository struct {
	db Storage
}

func NewRelayRepository(db Storage) *RelayRepository {
	return &RelayRepository{
		db: db,
	}
}

func (r *RelayRepository) MigrateTables() error {
	err := r.db.MigrateModels(
		&Election{},
		&Post{},
		&Candidate{},
		&Voter{},
		&TransactionAudit{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *RelayRepository) GetElection(ctx context.Context, id uint) (Election, error) {
	var election Election
	if err := r.getOne(ctx, "id", id, &election, ErrElectionNotFound); err != nil {
		return Election{}, fmt.Errorf("get election %d: %w", id, err)
	}
	return election, nil
}

func (r *RelayRepository) GetElectionByOnchainID(ctx context.Context, onchainID string) (Election, error) {
	var election Election
	if err := r.getOne(ctx, "onchain_id", onchainID, &election, ErrElectionNotFound); err != nil {
		return Election{}, fmt.Errorf("get election by onchain id %s: %w", onchainID, err)
	}
	return election, nil
}

func (r *RelayRepository) GetPost(ctx context.Context, id uint) (Post, error) {
	var post Post
	if err := r.getOne(ctx, "id", id, &post, ErrPostNotFound); err != nil {
		return Post{}, fmt.Errorf("get post %d: %w", id, err)
	}
	return post, nil
}

func (r *RelayRepository) GetCandidate(ctx context.Context, id uint) (Candidate, error) {
	var candidate Candidate
	if err := r.getOne(ctx, "id", id, &candidate, ErrCandidateNotFound); err != nil {
		return Candidate{}, fmt.Errorf("get candidate %d: %w", id, err)
	}
	return candidate, nil
}

// GetCandidates loads every candidate in ids. A missing id fails the whole
// lookup with ErrCandidateNotFound.
func (r *RelayRepository) GetCandidates(ctx context.Context, ids []uint) ([]Candidate, error) {
	unique := map[uint]struct{}{}
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	candidates := []Candidate{}
	if err := r.db.GetAllBy(ctx, "id", ids, &candidates); err != nil {
		return nil, fmt.Errorf("get candidates: %w", err)
	}

	if len(candidates) != len(unique) {
		return nil, fmt.Errorf("get candidates: %w: found %d of %d", ErrCandidateNotFound, len(candidates), len(unique))
	}

	return candidates, nil
}

func (r *RelayRepository) GetVoter(ctx context.Context, id uint) (Voter, error) {
	var voter Voter
	if err := r.getOne(ctx, "id", id, &voter, ErrVoterNotFound); err != nil {
		return Voter{}, fmt.Errorf("get voter %d: %w", id, err)
	}
	return voter, nil
}

// CreateAudit stores a new pending audit record. A record with the same
// transaction hash or dedup key yields ErrDuplicateAudit.
func (r *RelayRepository) CreateAudit(ctx context.Context, audit *TransactionAudit) error {
	if audit.ID == "" {
		audit.ID = uuid.NewString()
	}
	audit.Status = StatusPending
	audit.BlockNumber = nil

	err := r.db.Create(ctx, audit)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("create audit %s: %w: %w", audit.TxHash, ErrDuplicateAudit, err)
		}
		return fmt.Errorf("create audit %s: %w", audit.TxHash, err)
	}

	return nil
}

func (r *RelayRepository) GetAuditByTxHash(ctx context.Context, txHash string) (TransactionAudit, error) {
	var audit TransactionAudit
	if err := r.getOne(ctx, "tx_hash", txHash, &audit, ErrAuditNotFound); err != nil {
		return TransactionAudit{}, fmt.Errorf("get audit %s: %w", txHash, err)
	}
	return audit, nil
}

func (r *RelayRepository) ListPendingAudits(ctx context.Context) ([]TransactionAudit, error) {
	audits := []TransactionAudit{}
	if err := r.db.FindWhere(ctx, &audits, "status = ? AND revert_reason IS NULL", StatusPending); err != nil {
		return nil, fmt.Errorf("list pending audits: %w", err)
	}
	return audits, nil
}

func (r *RelayRepository) CountAuditsByDedupKey(ctx context.Context, key string) (int64, error) {
	count, err := r.db.Count(ctx, &TransactionAudit{}, "dedup_key = ?", key)
	if err != nil {
		return 0, fmt.Errorf("count audits by dedup key: %w", err)
	}
	return count, nil
}

// ConfirmAudit marks the pending audit confirmed and stores the entity link in
// one database transaction. Records that are not pending are left untouched
// and reported with ErrAuditNotPending.
func (r *RelayRepository) ConfirmAudit(ctx context.Context, confirmation Confirmation) error {
	return r.db.Transaction(ctx, func(tx db.Store) error {
		affected, err := tx.UpdateWhere(ctx, &TransactionAudit{},
			map[string]any{
				"status":       StatusConfirmed,
				"block_number": confirmation.BlockNumber,
				"receipt":      confirmation.Receipt,
			},
			"tx_hash = ? AND status = ?", confirmation.TxHash, StatusPending)
		if err != nil {
			return fmt.Errorf("confirm audit %s: %w", confirmation.TxHash, err)
		}
		if affected == 0 {
			return fmt.Errorf("confirm audit %s: %w", confirmation.TxHash, ErrAuditNotPending)
		}

		link := confirmation.Link
		if link == nil {
			return nil
		}

		affected, err = tx.UpdateWhere(ctx, link.model, map[string]any{link.column: link.value}, "id = ?", link.id)
		if err != nil {
			return fmt.Errorf("link entity %d: %w", link.id, err)
		}
		if affected == 0 {
			return fmt.Errorf("link entity %d: %w", link.id, ErrLinkTargetMissing)
		}

		return nil
	})
}

// MarkReverted stores the failed receipt and revert reason on a pending audit
// and frees its dedup key so the intent can be relayed again. The status stays
// pending. Records already settled are reported with ErrAuditNotPending.
func (r *RelayRepository) MarkReverted(ctx context.Context, reversion Reversion) error {
	affected, err := r.db.UpdateWhere(ctx, &TransactionAudit{},
		map[string]any{
			"block_number":  reversion.BlockNumber,
			"receipt":       reversion.Receipt,
			"revert_reason": reversion.Reason,
			"dedup_key":     nil,
		},
		"tx_hash = ? AND status = ? AND revert_reason IS NULL", reversion.TxHash, StatusPending)
	if err != nil {
		return fmt.Errorf("mark audit %s reverted: %w", reversion.TxHash, err)
	}
	if affected == 0 {
		return fmt.Errorf("mark audit %s reverted: %w", reversion.TxHash, ErrAuditNotPending)
	}
	return nil
}

func (r *RelayRepository) getOne(ctx context.Context, column string, value any, entity any, notFound error) error {
	err := r.db.GetOneBy(ctx, column, value, entity)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return notFound
		}
		return err
	}
	return nil
}
