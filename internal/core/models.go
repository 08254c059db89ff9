package core

import (
	"time"

	"beevs/internal/repository"
)

// AuditRecord is the outcome of one relay attempt as reported to callers.
type AuditRecord struct {
	ID          string                 `json:"id"`
	Action      repository.Action      `json:"action"`
	TxHash      string                 `json:"tx_hash"`
	Status      repository.AuditStatus `json:"status"`
	BlockNumber *uint64                `json:"block_number"`
	ElectionID  *uint                  `json:"election_id,omitempty"`
	CandidateID *uint                  `json:"candidate_id,omitempty"`
	VoterID     *uint                  `json:"voter_id,omitempty"`
	// OnchainID is the identifier decoded from the receipt, when one was linked.
	OnchainID    *string   `json:"onchain_id,omitempty"`
	RevertReason *string   `json:"revert_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReconcileSummary reports a pass over the pending audit records.
type ReconcileSummary struct {
	Checked   int `json:"checked"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Reverted  int `json:"reverted"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func auditToRecord(audit repository.TransactionAudit, onchainID *string) AuditRecord {
	return AuditRecord{
		ID:           audit.ID,
		Action:       audit.Action,
		TxHash:       audit.TxHash,
		Status:       audit.Status,
		BlockNumber:  audit.BlockNumber,
		ElectionID:   audit.ElectionID,
		CandidateID:  audit.CandidateID,
		VoterID:      audit.VoterID,
		OnchainID:    onchainID,
		RevertReason: audit.RevertReason,
		CreatedAt:    audit.CreatedAt,
	}
}
