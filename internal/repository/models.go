package repository

import "time"

type Election struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	StartsAt    time.Time `gorm:"not null"`
	EndsAt      time.Time `gorm:"not null"`
	// OnchainID is the contract election id as a decimal string; nil until relayed.
	OnchainID *string `gorm:"size:78;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Post struct {
	ID         uint   `gorm:"primaryKey"`
	ElectionID uint   `gorm:"not null;index"`
	Title      string `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Candidate struct {
	ID         uint   `gorm:"primaryKey"`
	ElectionID uint   `gorm:"not null;index"`
	PostID     uint   `gorm:"not null;index"`
	Name       string `gorm:"type:varchar(255);not null"`
	// OnchainID is the contract candidate id as a decimal string; nil until relayed.
	OnchainID *string `gorm:"size:78"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Voter struct {
	ID                 uint   `gorm:"primaryKey"`
	ElectionID         uint   `gorm:"not null;index;uniqueIndex:idx_voter_registration"`
	Name               string `gorm:"type:varchar(255);not null"`
	RegistrationNumber string `gorm:"type:varchar(64);not null;uniqueIndex:idx_voter_registration"`
	// OnchainHash is the 0x hex voter hash registered on the contract; nil until relayed.
	OnchainHash *string `gorm:"size:66"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Action string

const (
	ActionCreateElection Action = "create-election"
	ActionAddCandidate   Action = "add-candidate"
	ActionRegisterVoter  Action = "register-voter"
	ActionCastVote       Action = "cast-vote"
)

type AuditStatus string

const (
	StatusPending   AuditStatus = "pending"
	StatusConfirmed AuditStatus = "confirmed"
)

// TransactionAudit is one relay attempt. Rows are never deleted and their
// status only moves from pending to confirmed. A reverted transaction stays
// pending with RevertReason set and its DedupKey cleared.
type TransactionAudit struct {
	ID           string      `gorm:"type:uuid;primaryKey"`
	ElectionID   *uint       `gorm:"index"`
	CandidateID  *uint       `gorm:"index"`
	VoterID      *uint       `gorm:"index"`
	Action       Action      `gorm:"size:32;not null;index"`
	TxHash       string      `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	Status       AuditStatus `gorm:"size:16;not null;index"`
	BlockNumber  *uint64
	Receipt      *string `gorm:"type:jsonb"` // sanitized receipt, hex for every binary field
	DedupKey     *string `gorm:"size:200;uniqueIndex"`
	RevertReason *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
