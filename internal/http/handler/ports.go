package handler

import (
	"context"
	"math/big"
	"net/http"
	"time"

	"beevs/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RelayService . RelayService
type RelayService interface {
	CreateElection(ctx context.Context, electionID uint, timeout time.Duration) (core.AuditRecord, error)
	AddCandidate(ctx context.Context, candidateID uint, timeout time.Duration) (core.AuditRecord, error)
	RegisterVoter(ctx context.Context, voterID uint, timeout time.Duration) (core.AuditRecord, error)
	CastVote(ctx context.Context, voterID uint, candidateIDs []uint, timeout time.Duration) (core.AuditRecord, error)
	GetTally(ctx context.Context, electionOnchainID, candidateOnchainID *big.Int) (*big.Int, error)
	Reconcile(ctx context.Context, txHash string, timeout time.Duration) (core.AuditRecord, error)
	ReconcilePending(ctx context.Context) (core.ReconcileSummary, error)
}

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
