package core

import (
	"context"
	"math/big"
	"time"

	"beevs/internal/ethereum"
	"beevs/internal/repository"
	tokenIssuer "beevs/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetElection(ctx context.Context, id uint) (repository.Election, error)
	GetPost(ctx context.Context, id uint) (repository.Post, error)
	GetCandidate(ctx context.Context, id uint) (repository.Candidate, error)
	GetCandidates(ctx context.Context, ids []uint) ([]repository.Candidate, error)
	GetVoter(ctx context.Context, id uint) (repository.Voter, error)
	CreateAudit(ctx context.Context, audit *repository.TransactionAudit) error
	GetAuditByTxHash(ctx context.Context, txHash string) (repository.TransactionAudit, error)
	ListPendingAudits(ctx context.Context) ([]repository.TransactionAudit, error)
	CountAuditsByDedupKey(ctx context.Context, key string) (int64, error)
	ConfirmAudit(ctx context.Context, confirmation repository.Confirmation) error
	MarkReverted(ctx context.Context, reversion repository.Reversion) error
}

//counterfeiter:generate -o fake -fake-name Relayer . Relayer
type Relayer interface {
	Submit(ctx context.Context, method string, args []any, record func(common.Hash) error) (common.Hash, error)
	AwaitReceipt(ctx context.Context, hash common.Hash, timeout time.Duration) (*types.Receipt, bool, error)
	RevertReason(ctx context.Context, hash common.Hash, receipt *types.Receipt) string
	FetchReceipts(ctx context.Context, hashes []common.Hash) ([]*types.Receipt, error)
	VoteCount(ctx context.Context, electionID, candidateID *big.Int) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name EventDecoder . EventDecoder
type EventDecoder interface {
	ElectionsCreated(receipt *types.Receipt) ([]ethereum.ElectionCreated, error)
	CandidatesAdded(receipt *types.Receipt) ([]ethereum.CandidateAdded, error)
	VotersRegistered(receipt *types.Receipt) ([]ethereum.VoterRegistered, error)
	VotesCast(receipt *types.Receipt) ([]ethereum.VoteCast, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}
