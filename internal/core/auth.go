package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	tokenIssuer "beevs/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
)

const tokenTTL = 24 * time.Hour

// OperatorAuth issues tokens to the operators allowed to trigger relays.
type OperatorAuth struct {
	logs      *zap.SugaredLogger
	operators map[string]string
	jwtIssuer JWTIssuer
}

// NewOperatorAuth takes operators as username to bcrypt hash.
func NewOperatorAuth(logger *zap.SugaredLogger, operators map[string]string, jwtIssuer JWTIssuer) *OperatorAuth {
	return &OperatorAuth{
		logs:      logger,
		operators: operators,
		jwtIssuer: jwtIssuer,
	}
}

func (a *OperatorAuth) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	hash, ok := a.operators[msg.Username]
	if !ok {
		return "", ErrUserNotFound
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(msg.Password))
	if err != nil {
		return "", fmt.Errorf("compare password: %w: %w", err, ErrIncorrectPassword)
	}

	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName:   msg.Username,
		Subject:    msg.Username,
		Expiration: tokenTTL,
	})

	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	a.logs.Infow("operator authenticated", "username", msg.Username)
	return signed, nil
}
