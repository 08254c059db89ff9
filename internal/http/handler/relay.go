package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"beevs/internal/core"
	"beevs/internal/ethereum"
	"beevs/internal/http/handler/middleware"
	"beevs/internal/http/payload"
	"beevs/internal/repository"

	"go.uber.org/zap"
)

var (
	Health           = "GET /healthz"
	Authenticate     = "POST /api/v1/authenticate"
	RelayElection    = "POST /api/v1/relay/elections/{id}"
	RelayCandidate   = "POST /api/v1/relay/candidates/{id}"
	RelayVoter       = "POST /api/v1/relay/voters/{id}"
	RelayVote        = "POST /api/v1/relay/votes"
	ReconcileTx      = "POST /api/v1/relay/reconcile/{txHash}"
	ReconcilePending = "POST /api/v1/relay/reconcile"
	GetTally         = "GET /api/v1/tally/{electionId}/{candidateId}"
)

type RelayHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	relay            RelayService
	auth             Authenticator
}

func NewRelayHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, relayService RelayService, authenticator Authenticator) *RelayHandler {
	return &RelayHandler{
		logs:             logger,
		requestValidator: requestValidator,
		relay:            relayService,
		auth:             authenticator,
	}
}

func (h *RelayHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, middleware.GetRequestID(r.Context()))
}

func (h *RelayHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = "invalid username or password"
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *RelayHandler) HandleCreateElection(w http.ResponseWriter, r *http.Request) {
	h.relayEntity(w, r, RelayElection, h.relay.CreateElection)
}

func (h *RelayHandler) HandleAddCandidate(w http.ResponseWriter, r *http.Request) {
	h.relayEntity(w, r, RelayCandidate, h.relay.AddCandidate)
}

func (h *RelayHandler) HandleRegisterVoter(w http.ResponseWriter, r *http.Request) {
	h.relayEntity(w, r, RelayVoter, h.relay.RegisterVoter)
}

func (h *RelayHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var vote payload.VoteRequest
	err := h.requestValidator.DecodeJSONPayload(r, &vote)
	if err != nil {
		h.badRequest(w, fmt.Errorf("invalid request payload: %w", err), RelayVote, requestId)
		return
	}

	timeout, err := payload.ParseTimeout(r.URL.Query().Get("timeout"))
	if err != nil {
		h.badRequest(w, err, RelayVote, requestId)
		return
	}

	h.logs.Infow("vote relay requested",
		"voter_id", vote.VoterID,
		"candidates", len(vote.CandidateIDs),
		"operator", middleware.GetOperator(r.Context()),
		"handler", RelayVote,
		"request_id", requestId)

	record, err := h.relay.CastVote(r.Context(), vote.VoterID, vote.CandidateIDs, timeout)
	h.respondRecord(w, record, err, RelayVote, requestId)
}

func (h *RelayHandler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	txRequest := payload.TransactionRequest{TxHash: r.PathValue("txHash")}
	if err := txRequest.Validate(); err != nil {
		h.badRequest(w, fmt.Errorf("validate transaction hash: %w", err), ReconcileTx, requestId)
		return
	}

	timeout, err := payload.ParseTimeout(r.URL.Query().Get("timeout"))
	if err != nil {
		h.badRequest(w, err, ReconcileTx, requestId)
		return
	}

	record, err := h.relay.Reconcile(r.Context(), txRequest.TxHash, timeout)
	h.respondRecord(w, record, err, ReconcileTx, requestId)
}

func (h *RelayHandler) HandleReconcilePending(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	summary, err := h.relay.ReconcilePending(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Reconciliation incomplete",
			Data:    summary,
			Error:   "some transactions could not be checked",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to reconcile pending transactions",
			"error", err,
			"handler", ReconcilePending,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Reconciliation finished", Data: summary}, http.StatusOK, requestId)
}

func (h *RelayHandler) HandleGetTally(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	tally := payload.TallyRequest{
		ElectionID:  r.PathValue("electionId"),
		CandidateID: r.PathValue("candidateId"),
	}
	if err := tally.Validate(); err != nil {
		h.badRequest(w, fmt.Errorf("validate tally request: %w", err), GetTally, requestId)
		return
	}

	electionID, candidateID := tally.OnchainIDs()
	votes, err := h.relay.GetTally(r.Context(), electionID, candidateID)
	if err != nil {
		code, msg := relayStatus(err)
		h.respond(w, Response{
			Message: "Could not read tally",
			Error:   msg,
		}, code,
			requestId)
		h.logs.Errorw("failed to read tally",
			"error", err,
			"handler", GetTally,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Tally read from chain",
		Data: TallyResponse{
			ElectionID:  tally.ElectionID,
			CandidateID: tally.CandidateID,
			Votes:       votes.String(),
		},
	}, http.StatusOK, requestId)
}

func (h *RelayHandler) relayEntity(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	relay func(ctx context.Context, id uint, timeout time.Duration) (core.AuditRecord, error),
) {
	requestId := middleware.GetRequestID(r.Context())

	id, err := payload.ParseEntityID(r.PathValue("id"))
	if err != nil {
		h.badRequest(w, err, route, requestId)
		return
	}

	timeout, err := payload.ParseTimeout(r.URL.Query().Get("timeout"))
	if err != nil {
		h.badRequest(w, err, route, requestId)
		return
	}

	h.logs.Infow("relay requested",
		"id", id,
		"operator", middleware.GetOperator(r.Context()),
		"handler", route,
		"request_id", requestId)

	record, err := relay(r.Context(), id, timeout)
	h.respondRecord(w, record, err, route, requestId)
}

func (h *RelayHandler) respondRecord(w http.ResponseWriter, record core.AuditRecord, err error, route, requestId string) {
	if err != nil {
		code, msg := relayStatus(err)
		resp := Response{
			Message: "Relay failed",
			Error:   msg,
		}
		if record.TxHash != "" {
			resp.Data = record
		}

		h.respond(w, resp, code, requestId)
		h.logs.Errorw("relay failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	if record.Status == repository.StatusConfirmed {
		h.respond(w, Response{Message: "Transaction confirmed", Data: record}, http.StatusOK, requestId)
		return
	}

	h.respond(w, Response{Message: "Transaction submitted, confirmation pending", Data: record}, http.StatusAccepted, requestId)
}

func (h *RelayHandler) badRequest(w http.ResponseWriter, err error, route, requestId string) {
	h.respond(w, Response{
		Message: "Request failed",
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("invalid request",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func relayStatus(err error) (int, string) {
	var reverted *ethereum.ContractRevertedError
	switch {
	case errors.Is(err, repository.ErrElectionNotFound),
		errors.Is(err, repository.ErrPostNotFound),
		errors.Is(err, repository.ErrCandidateNotFound),
		errors.Is(err, repository.ErrVoterNotFound),
		errors.Is(err, repository.ErrAuditNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, core.ErrAlreadyVoted), errors.Is(err, core.ErrAlreadyRelayed):
		return http.StatusConflict, err.Error()
	case errors.Is(err, core.ErrNotOnchain), errors.Is(err, core.ErrInvalidSelection):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &reverted):
		return http.StatusUnprocessableEntity, reverted.Error()
	case errors.Is(err, ethereum.ErrNoCredential):
		return http.StatusServiceUnavailable, "relayer has no signing credential"
	case errors.Is(err, ethereum.ErrConnectivity), errors.Is(err, ethereum.ErrRead):
		return http.StatusBadGateway, "ethereum node is unavailable"
	default:
		return http.StatusInternalServerError, "unexpected error occurred"
	}
}

func (h *RelayHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
