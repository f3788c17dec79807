package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/azkar/internal/error_values"
	"github.com/limbo/azkar/internal/service"
	"github.com/limbo/azkar/pkg/entity"
	"github.com/limbo/azkar/pkg/httputil"
)

type AddChallengeRequest struct {
	Name          string                `json:"name"`
	GroupID       string                `json:"group_id,omitempty"`
	ExpiresAt     int64                 `json:"expires_at"`
	SubChallenges []entity.SubChallenge `json:"sub_challenges"`
}

type UpdateChallengeRequest struct {
	SubChallenges []entity.SubChallenge `json:"sub_challenges"`
}

type GetChallengesResponse struct {
	Challenges []*entity.Challenge `json:"challenges"`
}

func (s *Server) AddPersonalChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add personal challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	var req AddChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add personal challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.AddPersonalChallenge(ctx, uid, &service.AddChallengeRequest{
		Name:          req.Name,
		ExpiresAt:     req.ExpiresAt,
		SubChallenges: req.SubChallenges,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPastExpiryDate):
			logger.Error("add personal challenge error: past expiry date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorCode(err), "expiry date is in the past", nil)
		case errors.Is(err, errorvalues.ErrMalformedSubChallenges):
			logger.Error("add personal challenge error: malformed sub-challenges")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorCode(err), "malformed sub-challenges", nil)
		default:
			logger.Error("add personal challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while creating challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, challenge)
	logger.Info("personal challenge created")
}

func (s *Server) GetPersonalChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get personal challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.GetPersonalChallenges(ctx, uid)
	if err != nil {
		logger.Error("get personal challenges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "error while getting challenges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChallengesResponse{Challenges: challenges})
	logger.Info("personal challenges provided")
}

func (s *Server) UpdatePersonalChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update personal challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	challengeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update personal challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid challenge id in path value", nil)
		return
	}
	var req UpdateChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update personal challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.challengesService.UpdatePersonalChallenge(ctx, uid, challengeID, req.SubChallenges)
	if err != nil {
		s.writeUpdateChallengeError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	logger.Info("personal challenge updated")
}

func (s *Server) AddGroupChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add group challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	var req AddChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add group challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid request body", nil)
		return
	}
	groupID, err := uuid.Parse(req.GroupID)
	if err != nil || groupID == entity.PersonalGroupID {
		logger.Error("add group challenge error: invalid group id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid group id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenge, err := s.challengesService.AddGroupChallenge(ctx, uid, groupID, &service.AddChallengeRequest{
		Name:          req.Name,
		ExpiresAt:     req.ExpiresAt,
		SubChallenges: req.SubChallenges,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPastExpiryDate):
			logger.Error("add group challenge error: past expiry date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorCode(err), "expiry date is in the past", nil)
		case errors.Is(err, errorvalues.ErrMalformedSubChallenges):
			logger.Error("add group challenge error: malformed sub-challenges")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorCode(err), "malformed sub-challenges", nil)
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("add group challenge error: unexist group")
			httputil.WriteErrorResponse(w, http.StatusNotFound, errorCode(err), "group doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("add group challenge error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, errorCode(err), "user is not a member of the group", nil)
		default:
			logger.Error("add group challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while creating challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, challenge)
	logger.Info("group challenge created")
}

func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.GetUserChallenges(ctx, uid)
	if err != nil {
		logger.Error("get challenges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "error while getting challenges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChallengesResponse{Challenges: challenges})
	logger.Info("challenges provided")
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	challengeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.GetChallenge(ctx, uid, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			logger.Error("get challenge error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, errorCode(err), "challenge doesn't exist", nil)
			return
		}
		logger.Error("get challenge error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while getting challenge", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
	logger.Info("challenge provided")
}

func (s *Server) GetGroupChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get group challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	groupID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get group challenges error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.GetGroupChallenges(ctx, uid, groupID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("get group challenges error: not a member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, errorCode(err), "user is not a member of the group", nil)
		default:
			logger.Error("get group challenges error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "error while getting challenges", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChallengesResponse{Challenges: challenges})
	logger.Info("group challenges provided")
}

func (s *Server) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, CodeAuthentication, "no authorization", nil)
		return
	}
	challengeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid challenge id in path value", nil)
		return
	}
	var req UpdateChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, CodeRequiredFieldsNotGiven, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.challengesService.UpdateChallenge(ctx, uid, challengeID, req.SubChallenges)
	if err != nil {
		s.writeUpdateChallengeError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	logger.Info("challenge updated")
}

// writeUpdateChallengeError maps the shared progress-update failure
// modes. A missing membership row is a server-side inconsistency, so
// unlike the validation failures it turns into a 500.
func (s *Server) writeUpdateChallengeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrChallengeNotFound):
		logger.Error("challenge update error: unexist challenge")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorCode(err), "challenge doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrChallengeExpired):
		logger.Error("challenge update error: expired challenge")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorCode(err), "challenge is expired", nil)
	case errors.Is(err, errorvalues.ErrMissingOrDuplicatedSubChallenge):
		logger.Error("challenge update error: sub-challenge set mismatch")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, errorCode(err), "sub-challenges don't cover the challenge exactly", nil)
	case errors.Is(err, errorvalues.ErrNonExistentSubChallenge):
		logger.Error("challenge update error: unknown sub-challenge")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, errorCode(err), "submitted sub-challenge doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrIncrementingLeftRepetitions):
		logger.Error("challenge update error: incrementing repetitions")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, errorCode(err), "left repetitions can only decrease", nil)
	case errors.Is(err, errorvalues.ErrMembershipMissing):
		logger.Error("challenge update error: membership row missing for scored group")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while updating challenge", nil)
	default:
		logger.Error("challenge update error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, CodeDefault, "internal error while updating challenge", nil)
	}
}
